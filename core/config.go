package core

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mcfx/unspendable/utils/address"
)

const defaultCacheExpiration = time.Minute * 5
const defaultCacheCleanup = time.Minute * 10

type GeneratorConfig struct {
	Networks        []string `json:"networks"`
	CacheExpiration string   `json:"cache_expiration"`
	CacheCleanup    string   `json:"cache_cleanup"`
}

func LoadGeneratorConfig(path string) (GeneratorConfig, error) {
	var c GeneratorConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("failed to parse config: %w", err)
	}
	return c, nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func (c GeneratorConfig) networks() ([]address.Network, error) {
	if len(c.Networks) == 0 {
		return address.Networks(), nil
	}
	res := make([]address.Network, 0, len(c.Networks))
	for _, s := range c.Networks {
		n, err := address.ParseNetwork(s)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}
