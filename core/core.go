package core

import (
	"fmt"

	"github.com/mcfx/unspendable/utils/address"

	"github.com/patrickmn/go-cache"
)

type Result struct {
	Network address.Network `json:"network"`
	Address string          `json:"address"`
}

// Generator produces unspendable addresses for a fixed list of networks and
// remembers recent labels. It is safe for concurrent use.
type Generator struct {
	networks []address.Network
	results  *cache.Cache
}

func NewGenerator(config GeneratorConfig) (*Generator, error) {
	ns, err := config.networks()
	if err != nil {
		return nil, fmt.Errorf("failed to init generator: %w", err)
	}
	exp, err := parseDuration(config.CacheExpiration, defaultCacheExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to init generator: cache_expiration: %w", err)
	}
	cl, err := parseDuration(config.CacheCleanup, defaultCacheCleanup)
	if err != nil {
		return nil, fmt.Errorf("failed to init generator: cache_cleanup: %w", err)
	}
	return &Generator{
		networks: ns,
		results:  cache.New(exp, cl),
	}, nil
}

func (g *Generator) Networks() []address.Network {
	return append([]address.Network(nil), g.networks...)
}

func cacheKey(name string, n address.Network) string {
	return string(n) + "/" + name
}

func (g *Generator) Generate(name string, n address.Network) (string, error) {
	k := cacheKey(name, n)
	if v, ok := g.results.Get(k); ok {
		return v.(string), nil
	}
	addr, err := address.Generate(name, n)
	if err != nil {
		return "", err
	}
	g.results.SetDefault(k, addr)
	return addr, nil
}

// GenerateAll returns one address per configured network, in order.
func (g *Generator) GenerateAll(name string) ([]Result, error) {
	res := make([]Result, 0, len(g.networks))
	for _, n := range g.networks {
		addr, err := g.Generate(name, n)
		if err != nil {
			return nil, err
		}
		res = append(res, Result{Network: n, Address: addr})
	}
	return res, nil
}

// Cached reports how many addresses are currently remembered.
func (g *Generator) Cached() int {
	return g.results.ItemCount()
}
