package core

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mcfx/unspendable/utils/address"
	"github.com/mcfx/unspendable/utils/base58check"
)

func TestGenerateAll(t *testing.T) {
	g, err := NewGenerator(GeneratorConfig{})
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.GenerateAll("TEST")
	if err != nil {
		t.Fatal(err)
	}
	want := []Result{
		{address.Mainnet, "BTESTXXXXXXXXXXXXXXXXXXXXXXXWVHMjx"},
		{address.Testnet, "bTESTXXXXXXXXXXXXXXXXXXXXXXXYd6HtZ"},
		{address.Regtest, "KTESTXXXXXXXXXXXXXXXXXXXXXXXWRsE7F"},
	}
	if len(res) != len(want) {
		t.Fatalf("got %d results", len(res))
	}
	for i := range want {
		if res[i] != want[i] {
			t.Fatalf("result %d: %v != %v", i, res[i], want[i])
		}
	}
	if g.Cached() != 3 {
		t.Fatalf("expected 3 cached, got %d", g.Cached())
	}
	res2, err := g.GenerateAll("TEST")
	if err != nil {
		t.Fatal(err)
	}
	for i := range res {
		if res[i] != res2[i] {
			t.Fatalf("cached result differs: %v != %v", res[i], res2[i])
		}
	}
	if g.Cached() != 3 {
		t.Fatalf("expected 3 cached, got %d", g.Cached())
	}
}

func TestNetworkOrder(t *testing.T) {
	g, err := NewGenerator(GeneratorConfig{Networks: []string{"regtest", "Mainnet"}})
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.GenerateAll("")
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || res[0].Network != address.Regtest || res[1].Network != address.Mainnet {
		t.Fatalf("unexpected order: %v", res)
	}
}

func TestBadConfig(t *testing.T) {
	if _, err := NewGenerator(GeneratorConfig{Networks: []string{"signet"}}); !errors.Is(err, address.ErrUnknownNetwork) {
		t.Fatalf("expected ErrUnknownNetwork, got %v", err)
	}
	if _, err := NewGenerator(GeneratorConfig{CacheExpiration: "soon"}); err == nil {
		t.Fatal("expected duration error")
	}
}

func TestInvalidLabelNotCached(t *testing.T) {
	g, err := NewGenerator(GeneratorConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.GenerateAll("ALICE"); !errors.Is(err, base58check.ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
	if g.Cached() != 0 {
		t.Fatalf("expected empty cache, got %d", g.Cached())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"networks":["testnet"],"cache_expiration":"1m","cache_cleanup":"2m"}`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	c, err := LoadGeneratorConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGenerator(c)
	if err != nil {
		t.Fatal(err)
	}
	ns := g.Networks()
	if len(ns) != 1 || ns[0] != address.Testnet {
		t.Fatalf("unexpected networks: %v", ns)
	}
	if _, err := LoadGeneratorConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestConcurrent(t *testing.T) {
	g, err := NewGenerator(GeneratorConfig{})
	if err != nil {
		t.Fatal(err)
	}
	want, err := g.GenerateAll("Ha")
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				res, err := g.GenerateAll("Ha")
				if err != nil {
					t.Error(err)
					return
				}
				for k := range res {
					if res[k] != want[k] {
						t.Errorf("mismatch: %v != %v", res[k], want[k])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
