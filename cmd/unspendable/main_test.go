package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mcfx/unspendable/core"
	"github.com/mcfx/unspendable/utils/base58check"
)

func TestPrintAddrs(t *testing.T) {
	g, err := core.NewGenerator(core.GeneratorConfig{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := printAddrs(&buf, g, "TEST", false); err != nil {
		t.Fatal(err)
	}
	want := "mainnet: BTESTXXXXXXXXXXXXXXXXXXXXXXXWVHMjx\n" +
		"testnet: bTESTXXXXXXXXXXXXXXXXXXXXXXXYd6HtZ\n" +
		"regtest: KTESTXXXXXXXXXXXXXXXXXXXXXXXWRsE7F\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	if err := printAddrs(&buf, g, "hello", false); !errors.Is(err, base58check.ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("partial output: %q", buf.String())
	}
}
