package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mcfx/unspendable/core"
	"github.com/mcfx/unspendable/utils/address"
)

func printAddrs(w io.Writer, g *core.Generator, name string, verbose bool) error {
	res, err := g.GenerateAll(name)
	if err != nil {
		return err
	}
	for _, r := range res {
		if verbose {
			padded, _ := address.Pad(name, r.Network)
			log.Printf("%s: decoded from %s", r.Network, padded)
		}
		fmt.Fprintf(w, "%s: %s\n", r.Network, r.Address)
	}
	return nil
}

func main() {
	cfn := flag.String("config", "", "generator config file")
	interactive := flag.Bool("i", false, "read labels from an interactive prompt")
	verbose := flag.Bool("v", false, "log the padded label behind each address")
	flag.Parse()

	var c core.GeneratorConfig
	if *cfn != "" {
		var err error
		c, err = core.LoadGeneratorConfig(*cfn)
		if err != nil {
			log.Fatal(err)
		}
	}
	g, err := core.NewGenerator(c)
	if err != nil {
		log.Fatal(err)
	}

	if *interactive {
		if err := runShell(g, *verbose); err != nil {
			log.Fatalf("shell: %v", err)
		}
		return
	}
	if flag.NArg() != 1 {
		log.Fatal("usage: unspendable [-config file] [-v] <label> | unspendable -i")
	}
	if err := printAddrs(os.Stdout, g, flag.Arg(0), *verbose); err != nil {
		log.Fatalf("failed to generate addresses: %v", err)
	}
}
