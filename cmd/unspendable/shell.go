package main

import (
	"io"
	"log"
	"strings"

	"github.com/mcfx/unspendable/core"

	"github.com/chzyer/readline"
)

const shellPrompt = "label> "

func runShell(g *core.Generator, verbose bool) error {
	rl, err := readline.New(shellPrompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		name := strings.TrimSpace(line)
		if name == ":q" {
			return nil
		}
		if name == "" {
			continue
		}
		if err := printAddrs(rl.Stdout(), g, name, verbose); err != nil {
			log.Printf("%v", err)
		}
	}
}
