// Package main provides rvdump, a tool that decodes flat RV32I program
// images and dumps the structured instructions.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/onsdagens/riscv-instruction-parser/insts"
	"github.com/onsdagens/riscv-instruction-parser/loader"
)

var stopOnErrorFlag = &cli.BoolFlag{
	Name:  "stop-on-error",
	Usage: "Stop at the first word that fails to decode",
}

func main() {
	app := cli.NewApp()
	app.Name = "rvdump"
	app.Usage = "Decode a flat RV32I program image"
	app.Description = "Decodes each 32-bit word of a little-endian program " +
		"image and dumps the structured instruction. Words that fail to " +
		"decode are reported with their image offset; by default the dump " +
		"continues past them."
	app.ArgsUsage = "<image>"
	app.Flags = []cli.Flag{stopOnErrorFlag}
	app.Action = dump

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dump(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one image path, got %d arguments", ctx.NArg())
	}

	prog, err := loader.Load(ctx.Args().First())
	if err != nil {
		return err
	}

	decoder := insts.NewDecoder()
	failures := 0
	for i, word := range prog.Words {
		offset := uint32(i * 4)

		inst, err := decoder.Decode(word)
		if err != nil {
			if ctx.Bool(stopOnErrorFlag.Name) {
				return fmt.Errorf("word 0x%08X at offset 0x%X: %w", word, offset, err)
			}
			failures++
			fmt.Printf("%08x: %08x  !! %v\n", offset, word, err)
			continue
		}

		fmt.Printf("%08x: %08x\n", offset, word)
		spew.Dump(inst.Operation)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d words failed to decode", failures, len(prog.Words))
	}

	return nil
}
