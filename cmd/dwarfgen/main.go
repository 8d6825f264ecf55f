// Package main provides the dwarfgen tool: it reads a debug
// information artifact and prints the DWARF v2 assembly sections.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/anithag/CompCert/internal/cli"
	"github.com/anithag/CompCert/internal/debuginfo"
	"github.com/anithag/CompCert/internal/dwarf"
)

const toolName = "dwarfgen"

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonVersion = flag.Bool("version-json", false, "show version information as JSON")
		outPath     = flag.String("o", "", "write assembly to file instead of stdout")
		flavor      = flag.String("flavor", "single", "output flavor: single|multi")
		triple      = flag.String("triple", "x86_32-linux", "target triple recorded in the producer string")
		watch       = flag.Bool("watch", false, "re-emit whenever the input file changes (requires -o)")
	)

	flag.Usage = showUsage
	flag.Parse()

	if *showVersion || *jsonVersion {
		cli.PrintVersion(toolName, *jsonVersion)
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one input file")
		showUsage()
		os.Exit(1)
	}
	input := args[0]

	if *flavor != "single" && *flavor != "multi" {
		cli.ExitWithError("unknown flavor %q", *flavor)
	}
	if *watch && *outPath == "" {
		cli.ExitWithError("-watch requires -o")
	}

	if err := emitFile(input, *outPath, *flavor, *triple); err != nil {
		cli.ExitWithError("emit failed: %v", err)
	}
	if *watch {
		if err := watchLoop(input, *outPath, *flavor, *triple); err != nil {
			cli.ExitWithError("watch failed: %v", err)
		}
	}
}

func showUsage() {
	fmt.Println("dwarfgen - DWARF v2 debug section assembly printer")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    dwarfgen [OPTIONS] <DEBUGINFO_JSON>")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    --version       Show version information")
	fmt.Println("    --version-json  Show version information as JSON")
	fmt.Println("    -o              Write assembly to file instead of stdout")
	fmt.Println("    --flavor        single: one combined section set; multi: one")
	fmt.Println("                    debug_info section per unit, shared abbrev table")
	fmt.Println("    --triple        Target triple recorded in the producer string")
	fmt.Println("    --watch         Re-emit whenever the input changes (needs -o)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("    dwarfgen prog.dbg.json")
	fmt.Println("    dwarfgen --flavor multi -o prog.debug.s prog.dbg.json")
}

func emitFile(input, outPath, flavor, triple string) error {
	prog, err := debuginfo.LoadFile(input)
	if err != nil {
		return err
	}
	if prog.Triple != "" {
		triple = prog.Triple
	}
	units, err := debuginfo.BuildUnits(prog, cli.Producer(toolName, triple))
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)

	e := dwarf.New(dwarf.DefaultTarget(), w)
	switch flavor {
	case "multi":
		err = e.EmitUnits(units)
	default:
		if len(units) != 1 {
			return fmt.Errorf("single flavor expects one unit, got %d", len(units))
		}
		err = e.EmitProgram(units[0].Root, units[0].Locations)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}

// watchLoop re-runs the emission whenever the input file is written.
// A failed re-emit is logged and the loop keeps going, so a transient
// half-written artifact does not kill the session.
func watchLoop(input, outPath, flavor, triple string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(input); err != nil {
		return err
	}
	log.Printf("watching %s", input)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := emitFile(input, outPath, flavor, triple); err != nil {
				log.Printf("re-emit failed: %v", err)
				continue
			}
			log.Printf("wrote %s", outPath)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher: %v", err)
		}
	}
}
