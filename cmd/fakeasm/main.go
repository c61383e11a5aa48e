// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"os"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/fakeasm/cpu"
	"github.com/ezrec/fakeasm/emulator"
	"github.com/ezrec/fakeasm/expect"
	"github.com/ezrec/fakeasm/translate"
)

func main() {
	var verbose bool
	var limit int
	var check string
	var tabular bool
	var plain bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to execute (0 is unlimited)")
	flag.StringVar(&check, "e", "", "Starlark expectation on the final registers")
	flag.BoolVar(&tabular, "t", false, "Always print registers as a table")
	flag.BoolVar(&plain, "plain", false, "Never print registers as a table")

	flag.Parse()

	if flag.NArg() != 1 {
		atexit.Fatalf("%v: Path to assembly file was not provided. Use '%v <file>'.", os.Args[0], os.Args[0])
	}

	source := flag.Arg(0)

	inf, err := os.Open(source)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}
	atexit.Register(func() { inf.Close() })

	ld := &cpu.Loader{Verbose: verbose}
	prog, err := ld.Parse(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	if verbose {
		translate.Fprintf(os.Stdout, "Your program has been registered as\n")
		writeListing(os.Stdout, prog)
		translate.Fprintf(os.Stdout, "\nRunning your program...\n")
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.TickLimit = limit

	err = emu.Reset()
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	regs, err := emu.Run()
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	if !plain && (tabular || term.IsTerminal(int(os.Stdout.Fd()))) {
		writeTable(os.Stdout, regs, emu.Cpu.Zero)
	} else {
		writeRegisters(os.Stdout, regs)
	}

	if len(check) != 0 {
		ok, err := expect.CheckCpu(check, emu.Cpu)
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}
		if !ok {
			translate.Fprintf(os.Stderr, "%v: expectation failed: %v\n", source, check)
			atexit.Exit(1)
		}
	}

	atexit.Exit(0)
}
