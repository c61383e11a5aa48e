// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/fakeasm/cpu"
)

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	TickLimit int // If non-zero, maximum instructions to execute per run.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(emu.Program)

	return
}

// Reset the emulator state, and attach the CPU to the current program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		emu.Program = &cpu.Program{}
	}

	emu.Cpu.Program = emu.Program
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if emu.Verbose {
		log.Printf("emulator: %v instructions, %v labels", emu.Program.Len(), len(emu.Program.Labels))
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Ip)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.TickLimit > 0 && emu.Cpu.Ticks >= emu.TickLimit && !emu.Cpu.Done() {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program completes.
func (emu *Emulator) Run() (regs cpu.RegisterFile, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			break
		}
	}

	regs = emu.Cpu.Register

	if emu.Verbose {
		log.Printf("emulator: %v ticks", emu.Ticks())
	}

	return
}
