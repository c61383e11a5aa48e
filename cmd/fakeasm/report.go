package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/fakeasm/cpu"
	"github.com/ezrec/fakeasm/translate"
)

var f = translate.From

// writeListing writes the loaded program, one instruction per line.
func writeListing(w io.Writer, prog *cpu.Program) {
	for _, line := range prog.Lines() {
		fmt.Fprintln(w, line)
	}
}

// writeRegisters writes the register bank as decimal and binary lines.
func writeRegisters(w io.Writer, regs cpu.RegisterFile) {
	decimal, binary := regs.Dump()
	translate.Fprintf(w, "The registers contain\n")
	fmt.Fprintln(w, decimal)
	fmt.Fprintln(w, binary)
}

// writeTable writes the register bank and zero flag as a table.
func writeTable(w io.Writer, regs cpu.RegisterFile, zero bool) {
	regTable := table.NewWriter()
	regTable.SetOutputMirror(w)
	regTable.SetTitle(f("Registers"))
	regTable.AppendHeader(table.Row{f("Register"), f("Decimal"), f("Binary")})

	for n, val := range regs {
		regTable.AppendRow(table.Row{
			cpu.Register(n).String(),
			fmt.Sprintf("%d", val),
			fmt.Sprintf("0b%04b", uint32(val)),
		})
	}

	regTable.AppendFooter(table.Row{f("Zero"), fmt.Sprintf("%v", zero), ""})
	regTable.Render()
}
