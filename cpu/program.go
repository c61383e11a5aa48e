package cpu

import (
	"iter"
	"strings"
)

// Instruction is one line of program text, split at the first space.
type Instruction struct {
	LineNo   int    // Source line number.
	Mnemonic string // Opcode mnemonic, as written.
	Operands string // Raw operand text, empty if there was no space.
}

// MakeInstruction splits trimmed instruction text into an Instruction.
func MakeInstruction(lineno int, text string) Instruction {
	mnemonic, operands, _ := strings.Cut(text, " ")
	return Instruction{
		LineNo:   lineno,
		Mnemonic: mnemonic,
		Operands: operands,
	}
}

// String returns the instruction text.
func (inst Instruction) String() string {
	if len(inst.Operands) == 0 {
		return inst.Mnemonic
	}
	return inst.Mnemonic + " " + inst.Operands
}

// Program is a loaded program: a flat instruction list and its jump labels.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int // Map of jump labels to instruction indexes.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Label returns the instruction index of a jump label.
func (prog *Program) Label(label string) (ip int, ok bool) {
	ip, ok = prog.Labels[label]
	return
}

// Lines returns the instruction text of the program, in order.
func (prog *Program) Lines() (lines []string) {
	for _, inst := range prog.All() {
		lines = append(lines, inst.String())
	}
	return
}

// All iterates over the instructions and their indexes.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, inst Instruction) bool) {
		for ip, inst := range prog.Instructions {
			if !yield(ip, inst) {
				return
			}
		}
	}
}

// LineNo returns the source line of the instruction at ip, or 0.
func (prog *Program) LineNo(ip int) int {
	if ip < 0 || ip >= len(prog.Instructions) {
		return 0
	}
	return prog.Instructions[ip].LineNo
}
