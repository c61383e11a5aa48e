package cpu

import (
	"errors"
	"fmt"
	"strings"
)

// Opcode is an instruction operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ZERO = Opcode(0)  // ZERO
	OP_MOV  = Opcode(1)  // MOV
	OP_ADD  = Opcode(2)  // ADD
	OP_SUB  = Opcode(3)  // SUB
	OP_AND  = Opcode(4)  // AND
	OP_OR   = Opcode(5)  // OR
	OP_XOR  = Opcode(6)  // XOR
	OP_NOT  = Opcode(7)  // NOT
	OP_INC  = Opcode(8)  // INC
	OP_DEC  = Opcode(9)  // DEC
	OP_SHL  = Opcode(10) // SHL
	OP_SHR  = Opcode(11) // SHR
	OP_J    = Opcode(12) // J
	OP_JZ   = Opcode(13) // JZ
	OP_JNZ  = Opcode(14) // JNZ

	OP_COUNT = 15
)

// Operand kinds.
type operandKind int

const (
	kindRegister operandKind = iota
	kindShift
	kindLabel
)

// opForm is the operand signature of each opcode.
var opForm = [OP_COUNT][]operandKind{
	OP_ZERO: {kindRegister},
	OP_MOV:  {kindRegister, kindRegister},
	OP_ADD:  {kindRegister, kindRegister, kindRegister},
	OP_SUB:  {kindRegister, kindRegister, kindRegister},
	OP_AND:  {kindRegister, kindRegister, kindRegister},
	OP_OR:   {kindRegister, kindRegister, kindRegister},
	OP_XOR:  {kindRegister, kindRegister, kindRegister},
	OP_NOT:  {kindRegister},
	OP_INC:  {kindRegister},
	OP_DEC:  {kindRegister},
	OP_SHL:  {kindRegister, kindShift},
	OP_SHR:  {kindRegister, kindShift},
	OP_J:    {kindLabel},
	OP_JZ:   {kindLabel},
	OP_JNZ:  {kindLabel},
}

// opMap maps upper case mnemonics to opcodes.
var opMap = func() map[string]Opcode {
	m := make(map[string]Opcode, OP_COUNT)
	for op := range Opcode(OP_COUNT) {
		m[op.String()] = op
	}
	return m
}()

// LookupOpcode returns the opcode for a mnemonic, ignoring case.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opMap[strings.ToUpper(mnemonic)]
	return
}

// Arity returns the number of operands the opcode takes.
func (op Opcode) Arity() int {
	if op < 0 || op >= OP_COUNT {
		return 0
	}
	return len(opForm[op])
}

// SetsZero returns true if the opcode updates the zero flag.
func (op Opcode) SetsZero() bool {
	switch op {
	case OP_ADD, OP_SUB, OP_AND, OP_OR, OP_XOR, OP_NOT, OP_INC, OP_DEC:
		return true
	}
	return false
}

// IsJump returns true for control transfer opcodes.
func (op Opcode) IsJump() bool {
	return op == OP_J || op == OP_JZ || op == OP_JNZ
}

// Register is a register file index.
type Register int

const (
	REGISTER_COUNT = 8 // Size of the register file.
)

func (reg Register) String() string {
	return fmt.Sprintf("R%d", int(reg))
}

// ParseRegister parses a register token, 'R' (or 'r') and a digit 0-7.
func ParseRegister(token string) (reg Register, err error) {
	if len(token) != 2 || (token[0] != 'R' && token[0] != 'r') {
		err = ErrRegisterInvalid(token)
		return
	}
	if token[1] < '0' || token[1] >= '0'+REGISTER_COUNT {
		err = ErrRegisterInvalid(token)
		return
	}

	reg = Register(token[1] - '0')
	return
}

// ParseShift parses a shift amount, a single decimal digit.
func ParseShift(token string) (amount uint, err error) {
	if len(token) != 1 || token[0] < '0' || token[0] > '9' {
		err = ErrShiftInvalid(token)
		return
	}

	amount = uint(token[0] - '0')
	return
}

// Code is a decoded instruction.
type Code struct {
	Op    Opcode
	Dst   Register // Destination (and sole register operand).
	SrcA  Register // First source register.
	SrcB  Register // Second source register.
	Shift uint     // SHL/SHR amount.
	Label string   // Jump target.
}

// Decode decodes an instruction into a Code.
func Decode(inst Instruction) (code Code, err error) {
	op, ok := LookupOpcode(inst.Mnemonic)
	if !ok {
		err = ErrInstructionUnknown(inst.Mnemonic)
		return
	}

	code.Op = op

	if len(inst.Operands) == 0 {
		err = errors.Join(ErrInstructionMalformed, ErrOperandMissing)
		return
	}

	words := strings.Split(inst.Operands, ",")
	for n := range words {
		words[n] = strings.TrimSpace(words[n])
	}

	form := opForm[op]
	if len(words) < len(form) {
		err = errors.Join(ErrInstructionMalformed, ErrOperandMissing)
		return
	}
	if len(words) > len(form) {
		err = errors.Join(ErrInstructionMalformed, ErrOperandExtra)
		return
	}

	regs := [](*Register){&code.Dst, &code.SrcA, &code.SrcB}
	for n, kind := range form {
		word := words[n]
		switch kind {
		case kindRegister:
			*regs[n], err = ParseRegister(word)
		case kindShift:
			code.Shift, err = ParseShift(word)
		case kindLabel:
			code.Label = word
		}
		if err != nil {
			return
		}
	}

	return
}

// String returns the assembly language representation of this code.
func (code Code) String() string {
	switch code.Op.Arity() {
	case 1:
		if code.Op.IsJump() {
			return fmt.Sprintf("%v %v", code.Op, code.Label)
		}
		return fmt.Sprintf("%v %v", code.Op, code.Dst)
	case 2:
		if code.Op == OP_MOV {
			return fmt.Sprintf("%v %v, %v", code.Op, code.Dst, code.SrcA)
		}
		return fmt.Sprintf("%v %v, %d", code.Op, code.Dst, code.Shift)
	case 3:
		return fmt.Sprintf("%v %v, %v, %v", code.Op, code.Dst, code.SrcA, code.SrcB)
	}

	return code.Op.String()
}
