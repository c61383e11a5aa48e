package cpu

import (
	"errors"

	"github.com/ezrec/fakeasm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty = errors.New(f("ip empty"))
	ErrIpRange = errors.New(f("ip out of range"))

	// Instruction decode errors
	ErrInstructionMalformed = errors.New(f("instruction malformed"))
	ErrOperandMissing       = errors.New(f("operand missing"))
	ErrOperandExtra         = errors.New(f("excessive operands"))
	ErrOpcodeInvalid        = errors.New(f("opcode invalid"))

	// Loader errors
	ErrLabelEmpty = errors.New(f("label empty"))
)

// ErrLabelUnknown is a jump target missing from the label table.
type ErrLabelUnknown string

func (el ErrLabelUnknown) Error() string {
	return f("label %v missing", string(el))
}

// ErrInstructionUnknown is a mnemonic not in the instruction set.
type ErrInstructionUnknown string

func (ei ErrInstructionUnknown) Error() string {
	return f("instruction '%v' not recognized", string(ei))
}

// ErrRegisterInvalid is an operand that does not name R0 through R7.
type ErrRegisterInvalid string

func (er ErrRegisterInvalid) Error() string {
	return f("'%v' is not a register", string(er))
}

// ErrShiftInvalid is a shift amount that is not a single decimal digit.
type ErrShiftInvalid string

func (es ErrShiftInvalid) Error() string {
	return f("'%v' is not a shift amount", string(es))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrDecode attaches the offending instruction text to a decode error.
type ErrDecode struct {
	Ip          int
	Instruction Instruction
	Err         error
}

func (err *ErrDecode) Error() string {
	return f("ip %d '%v' %v", err.Ip, err.Instruction.String(), err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}
