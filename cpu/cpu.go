package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// RegisterFile is the register bank, R0 through R7.
type RegisterFile [REGISTER_COUNT]int32

// Cpu is the simulation context for the register machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Program being executed.

	Ip       int          // Current instruction pointer.
	Register RegisterFile // Register bank.
	Zero     bool         // Zero flag.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU for a program, in reset state.
func NewCpu(prog *Program) (cpu *Cpu) {
	if prog == nil {
		prog = &Program{}
	}

	cpu = &Cpu{
		Program: prog,
	}
	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Sets the zero flag.
// - Sets the instruction pointer to the first instruction.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Zero = true
	cpu.Ip = 0
	cpu.Ticks = 0
}

// Done returns true once the instruction pointer has reached the end of the program.
func (cpu *Cpu) Done() bool {
	return cpu.Ip == cpu.Program.Len()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %v\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %v\n", "zero", cpu.Zero)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %-11d 0b%04b\n", Register(n).String(), val, uint32(val))
	}

	return
}

// Fetch decodes the instruction at the instruction pointer.
func (cpu *Cpu) Fetch() (code Code, err error) {
	if cpu.Done() {
		err = ErrIpEmpty
		return
	}

	if cpu.Ip < 0 || cpu.Ip > cpu.Program.Len() {
		err = ErrIpRange
		return
	}

	inst := cpu.Program.Instructions[cpu.Ip]
	code, err = Decode(inst)
	if err != nil {
		err = &ErrDecode{Ip: cpu.Ip, Instruction: inst, Err: err}
		return
	}

	return
}

// Tick executes a single instruction cycle.
// Returns ErrIpEmpty when the program has finished.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	return
}

// Run executes until the end of the program, and returns the register bank.
// On error, the registers hold the state left by the last good instruction.
func (cpu *Cpu) Run() (regs RegisterFile, err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrIpEmpty) {
			err = nil
			break
		}
		if err != nil {
			break
		}
	}

	regs = cpu.Register
	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, code)
	}

	next_ip := cpu.Ip + 1
	reg := &cpu.Register

	switch code.Op {
	case OP_ZERO:
		reg[code.Dst] = 0
	case OP_MOV:
		reg[code.Dst] = reg[code.SrcA]
	case OP_ADD:
		reg[code.Dst] = reg[code.SrcA] + reg[code.SrcB]
	case OP_SUB:
		reg[code.Dst] = reg[code.SrcA] - reg[code.SrcB]
	case OP_AND:
		reg[code.Dst] = reg[code.SrcA] & reg[code.SrcB]
	case OP_OR:
		reg[code.Dst] = reg[code.SrcA] | reg[code.SrcB]
	case OP_XOR:
		reg[code.Dst] = reg[code.SrcA] ^ reg[code.SrcB]
	case OP_NOT:
		reg[code.Dst] = ^reg[code.Dst]
	case OP_INC:
		reg[code.Dst] += 1
	case OP_DEC:
		reg[code.Dst] -= 1
	case OP_SHL:
		reg[code.Dst] <<= code.Shift
	case OP_SHR:
		// Signed, so the shift is arithmetic.
		reg[code.Dst] >>= code.Shift
	case OP_J, OP_JZ, OP_JNZ:
		var taken bool
		switch code.Op {
		case OP_J:
			taken = true
		case OP_JZ:
			taken = !cpu.Zero
		case OP_JNZ:
			taken = cpu.Zero
		}
		if taken {
			var ok bool
			next_ip, ok = cpu.Program.Label(code.Label)
			if !ok {
				err = ErrLabelUnknown(code.Label)
				return
			}
		}
	default:
		err = errors.Join(ErrOpcodeInvalid, ErrInstructionUnknown(code.Op.String()))
		return
	}

	if code.Op.SetsZero() {
		cpu.Zero = reg[code.Dst] == 0
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1

	return
}

// Dump formats a register bank as the decimal and binary listings
//
//	R0=2, R1=0, ...
//	R0=0b0010, R1=0b0000, ...
func (regs RegisterFile) Dump() (decimal string, binary string) {
	dec := make([]string, len(regs))
	bin := make([]string, len(regs))
	for n, val := range regs {
		dec[n] = fmt.Sprintf("%v=%d", Register(n), val)
		bin[n] = fmt.Sprintf("%v=0b%04b", Register(n), uint32(val))
	}

	decimal = strings.Join(dec, ", ")
	binary = strings.Join(bin, ", ")
	return
}
