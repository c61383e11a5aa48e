// Package cpu implements the loader and register machine for fakeasm.
//
// The loader resolves inline (`loop: INC R0`) and stand-alone (`done:`)
// labels into a flat instruction list and a label table. A label names the
// index of the next instruction emitted.
//
// The machine has eight signed 32-bit registers (R0-R7), a zero flag and an
// instruction pointer. It executes until the instruction pointer reaches the
// end of the program; there is no halt instruction.
//
// Note the conditional jumps: JZ jumps while the zero flag is clear, and JNZ
// jumps while it is set. Programs written for this machine rely on that.
package cpu
