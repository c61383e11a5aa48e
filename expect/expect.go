// Package expect checks the final machine state against a Starlark expression.
//
// The expression sees the registers as the integers R0 through R7 (and as
// the list regs), and the zero flag as the boolean Z:
//
//	R0 == 2 and not Z
//	regs[7] == -1
package expect

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/fakeasm/cpu"
	"github.com/ezrec/fakeasm/translate"
)

var f = translate.From

var (
	ErrNotBool = errors.New(f("expectation is not a boolean"))
)

// ErrExpression is an expectation that could not be evaluated.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("expect %v: %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// Predeclared returns the names visible to an expectation.
func Predeclared(regs cpu.RegisterFile, zero bool) (pred starlark.StringDict) {
	pred = starlark.StringDict{}

	list := make([]starlark.Value, len(regs))
	for n, val := range regs {
		list[n] = starlark.MakeInt(int(val))
		pred[cpu.Register(n).String()] = list[n]
	}
	pred["regs"] = starlark.NewList(list)
	pred["Z"] = starlark.Bool(zero)

	pred.Freeze()

	return
}

// Check evaluates expr against the registers and zero flag.
func Check(expr string, regs cpu.RegisterFile, zero bool) (ok bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "expect"}
	opts := syntax.FileOptions{}
	prog := fmt.Sprintf("rc = (%v)\n", expr)
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expect", prog, Predeclared(regs, zero))
	if err != nil {
		return
	}

	st_rc, found := dict["rc"]
	if !found {
		err = ErrNotBool
		return
	}

	st_bool, is_bool := st_rc.(starlark.Bool)
	if !is_bool {
		err = ErrNotBool
		return
	}

	ok = bool(st_bool)
	return
}

// CheckCpu evaluates expr against the state of a CPU.
func CheckCpu(expr string, cp *cpu.Cpu) (ok bool, err error) {
	return Check(expr, cp.Register, cp.Zero)
}
