// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strings"
)

// Loader is a single pass label resolver for fakeasm source text.
type Loader struct {
	Verbose     bool          // If set, verbosely logs the loader actions.
	Instruction []Instruction // List of loaded instructions.

	Label map[string]int // Map of jump labels to instruction indexes.
}

// Load loads program text.
func Load(text string) (prog *Program, err error) {
	ld := &Loader{}
	return ld.Parse(strings.NewReader(text))
}

// currentIp gets the index of the next instruction to be loaded.
func (ld *Loader) currentIp() int {
	return len(ld.Instruction)
}

// parseLine loads a single, trimmed, non-blank line.
func (ld *Loader) parseLine(line string, lineno int) (err error) {
	text := line

	label, rest, has_label := strings.Cut(line, ":")
	if has_label {
		label = strings.TrimSpace(label)
		if len(label) == 0 {
			err = ErrLabelEmpty
			return
		}

		// Redefinition replaces the earlier label.
		if ld.Verbose {
			if ip, ok := ld.Label[label]; ok {
				log.Printf("%v: label %v redefined (was %v)", lineno, label, ip)
			}
		}

		ld.Label[label] = ld.currentIp()
		if ld.Verbose {
			log.Printf("%v: label %v = %v", lineno, label, ld.currentIp())
		}

		text = strings.TrimSpace(rest)
		if len(text) == 0 {
			return
		}
	}

	ld.Instruction = append(ld.Instruction, MakeInstruction(lineno, text))

	return
}

// Parse parses an input stream into a Program.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	ld.Instruction = ld.Instruction[:0]
	ld.Label = make(map[string]int)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)
		if len(line) == 0 {
			continue
		}

		err = ld.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: slices.Clone(ld.Instruction),
		Labels:       ld.Label,
	}

	return
}
