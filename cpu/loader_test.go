package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoader(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}

	prog, err := ld.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, prog.Len())
	assert.Empty(prog.Labels)

	prog, err = Load("\n   \n\t\n\n")
	assert.NoError(err)
	assert.Equal(0, prog.Len())
	assert.Empty(prog.Labels)
}

func TestLoaderLabels(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   []string
		lines  []string
		labels map[string]int
	}){
		{"inline", []string{"loop: INC R0", "JNZ loop"},
			[]string{"INC R0", "JNZ loop"},
			map[string]int{"loop": 0}},
		{"alone", []string{"done:", "ZERO R0"},
			[]string{"ZERO R0"},
			map[string]int{"done": 0}},
		{"trailing", []string{"ZERO R0", "J end", "INC R0", "end:"},
			[]string{"ZERO R0", "J end", "INC R0"},
			map[string]int{"end": 3}},
		{"blanks", []string{"", "  ZERO R1  ", "", "  a :  ", "", " b:INC R1", "DEC R1"},
			[]string{"ZERO R1", "INC R1", "DEC R1"},
			map[string]int{"a": 1, "b": 1}},
		{"stacked", []string{"a:", "b:", "c: MOV R0, R1"},
			[]string{"MOV R0, R1"},
			map[string]int{"a": 0, "b": 0, "c": 0}},
		{"duplicate", []string{"x: INC R0", "x: DEC R0", "J x"},
			[]string{"INC R0", "DEC R0", "J x"},
			map[string]int{"x": 1}},
		{"case", []string{"Loop: INC R0", "loop: DEC R0"},
			[]string{"INC R0", "DEC R0"},
			map[string]int{"Loop": 0, "loop": 1}},
		{"colons", []string{"a: b: INC R0"},
			[]string{"b: INC R0"},
			map[string]int{"a": 0}},
	}

	for _, entry := range table {
		prog, err := Load(strings.Join(entry.text, "\n"))
		assert.NoError(err, entry.name)
		if err != nil {
			continue
		}
		assert.Equal(entry.lines, prog.Lines(), entry.name)
		assert.Equal(entry.labels, prog.Labels, entry.name)
		for _, ip := range prog.Labels {
			assert.LessOrEqual(ip, prog.Len(), entry.name)
		}
	}
}

func TestLoaderInstruction(t *testing.T) {
	assert := assert.New(t)

	prog, err := Load("\nstart:  add R0,  R1 ,R2\n\nJ start\nNOP\n")
	assert.NoError(err)

	expected := []Instruction{
		{2, "add", "R0,  R1 ,R2"},
		{4, "J", "start"},
		{5, "NOP", ""},
	}
	assert.Equal(expected, prog.Instructions)
	assert.Equal(2, prog.LineNo(0))
	assert.Equal(5, prog.LineNo(2))
	assert.Equal(0, prog.LineNo(3))

	ip, ok := prog.Label("start")
	assert.True(ok)
	assert.Equal(0, ip)

	_, ok = prog.Label("START")
	assert.False(ok)
}

func TestLoaderLabelEmpty(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   []string
		lineno int
	}){
		{"colon", []string{":"}, 1},
		{"inline", []string{"ZERO R0", "", "  : INC R0"}, 3},
		{"alone", []string{"ok:", "ZERO R0", "\t:"}, 3},
	}

	for _, entry := range table {
		_, err := Load(strings.Join(entry.text, "\n"))
		assert.ErrorIs(err, ErrLabelEmpty, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestLoaderReuse(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}

	first, err := ld.Parse(strings.NewReader("a: INC R0\nJ a"))
	assert.NoError(err)

	second, err := ld.Parse(strings.NewReader("b:\nDEC R1"))
	assert.NoError(err)

	assert.Equal([]string{"INC R0", "J a"}, first.Lines())
	assert.Equal(map[string]int{"a": 0}, first.Labels)
	assert.Equal([]string{"DEC R1"}, second.Lines())
	assert.Equal(map[string]int{"b": 0}, second.Labels)
}
