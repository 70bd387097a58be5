package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeOpcodeFamilies(t *testing.T) {
	cases := []struct {
		word uint16
		op   Op
	}{
		{0x00E0, op00E0},
		{0x00EE, op00EE},
		{0x00FD, op00FD},
		{0x0000, op0000},
		{0x00BA, op00BN},
		{0x1234, op1NNN},
		{0x2345, op2NNN},
		{0x3A12, op3XNN},
		{0x5120, op5XY0},
		{0x5122, op5XY2},
		{0x5123, op5XY3},
		{0x8014, op8XY4},
		{0x801E, op8XYE},
		{0x9AB0, op9XY0},
		{0xD123, opDXYN},
		{0xD120, opDXY0},
		{0xE19E, opEX9E},
		{0xE1A1, opEXA1},
		{0xF000, opF000},
		{0xF201, opFN01},
		{0xF002, opF002},
		{0xF10A, opFX0A},
		{0xF155, opFX55},
		{0xF165, opFX65},
		{0xF175, opFX75},
		{0xF185, opFX85},
		{0x5124, opUnknown},
		{0xE1FF, opUnknown},
	}
	for _, c := range cases {
		in := decode(c.word)
		assert.Equalf(t, c.op, in.Op, "word 0x%04X", c.word)
	}
}

func TestDecodeFieldExtraction(t *testing.T) {
	in := decode(0x8AB4)
	assert.Equal(t, byte(0xA), in.X)
	assert.Equal(t, byte(0xB), in.Y)
	assert.Equal(t, byte(0x4), in.N)
	assert.Equal(t, op8XY4, in.Op)

	in2 := decode(0x6A02)
	assert.Equal(t, byte(0xA), in2.X)
	assert.Equal(t, byte(0x02), in2.NN)

	in3 := decode(0xA300)
	assert.Equal(t, uint16(0x300), in3.NNN)
}
