package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadROMTooLarge(t *testing.T) {
	c := newCPU(ModeChip8)
	err := c.loadROM(make([]byte, maxROM+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rom too large")
}

func TestLoadROMCopiesAtRomBase(t *testing.T) {
	c := newCPU(ModeChip8)
	require.NoError(t, c.loadROM([]byte{0xAB, 0xCD}))
	assert.Equal(t, byte(0xAB), c.memory[romBase])
	assert.Equal(t, byte(0xCD), c.memory[romBase+1])
}

func TestFontTablesLoadedAtFixedAddresses(t *testing.T) {
	c := newCPU(ModeChip8)
	assert.Equal(t, []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}, c.memory[smallFontBase:smallFontBase+5])
	assert.Equal(t, []byte{0xF0, 0x80, 0x80, 0x80, 0xF0}, c.memory[smallFontBase+12*5:smallFontBase+12*5+5], "digit C")
}
