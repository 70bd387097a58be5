package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuirkProfileTable(t *testing.T) {
	cases := []struct {
		mode Mode
		want Quirks
		ipf  uint32
	}{
		{ModeChip8, Quirks{LoadStoreIncrementsI: true, LogicClearsVF: true}, 100},
		{ModeSuperChip, Quirks{ShiftUsesXOnly: true, JumpUsesVX: true}, 500},
		{ModeXOChip, Quirks{LoadStoreIncrementsI: true, AllowScrollInLoRes: true}, 1000},
		{ModeExperimental, Quirks{AllowScrollInLoRes: true}, 500},
	}
	for _, c := range cases {
		quirks, ipf := quirkProfile(c.mode)
		assert.Equalf(t, c.want, quirks, "mode %s", c.mode)
		assert.Equalf(t, c.ipf, ipf, "mode %s", c.mode)
	}
}

func TestParseModeAliasesAndDefault(t *testing.T) {
	assert.Equal(t, ModeSuperChip, ParseMode("superchip"))
	assert.Equal(t, ModeSuperChip, ParseMode("schip"))
	assert.Equal(t, ModeXOChip, ParseMode("xochip"))
	assert.Equal(t, ModeXOChip, ParseMode("xo-chip"))
	assert.Equal(t, ModeExperimental, ParseMode("experimental"))
	assert.Equal(t, ModeChip8, ParseMode("nonsense"))
}
