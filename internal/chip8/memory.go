package chip8

// Memory map. CHIP-8 originally reserved the first 512 bytes for the
// interpreter itself; modern interpreters run outside that space and
// use the low memory for font data instead.
//
//	+----------------+= 0x10000 (65536) End of addressable memory
//	|                |
//	| 0x0200-0xFFFF  |
//	|  ROM / working |
//	|     memory     |
//	|                |
//	+----------------+= 0x0200 (512) Start of most CHIP-8 programs
//	| 0x00A0-0x013F  |
//	|   big font     |
//	+----------------+= 0x00A0 (160)
//	| 0x0050-0x009F  |
//	|  small font    |
//	+----------------+= 0x0050 (80)
//	| 0x0000-0x004F  |
//	|    unused      |
//	+----------------+= 0x0000
const (
	memorySize = 0x10000

	smallFontBase = 0x050
	bigFontBase   = 0x0A0

	romBase = 0x200
	maxROM  = memorySize - romBase
)

// smallFont is the conventional 4x5 hex digit glyph set, 16 glyphs at
// 5 bytes each.
var smallFont = [16 * 5]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// bigFont is the SuperChip 8x10 hex digit glyph set for digits 0-9
// only, 10 glyphs at 10 bytes each.
var bigFont = [10 * 10]byte{
	0x3C, 0x7E, 0xE7, 0xC3, 0xC3, 0xC3, 0xC3, 0xE7, 0x7E, 0x3C, // 0
	0x18, 0x38, 0x58, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, // 1
	0x7E, 0xFF, 0xC3, 0x06, 0x0C, 0x18, 0x30, 0x60, 0xFF, 0xFF, // 2
	0x7E, 0xFF, 0xC3, 0x03, 0x1E, 0x1E, 0x03, 0xC3, 0xFF, 0x7E, // 3
	0x06, 0x0E, 0x1E, 0x36, 0x66, 0xC6, 0xFF, 0xFF, 0x06, 0x06, // 4
	0xFF, 0xFF, 0xC0, 0xFC, 0xFE, 0x03, 0xC3, 0xFF, 0x7E, 0x00, // 5
	0x3E, 0x7C, 0xC0, 0xC0, 0xFC, 0xFE, 0xC3, 0xC3, 0x7E, 0x3C, // 6
	0xFF, 0xFF, 0x03, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x60, 0x60, // 7
	0x7E, 0xFF, 0xC3, 0xC3, 0x7E, 0x7E, 0xC3, 0xC3, 0xFF, 0x7E, // 8
	0x7E, 0xFF, 0xC3, 0xC3, 0x7F, 0x3F, 0x03, 0xC3, 0xFF, 0x7E, // 9
}

// loadFonts copies both font tables into their fixed memory addresses.
func (c *CPU) loadFonts() {
	copy(c.memory[smallFontBase:], smallFont[:])
	copy(c.memory[bigFontBase:], bigFont[:])
}

// loadROM copies rom into memory starting at 0x200. It returns
// ErrROMTooLarge without modifying memory if rom would overflow the
// addressable space.
func (c *CPU) loadROM(rom []byte) error {
	if len(rom) > maxROM {
		return &ErrROMTooLarge{Size: len(rom), Max: maxROM}
	}
	copy(c.memory[romBase:], rom)
	return nil
}
