package chip8

// Op tags a decoded Instruction. The opcode space is non-rectangular
// (0x00xx, 0x5xxN, 0x8xxN, 0xFxxx families each dispatch on a
// different nibble) so the decoder produces one of these tags rather
// than the executor re-deriving it from the raw word on every branch.
type Op int

const (
	opUnknown Op = iota
	op00BN
	op00CN
	op00DN
	op00E0
	op00EE
	op00FB
	op00FC
	op00FD
	op0000
	op00FE
	op00FF
	op1NNN
	op2NNN
	op3XNN
	op4XNN
	op5XY0
	op5XY2
	op5XY3
	op6XNN
	op7XNN
	op8XY0
	op8XY1
	op8XY2
	op8XY3
	op8XY4
	op8XY5
	op8XY6
	op8XY7
	op8XYE
	op9XY0
	opANNN
	opBNNN
	opCXNN
	opDXYN
	opDXY0
	opEX9E
	opEXA1
	opF000
	opFN01
	opF002
	opFX07
	opFX0A
	opFX15
	opFX18
	opFX1E
	opFX29
	opFX30
	opFX33
	opFX3A
	opFX55
	opFX65
	opFX75
	opFX85
)

// Instruction is a decoded opcode: a tag plus the word's fields. decode
// fills every field from the word; each tag's semantics read only the
// fields they need.
type Instruction struct {
	Op  Op
	X   byte
	Y   byte
	N   byte
	NN  byte
	NNN uint16

	// Word is the raw 16-bit word this was decoded from, kept only for
	// errUnknownOpcode reporting.
	Word uint16
}
