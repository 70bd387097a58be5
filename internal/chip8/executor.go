package chip8

import "sync/atomic"

// fetchDecode reads the instruction at PC, advances PC past it (the
// "pre-advance"; jumps/calls/skips override this afterward), and
// decodes it. Every instruction enters execute() with PC already one
// step ahead of itself, which lets 00EE's return address be "PC as of
// the call" and F000's trailing word be read straight off the
// post-advance PC.
func (c *CPU) fetchDecode() Instruction {
	word := c.fetch()
	c.advance()
	return decode(word)
}

// execute applies in's effect to cpu/disp/keys under cpu's active
// quirk profile. halt is the running flag, set false by the two halt opcodes; logger
// receives non-fatal diagnostics (stack underflow, unknown opcode).
func execute(in Instruction, cpu *CPU, disp *Display, keys *Keypad, rnd ByteSource, halt *atomic.Bool, logger Logger) {
	x, y, n, nn, nnn := in.X, in.Y, in.N, in.NN, in.NNN

	switch in.Op {
	case op00BN, op00DN:
		disp.scrollUp(int(n))
	case op00CN:
		disp.scrollDown(int(n))
	case op00E0:
		disp.clearSelected()
	case op00EE:
		if addr, ok := cpu.popStack(); ok {
			cpu.pc = addr
		} else if logger != nil {
			logger.Printf("%v", errStackUnderflow{})
		}
	case op00FB:
		disp.scrollRight(4)
	case op00FC:
		disp.scrollLeft(4)
	case op00FD, op0000:
		halt.Store(false)
	case op00FE:
		disp.hires = false
	case op00FF:
		disp.hires = true
	case op1NNN:
		cpu.pc = nnn
	case op2NNN:
		cpu.pushStack(cpu.pc)
		cpu.pc = nnn
	case op3XNN:
		if cpu.v[x] == nn {
			cpu.skipNext()
		}
	case op4XNN:
		if cpu.v[x] != nn {
			cpu.skipNext()
		}
	case op5XY0:
		if cpu.v[x] == cpu.v[y] {
			cpu.skipNext()
		}
	case op5XY2:
		storeRange(cpu, x, y, func(idx int, reg byte) { cpu.memory[memIdx(cpu.i, idx)] = cpu.v[reg] })
	case op5XY3:
		storeRange(cpu, x, y, func(idx int, reg byte) { cpu.v[reg] = cpu.memory[memIdx(cpu.i, idx)] })
	case op6XNN:
		cpu.v[x] = nn
	case op7XNN:
		cpu.v[x] += nn
	case op8XY0:
		cpu.v[x] = cpu.v[y]
	case op8XY1:
		cpu.v[x] = cpu.v[x] | cpu.v[y]
		if cpu.quirks.LogicClearsVF {
			cpu.v[0xF] = 0
		}
	case op8XY2:
		cpu.v[x] = cpu.v[x] & cpu.v[y]
		if cpu.quirks.LogicClearsVF {
			cpu.v[0xF] = 0
		}
	case op8XY3:
		cpu.v[x] = cpu.v[x] ^ cpu.v[y]
		if cpu.quirks.LogicClearsVF {
			cpu.v[0xF] = 0
		}
	case op8XY4:
		sum := uint16(cpu.v[x]) + uint16(cpu.v[y])
		cpu.v[x] = byte(sum)
		cpu.v[0xF] = boolByte(sum > 0xFF)
	case op8XY5:
		borrow := cpu.v[x] < cpu.v[y]
		cpu.v[x] = cpu.v[x] - cpu.v[y]
		cpu.v[0xF] = boolByte(!borrow)
	case op8XY6:
		if !cpu.quirks.ShiftUsesXOnly {
			cpu.v[x] = cpu.v[y]
		}
		bit := cpu.v[x] & 0x01
		cpu.v[x] >>= 1
		cpu.v[0xF] = bit
	case op8XY7:
		borrow := cpu.v[y] < cpu.v[x]
		cpu.v[x] = cpu.v[y] - cpu.v[x]
		cpu.v[0xF] = boolByte(!borrow)
	case op8XYE:
		if !cpu.quirks.ShiftUsesXOnly {
			cpu.v[x] = cpu.v[y]
		}
		bit := (cpu.v[x] & 0x80) >> 7
		cpu.v[x] <<= 1
		cpu.v[0xF] = bit
	case op9XY0:
		if cpu.v[x] != cpu.v[y] {
			cpu.skipNext()
		}
	case opANNN:
		cpu.i = nnn
	case opBNNN:
		if cpu.quirks.JumpUsesVX {
			hi := byte(nnn >> 8 & 0xF)
			cpu.pc = nnn + uint16(cpu.v[hi])
		} else {
			cpu.pc = nnn + uint16(cpu.v[0])
		}
	case opCXNN:
		cpu.v[x] = rnd.Byte() & nn
	case opDXYN:
		drawSprite8(cpu, disp, x, y, n)
	case opDXY0:
		drawSprite16(cpu, disp, x, y)
	case opEX9E:
		if keys.isDown(KeyIndex(cpu.v[x] & 0x0F)) {
			cpu.skipNext()
		}
	case opEXA1:
		if !keys.isDown(KeyIndex(cpu.v[x] & 0x0F)) {
			cpu.skipNext()
		}
	case opF000:
		nnnn := uint16(cpu.memory[cpu.pc])<<8 | uint16(cpu.memory[cpu.pc+1])
		cpu.i = nnnn
		cpu.pc += 2
	case opFN01:
		disp.selectPlane(x)
	case opF002:
		for i := 0; i < 16; i++ {
			cpu.soundPatternBuffer[i] = cpu.memory[memIdx(cpu.i, i)]
		}
	case opFX07:
		cpu.v[x] = cpu.delayTimer
	case opFX0A:
		execFX0A(cpu, keys, x)
	case opFX15:
		cpu.delayTimer = cpu.v[x]
	case opFX18:
		cpu.soundTimer = cpu.v[x]
	case opFX1E:
		sum := uint32(cpu.i) + uint32(cpu.v[x])
		cpu.i = uint16(sum)
		if cpu.quirks.AddISetsVF {
			cpu.v[0xF] = boolByte(sum > 0xFFFF)
		}
	case opFX29:
		cpu.i = smallFontBase + uint16(cpu.v[x]&0x0F)*5
	case opFX30:
		cpu.i = bigFontBase + uint16(cpu.v[x]&0x0F)*10
	case opFX33:
		val := cpu.v[x]
		cpu.memory[cpu.i] = val / 100
		cpu.memory[cpu.i+1] = (val / 10) % 10
		cpu.memory[cpu.i+2] = val % 10
	case opFX3A:
		cpu.pitchRegister = cpu.v[x]
	case opFX55:
		for i := 0; i <= int(x); i++ {
			cpu.memory[memIdx(cpu.i, i)] = cpu.v[i]
		}
		if cpu.quirks.LoadStoreIncrementsI {
			cpu.i += uint16(x) + 1
		}
	case opFX65:
		for i := 0; i <= int(x); i++ {
			cpu.v[i] = cpu.memory[memIdx(cpu.i, i)]
		}
		if cpu.quirks.LoadStoreIncrementsI {
			cpu.i += uint16(x) + 1
		}
	case opFX75:
		for i := 0; i <= int(x); i++ {
			cpu.rplFlags[i] = cpu.v[i]
		}
	case opFX85:
		for i := 0; i <= int(x); i++ {
			cpu.v[i] = cpu.rplFlags[i]
		}
	default: // opUnknown
		if logger != nil {
			logger.Printf("%v", errUnknownOpcode{Word: in.Word})
		}
	}
}

// memIdx wraps base+offset modulo the 64 KiB address space in uint16
// arithmetic before it ever becomes a slice index, so an I near the
// top of memory (legal via F000) can't produce an out-of-range int.
func memIdx(base uint16, offset int) uint16 {
	return base + uint16(offset)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// storeRange walks V[x..=y] ascending or descending (descending when
// x>y) and calls f(idx, reg) for each register in that walk, idx
// counting up from 0. Used by 5XY2/5XY3, which never touch I.
func storeRange(cpu *CPU, x, y byte, f func(idx int, reg byte)) {
	if x <= y {
		idx := 0
		for reg := x; ; reg++ {
			f(idx, reg)
			idx++
			if reg == y {
				break
			}
		}
	} else {
		idx := 0
		for reg := x; ; reg-- {
			f(idx, reg)
			idx++
			if reg == y {
				break
			}
		}
	}
}

func execFX0A(cpu *CPU, keys *Keypad, x byte) {
	if cpu.hasAwaitingKey {
		if !keys.isDown(cpu.awaitingKey) {
			cpu.v[x] = byte(cpu.awaitingKey)
			cpu.hasAwaitingKey = false
			return // instruction completes; PC stays at its pre-advanced value
		}
		cpu.pc -= 2 // still held down, retry next tick
		return
	}
	if key, ok := keys.firstDown(); ok {
		cpu.awaitingKey = key
		cpu.hasAwaitingKey = true
	}
	cpu.pc -= 2 // no release observed yet, retry next tick
}

// drawScale is 1 in hi-res, 2 in lo-res (each source pixel becomes a
// 2x2 block on the always-128x64 framebuffer).
func drawScale(disp *Display) int {
	if disp.hires {
		return 1
	}
	return 2
}

func drawSprite8(cpu *CPU, disp *Display, xReg, yReg, rows byte) {
	scale := drawScale(disp)
	x0 := (int(cpu.v[xReg]) * scale) % DisplayWidth
	y0 := (int(cpu.v[yReg]) * scale) % DisplayHeight
	cpu.v[0xF] = 0
	collided := false
	allowWrap := !disp.hires && cpu.quirks.AllowScrollInLoRes

	planes := disp.selectedPlanes()
	for planeN, planeIdx := range planes {
		stride := int(rows)
		for row := 0; row < int(rows)*scale; row++ {
			b := cpu.memory[memIdx(cpu.i, row/scale+planeN*stride)]
			for col := 0; col < 8*scale; col++ {
				if (b>>(7-col/scale))&1 != 1 {
					continue
				}
				if disp.drawPixel(planeIdx, x0+col, y0+row, allowWrap) {
					collided = true
				}
			}
		}
	}
	if collided {
		cpu.v[0xF] = 1
	}
}

func drawSprite16(cpu *CPU, disp *Display, xReg, yReg byte) {
	scale := drawScale(disp)
	x0 := (int(cpu.v[xReg]) * scale) % DisplayWidth
	y0 := (int(cpu.v[yReg]) * scale) % DisplayHeight
	cpu.v[0xF] = 0
	collided := false
	allowWrap := !disp.hires && cpu.quirks.AllowScrollInLoRes

	planes := disp.selectedPlanes()
	for planeN, planeIdx := range planes {
		const stride = 32 // 16 rows * 2 bytes
		for row := 0; row < 16*scale; row++ {
			offset := (row/scale)*2 + planeN*stride
			word := uint16(cpu.memory[memIdx(cpu.i, offset)])<<8 | uint16(cpu.memory[memIdx(cpu.i, offset+1)])
			for col := 0; col < 16*scale; col++ {
				if (word>>(15-col/scale))&1 != 1 {
					continue
				}
				if disp.drawPixel(planeIdx, x0+col, y0+row, allowWrap) {
					collided = true
				}
			}
		}
	}
	if collided {
		cpu.v[0xF] = 1
	}
}
