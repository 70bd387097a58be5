package chip8

import (
	"log"
	"os"
)

// AudioView is the read-only snapshot Machine.SnapshotAudio hands to a
// host renderer: everything it needs to decide whether to play, and
// what.
type AudioView struct {
	SoundTimer         byte
	SoundPatternBuffer [16]byte
	PitchRegister      byte
	Mode               Mode
}

// Machine is the facade: it owns the CPU, display, keypad and
// scheduler, and is the only thing host code talks to. Every exported
// method takes the locks the scheduler's loops respect, so calling it
// concurrently with a running machine is safe.
type Machine struct {
	cpu     *CPU
	display *Display
	keypad  *Keypad
	sched   *scheduler
	logger  Logger
}

// New constructs a Machine in the given dialect, ready for LoadROM.
// The default logger writes to stderr; pass a custom Logger before
// Start to override it.
func New(mode Mode) *Machine {
	cpu := newCPU(mode)
	_, ipf := quirkProfile(mode)
	fps := 60
	m := &Machine{
		cpu:     cpu,
		display: newDisplay(),
		keypad:  newKeypad(),
		logger:  log.New(os.Stderr, "chip8: ", 0),
	}
	m.sched = newScheduler(cpu, m.display, m.keypad, newMathRandSource(), m.logger, ipf, fps)
	return m
}

// SetLogger overrides the diagnostic sink. Call before Start.
func (m *Machine) SetLogger(l Logger) {
	m.logger = l
	m.sched.logger = l
}

// LoadROM copies rom into memory starting at 0x200.
func (m *Machine) LoadROM(rom []byte) error {
	m.sched.cpuMu.Lock()
	defer m.sched.cpuMu.Unlock()
	return m.cpu.loadROM(rom)
}

// Start spawns the timer, CPU, and frame loops.
func (m *Machine) Start() {
	m.sched.start()
}

// Stop halts every loop and waits for them to exit.
func (m *Machine) Stop() {
	m.sched.stop()
}

// Pause sets IPF to 0, caching the prior value, so the CPU loop keeps
// ticking but executes nothing.
func (m *Machine) Pause() {
	m.sched.pause()
}

// Resume restores the IPF cached by Pause.
func (m *Machine) Resume() {
	m.sched.resume()
}

// SetMode reapplies mode's quirk defaults and default IPF. Memory,
// registers, and the display are untouched.
func (m *Machine) SetMode(mode Mode) {
	m.sched.cpuMu.Lock()
	ipf := m.cpu.applyMode(mode)
	m.sched.cpuMu.Unlock()
	m.sched.setIPF(ipf)
}

// SetQuirk overrides a single quirk flag without going through a mode
// change — an escape hatch for ROMs whose dialect doesn't match one of
// the four stock profiles exactly.
func (m *Machine) SetQuirk(set func(*Quirks)) {
	m.sched.cpuMu.Lock()
	defer m.sched.cpuMu.Unlock()
	set(&m.cpu.quirks)
}

// SetIPF overrides instructions-per-frame directly.
func (m *Machine) SetIPF(ipf uint32) {
	m.sched.setIPF(ipf)
}

// SetFPS overrides the CPU/frame loop rate.
func (m *Machine) SetFPS(fps int) {
	m.sched.setFPS(fps)
}

// PressKey sets or clears key index&0xF.
func (m *Machine) PressKey(index KeyIndex, down bool) {
	m.sched.keypadMu.Lock()
	defer m.sched.keypadMu.Unlock()
	m.keypad.press(index, down)
}

// ClearKeys releases every key, for host focus-loss handling.
func (m *Machine) ClearKeys() {
	m.sched.keypadMu.Lock()
	defer m.sched.keypadMu.Unlock()
	m.keypad.clearAll()
}

// SnapshotDisplay returns the most recently published frame, blocking
// until one is available.
func (m *Machine) SnapshotDisplay() Frame {
	return <-m.sched.frames
}

// SnapshotAudio returns the current audio-relevant CPU state.
func (m *Machine) SnapshotAudio() AudioView {
	m.sched.cpuMu.Lock()
	defer m.sched.cpuMu.Unlock()
	return AudioView{
		SoundTimer:         m.cpu.soundTimer,
		SoundPatternBuffer: m.cpu.soundPatternBuffer,
		PitchRegister:      m.cpu.pitchRegister,
		Mode:               m.cpu.mode,
	}
}
