package chip8

import "sync/atomic"

// constByteSource is a deterministic ByteSource for tests.
type constByteSource byte

func (c constByteSource) Byte() byte { return byte(c) }

// testRig wires a bare CPU/Display/Keypad together and drives them one
// fetch/decode/execute step at a time, without the scheduler's
// goroutines or locking — the core's effects are pure enough to test
// single-threaded.
type testRig struct {
	cpu     *CPU
	disp    *Display
	keys    *Keypad
	rnd     ByteSource
	running atomic.Bool
}

func newTestRig(mode Mode, rom []byte) *testRig {
	r := &testRig{
		cpu:  newCPU(mode),
		disp: newDisplay(),
		keys: newKeypad(),
		rnd:  constByteSource(0),
	}
	if err := r.cpu.loadROM(rom); err != nil {
		panic(err)
	}
	r.running.Store(true)
	return r
}

func (r *testRig) step() {
	in := r.cpu.fetchDecode()
	execute(in, r.cpu, r.disp, r.keys, r.rnd, &r.running, nil)
}

func (r *testRig) steps(n int) {
	for i := 0; i < n; i++ {
		r.step()
	}
}
