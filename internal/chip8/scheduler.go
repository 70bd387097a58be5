package chip8

import (
	"sync"
	"sync/atomic"
	"time"
)

// scheduler runs three cooperative loops: timer (fixed 60Hz), CPU
// (executes an IPF batch per tick), and frame (publishes a display
// snapshot). Each loop measures its period, does its work under lock,
// then sleeps the remainder — never holding a lock across the sleep.
type scheduler struct {
	cpu     *CPU
	display *Display
	keypad  *Keypad
	rnd     ByteSource
	logger  Logger

	cpuMu     sync.Mutex
	displayMu sync.Mutex
	keypadMu  sync.Mutex

	// running is read at the top of every loop iteration and written
	// both by Stop and by the 00FD/0000 halt opcodes — a ROM-triggered
	// halt has the same effect as an external Stop.
	running atomic.Bool

	ipf       atomic.Uint32
	pausedIPF uint32 // only touched under cpuMu, via pause/resume/setIPF

	fpsPeriod atomic.Int64 // nanoseconds

	wg sync.WaitGroup

	frames chan Frame
}

func newScheduler(cpu *CPU, display *Display, keypad *Keypad, rnd ByteSource, logger Logger, ipf uint32, fps int) *scheduler {
	s := &scheduler{
		cpu:     cpu,
		display: display,
		keypad:  keypad,
		rnd:     rnd,
		logger:  logger,
		frames:  make(chan Frame, 2),
	}
	s.ipf.Store(ipf)
	s.fpsPeriod.Store(int64(time.Second) / int64(fps))
	return s
}

// start launches the three loops. Safe to call once per scheduler.
func (s *scheduler) start() {
	s.running.Store(true)

	s.wg.Add(3)
	go s.timerLoop()
	go s.cpuLoop()
	go s.frameLoop()
}

// stop signals every loop to exit, waits for them to finish, then
// zeros the display so a SnapshotDisplay taken after stop sees a
// blank frame instead of whatever the ROM last drew.
func (s *scheduler) stop() {
	s.running.Store(false)
	s.wg.Wait()

	s.displayMu.Lock()
	s.display.clearAll()
	blank := s.display.snapshot()
	s.displayMu.Unlock()

	for { // drop whatever stale frames are sitting in the buffer
		select {
		case <-s.frames:
			continue
		default:
		}
		break
	}
	select {
	case s.frames <- blank:
	default:
	}
}

func (s *scheduler) pause() {
	s.cpuMu.Lock()
	defer s.cpuMu.Unlock()
	if s.pausedIPF == 0 {
		s.pausedIPF = s.ipf.Load()
		s.ipf.Store(0)
	}
}

func (s *scheduler) resume() {
	s.cpuMu.Lock()
	defer s.cpuMu.Unlock()
	if s.pausedIPF != 0 {
		s.ipf.Store(s.pausedIPF)
		s.pausedIPF = 0
	}
}

func (s *scheduler) setIPF(n uint32) {
	s.cpuMu.Lock()
	defer s.cpuMu.Unlock()
	if s.pausedIPF != 0 {
		s.pausedIPF = n // still paused; apply once resumed
		return
	}
	s.ipf.Store(n)
}

func (s *scheduler) setFPS(fps int) {
	if fps <= 0 {
		return
	}
	s.fpsPeriod.Store(int64(time.Second) / int64(fps))
}

func (s *scheduler) period() time.Duration {
	return time.Duration(s.fpsPeriod.Load())
}

func (s *scheduler) timerLoop() {
	defer s.wg.Done()
	const period = time.Second / 60
	for s.running.Load() {
		start := time.Now()
		s.cpuMu.Lock()
		s.cpu.tickTimers()
		s.cpuMu.Unlock()
		sleepRemainder(start, period)
	}
}

func (s *scheduler) cpuLoop() {
	defer s.wg.Done()
	for s.running.Load() {
		start := time.Now()
		period := s.period()

		ipf := int(s.ipf.Load())
		if ipf > 0 {
			s.cpuMu.Lock()
			s.displayMu.Lock()
			s.keypadMu.Lock()
			for i := 0; i < ipf && s.running.Load(); i++ {
				in := s.cpu.fetchDecode()
				execute(in, s.cpu, s.display, s.keypad, s.rnd, &s.running, s.logger)
			}
			s.keypadMu.Unlock()
			s.displayMu.Unlock()
			s.cpuMu.Unlock()
		}

		sleepRemainder(start, period)
	}
}

func (s *scheduler) frameLoop() {
	defer s.wg.Done()
	for s.running.Load() {
		start := time.Now()
		period := s.period()

		s.displayMu.Lock()
		frame := s.display.snapshot()
		s.displayMu.Unlock()

		for { // discard frames the renderer hasn't taken, keeping only the newest
			select {
			case <-s.frames:
				continue
			default:
			}
			break
		}
		select {
		case s.frames <- frame:
		default:
		}

		sleepRemainder(start, period)
	}
}

func sleepRemainder(start time.Time, period time.Duration) {
	elapsed := time.Since(start)
	if remaining := period - elapsed; remaining > 0 {
		time.Sleep(remaining)
	}
}
