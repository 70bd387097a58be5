package pixel

import (
	"math"

	"github.com/chippy-vm/chippy/internal/chip8"
	"github.com/faiface/beep"
)

const (
	squareToneHz = 440.0
	amplitude    = 0.25
	patternBits  = 128 // 16-byte pattern buffer, 8 bits each
)

// machineStreamer is a beep.Streamer that reads a Machine's audio
// snapshot on every buffer and synthesizes either a plain square wave
// (CHIP-8/SuperChip/Experimental) or the XO-Chip pattern wave, instead
// of replaying a fixed sample file. Silent whenever SoundTimer is 0.
type machineStreamer struct {
	machine *chip8.Machine
	sr      beep.SampleRate
	phase   float64
}

// NewMachineStreamer adapts m into a beep.Streamer at the given sample
// rate, ready for speaker.Play.
func NewMachineStreamer(m *chip8.Machine, sr beep.SampleRate) beep.Streamer {
	return &machineStreamer{machine: m, sr: sr}
}

func (s *machineStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	view := s.machine.SnapshotAudio()
	if view.SoundTimer == 0 {
		for i := range samples {
			samples[i] = [2]float64{0, 0}
		}
		return len(samples), true
	}

	phaseInc := s.phaseIncrement(view)
	for i := range samples {
		v := s.sampleAt(view, phaseInc)
		samples[i] = [2]float64{v, v}
		s.phase = math.Mod(s.phase+phaseInc, 1)
	}
	return len(samples), true
}

func (s *machineStreamer) phaseIncrement(view chip8.AudioView) float64 {
	if view.Mode != chip8.ModeXOChip {
		return squareToneHz / float64(s.sr)
	}
	pitch := float64(view.PitchRegister)
	playbackRateHz := 4000.0 * math.Pow(2, (pitch-64)/48)
	patternFrequency := playbackRateHz / patternBits
	return patternFrequency / float64(s.sr)
}

func (s *machineStreamer) sampleAt(view chip8.AudioView, phaseInc float64) float64 {
	if view.Mode != chip8.ModeXOChip {
		if s.phase < 0.5 {
			return amplitude
		}
		return -amplitude
	}

	index := int(s.phase*patternBits) % patternBits
	b := view.SoundPatternBuffer[index/8]
	bit := (b >> (7 - uint(index%8))) & 1
	if bit == 1 {
		return amplitude
	}
	return -amplitude
}

func (s *machineStreamer) Err() error { return nil }
