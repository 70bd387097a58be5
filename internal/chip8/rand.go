package chip8

import "math/rand"

// ByteSource produces the uniform random bytes CXNN samples. Tests
// inject a deterministic source; the default Machine uses
// mathRandSource.
type ByteSource interface {
	Byte() byte
}

type mathRandSource struct {
	r *rand.Rand
}

func newMathRandSource() *mathRandSource {
	return &mathRandSource{r: rand.New(rand.NewSource(rand.Int63()))}
}

func (s *mathRandSource) Byte() byte {
	return byte(s.r.Intn(256))
}
