package hash

// Sequence is a deterministic stream of uniform values in [0, 1). Two
// sequences with the same seed yield the same values. It is not safe for
// concurrent use.
type Sequence struct {
	seed uint32
	n    uint32
}

// NewSequence creates a sequence seeded by seed
func NewSequence(seed uint32) *Sequence {
	return &Sequence{seed: seed}
}

// Float64 returns the next value of the sequence.
func (s *Sequence) Float64() float64 {
	s.n++
	return Float(s.n, s.seed)
}

// Reset rewinds the sequence to its first value.
func (s *Sequence) Reset() {
	s.n = 0
}
