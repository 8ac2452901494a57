package service

import (
	"math/rand/v2"
	"time"
)

// RandomIndex draws uniformly from math/rand/v2's global source, which is
// safe for concurrent use.
type RandomIndex struct{}

func (RandomIndex) NextIndex(bound int) int {
	if bound <= 0 {
		return 0
	}
	return rand.IntN(bound)
}

// FixedIndex always returns the same position.
type FixedIndex int

func (f FixedIndex) NextIndex(int) int { return int(f) }

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
