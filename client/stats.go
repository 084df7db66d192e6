package client

import "math/bits"

const (
	// runtimeOffset keeps the runtime ratio defined when the reference
	// solution reports 0 ms.
	runtimeOffset = 100
	// tleTolerance absorbs the judge's timing noise.
	tleTolerance = 200
)

// RuntimePercentile estimates how much faster than the reference solution
// the run was, in [0, 100].
func (s *Success) RuntimePercentile() int {
	return 100 - clampedRatio(s.ElapsedTime, s.ExpectedElapsedTime+runtimeOffset)
}

// MemoryPercentile estimates the memory saved relative to the reference
// solution, in [0, 100]. It is 100 when the judge reports no reference.
func (s *Success) MemoryPercentile() int {
	if s.ExpectedMemory <= 0 {
		return 100
	}
	return 100 - clampedRatio(s.Memory, s.ExpectedMemory)
}

// MayExceedTimeLimit flags runs noticeably slower than the reference.
func (s *Success) MayExceedTimeLimit() bool {
	return s.ExpectedElapsedTime+tleTolerance < s.ElapsedTime
}

// clampedRatio is min(100, floor(num*100/den)) for non-negative inputs.
func clampedRatio(num, den int64) int {
	if num <= 0 {
		return 0
	}
	if den <= 0 {
		return 100
	}
	hi, lo := bits.Mul64(uint64(num), 100)
	if hi >= uint64(den) {
		return 100
	}
	r, _ := bits.Div64(hi, lo, uint64(den))
	if r > 100 {
		return 100
	}
	return int(r)
}
