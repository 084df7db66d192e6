package client

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuntimePercentile(t *testing.T) {
	cases := []struct {
		elapsed, expected int64
		want              int
	}{
		{0, 0, 100},
		{50, 0, 50},
		{100, 0, 0},
		{1000, 0, 0},
		{40, 20, 67}, // floor(4000/120) = 33
		{120, 20, 0},
		{math.MaxInt64, 0, 0},
	}
	for _, tc := range cases {
		s := &Success{ElapsedTime: tc.elapsed, ExpectedElapsedTime: tc.expected}
		require.Equal(t, tc.want, s.RuntimePercentile(), "elapsed=%d expected=%d", tc.elapsed, tc.expected)
	}
}

func TestRuntimePercentileStaysInRange(t *testing.T) {
	values := []int64{0, 1, 7, 99, 100, 101, 250, 10_000, 1 << 40, math.MaxInt64 / 2}
	for _, e := range values {
		for _, x := range values {
			s := &Success{ElapsedTime: e, ExpectedElapsedTime: x}
			p := s.RuntimePercentile()
			require.GreaterOrEqual(t, p, 0)
			require.LessOrEqual(t, p, 100)
			require.Equal(t, p, s.RuntimePercentile())
		}
	}
}

func TestMemoryPercentile(t *testing.T) {
	require.Equal(t, 100, (&Success{Memory: 5000, ExpectedMemory: 0}).MemoryPercentile())
	require.Equal(t, 50, (&Success{Memory: 50, ExpectedMemory: 100}).MemoryPercentile())
	require.Equal(t, 0, (&Success{Memory: 300, ExpectedMemory: 100}).MemoryPercentile())
	// floor(6200000*100/6000000) = 103, clamped
	require.Equal(t, 0, (&Success{Memory: 6_200_000, ExpectedMemory: 6_000_000}).MemoryPercentile())
	require.Equal(t, 5, (&Success{Memory: 5_700_000, ExpectedMemory: 6_000_000}).MemoryPercentile())
}

func TestMayExceedTimeLimit(t *testing.T) {
	require.False(t, (&Success{ElapsedTime: 220, ExpectedElapsedTime: 20}).MayExceedTimeLimit())
	require.True(t, (&Success{ElapsedTime: 221, ExpectedElapsedTime: 20}).MayExceedTimeLimit())
	require.False(t, (&Success{ElapsedTime: 0, ExpectedElapsedTime: 0}).MayExceedTimeLimit())
}

func TestCorrectAnswer(t *testing.T) {
	require.True(t, (&Success{CompareResult: "111"}).CorrectAnswer())
	require.False(t, (&Success{CompareResult: "101"}).CorrectAnswer())
	require.False(t, (&Success{CompareResult: "000"}).CorrectAnswer())
	require.False(t, (&Success{}).CorrectAnswer())
}
