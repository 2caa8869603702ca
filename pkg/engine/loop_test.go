// pkg/engine/loop_test.go
package engine

import (
	"testing"
)

func TestClock_Steps(t *testing.T) {
	dt := 1.0 / 60.0

	tests := []struct {
		name     string
		elapsed  []float64
		expected []int
	}{
		{
			name:     "exact_frames",
			elapsed:  []float64{dt, dt, dt},
			expected: []int{1, 1, 1},
		},
		{
			name:     "short_frames_accumulate",
			elapsed:  []float64{dt / 2, dt / 2, dt / 2, dt / 2},
			expected: []int{0, 1, 0, 1},
		},
		{
			name:     "long_frame_yields_multiple_steps",
			elapsed:  []float64{0.05},
			expected: []int{3},
		},
		{
			name:     "negative_elapsed_ignored",
			elapsed:  []float64{-1, dt},
			expected: []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewClock(dt)
			for i, elapsed := range tt.elapsed {
				if got := clock.Steps(elapsed); got != tt.expected[i] {
					t.Errorf("Steps(%v) call %d = %d, expected %d",
						elapsed, i, got, tt.expected[i])
				}
			}
		})
	}
}

func TestClock_CapsLongFrames(t *testing.T) {
	dt := 1.0 / 60.0
	clock := NewClock(dt)

	// A multi-second stall must not trigger a catch-up spiral: the frame
	// is clamped to maxFrameTime worth of steps.
	if got, want := clock.Steps(10.0), 15; got != want {
		t.Errorf("Steps(10.0) = %d, expected %d (maxFrameTime cap)", got, want)
	}
}

func TestClock_Alpha(t *testing.T) {
	dt := 1.0 / 60.0
	clock := NewClock(dt)

	clock.Steps(dt * 1.5)
	alpha := clock.Alpha()
	if alpha < 0.49 || alpha > 0.51 {
		t.Errorf("Alpha() = %v, expected ~0.5", alpha)
	}

	clock.Steps(dt / 2)
	if a := clock.Alpha(); a < 0 || a >= 1 {
		t.Errorf("Alpha() = %v, expected within [0, 1)", a)
	}
}
