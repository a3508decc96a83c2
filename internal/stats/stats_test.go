package stats

import (
	"math"
	"testing"
)

func TestPace(t *testing.T) {
	cases := []struct {
		wordsRead  int
		durationMs int64
		want       float64
	}{
		{300, 60000, 300},
		{150, 30000, 300},
		{0, 60000, 0},
		{100, 0, 0},
		{100, -5, 0},
	}
	for _, tc := range cases {
		if got := Pace(tc.wordsRead, tc.durationMs); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Pace(%d, %d) = %v, want %v", tc.wordsRead, tc.durationMs, got, tc.want)
		}
	}
}

func TestCompletion(t *testing.T) {
	if got := Completion(50, 200); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("Completion(50, 200) = %v, want 0.25", got)
	}
	if got := Completion(10, 0); got != 0 {
		t.Fatalf("Completion with zero total = %v, want 0", got)
	}
	if got := Completion(300, 200); got != 1 {
		t.Fatalf("Completion past end = %v, want 1", got)
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	got := MovingAverage(values, 2)
	want := []float64{1, 1.5, 2.5, 3.5, 4.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("MovingAverage[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	same := MovingAverage(values, 1)
	for i := range values {
		if same[i] != values[i] {
			t.Fatalf("window 1 must copy input, got %v", same)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("empty input produced %q", got)
	}
	flat := Sparkline([]float64{5, 5, 5})
	if len(flat) != 3 {
		t.Fatalf("expected 3 chars for flat series, got %q", flat)
	}
	line := Sparkline([]float64{0, 50, 100})
	if len(line) != 3 {
		t.Fatalf("expected 3 chars, got %q", line)
	}
	if line[0] != ' ' || line[2] != '@' {
		t.Fatalf("expected min/max glyphs at ends, got %q", line)
	}
}
