// Package stats contains reading statistics calculations and reporting.
package stats

import (
	"math"
	"strings"
)

const sparkChars = " .:-=+*#%@"

// Pace computes the effective reading pace in words per minute. This can be
// lower than the configured rate when the reader paused or stepped back.
func Pace(wordsRead int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0
	}
	return float64(wordsRead) / minutes
}

// Completion returns the fraction of the document covered, in [0,1].
func Completion(wordsRead, wordsTotal int) float64 {
	if wordsTotal <= 0 {
		return 0
	}
	frac := float64(wordsRead) / float64(wordsTotal)
	if frac > 1 {
		return 1
	}
	return frac
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
