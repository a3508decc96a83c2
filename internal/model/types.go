// Package model defines shared data structures.
package model

import "time"

// Config defines reader settings.
type Config struct {
	WPM       int
	Accent    string
	PeekLines int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Source string
	Since  *time.Time
	Last   int
}

// ReadingStats captures a completed reading session.
type ReadingStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Source     string
	WordsTotal int
	WordsRead  int
	WPM        int
	DurationMs int64
	Completed  bool
}

// ReadingAggregate summarizes a stored reading for reporting.
type ReadingAggregate struct {
	ReadingID  int64
	EndedAt    time.Time
	Source     string
	WordsTotal int
	WordsRead  int
	WPM        int
	DurationMs int64
	Completed  bool
}
