// Package player implements the word-pacing playback state machine.
package player

import "time"

// WPM bounds for the pacing rate. Adjustments snap to Step.
const (
	MinWPM  = 100
	MaxWPM  = 1000
	StepWPM = 50
)

// State describes the playback engine's current mode.
type State int

const (
	// Idle means no words are loaded.
	Idle State = iota
	// Paused means words are loaded but playback is stopped.
	Paused
	// Playing means the engine advances on each tick.
	Playing
)

// Player paces through a word sequence at a words-per-minute rate. It is a
// plain state machine: the caller owns the timer and feeds Tick while
// playing. All methods are safe on an empty sequence.
type Player struct {
	words   []string
	index   int
	playing bool
	wpm     int
}

// New returns a stopped player with no words loaded and the rate clamped
// into range.
func New(wpm int) *Player {
	return &Player{wpm: ClampWPM(wpm)}
}

// ClampWPM bounds v to [MinWPM, MaxWPM] and snaps it to the nearest step.
func ClampWPM(v int) int {
	if v < MinWPM {
		return MinWPM
	}
	if v > MaxWPM {
		return MaxWPM
	}
	return ((v + StepWPM/2) / StepWPM) * StepWPM
}

// Load replaces the word sequence, rewinds to the first word, and stops
// playback. Loading an empty sequence leaves the player Idle.
func (p *Player) Load(words []string) {
	p.words = words
	p.index = 0
	p.playing = false
}

// TogglePlay flips between Playing and Paused. It is a no-op with no words
// loaded. Toggling at the final word rewinds first so playback restarts
// from the beginning.
func (p *Player) TogglePlay() {
	if len(p.words) == 0 {
		return
	}
	if p.index == len(p.words)-1 {
		p.index = 0
	}
	p.playing = !p.playing
}

// Tick advances by one word. At the final word it stops playback without
// advancing. The return value reports whether playback continues, so the
// caller knows to schedule the next tick.
func (p *Player) Tick() bool {
	if !p.playing {
		return false
	}
	if p.index >= len(p.words)-1 {
		p.playing = false
		return false
	}
	p.index++
	return true
}

// Reset rewinds to the first word and stops playback.
func (p *Player) Reset() {
	p.index = 0
	p.playing = false
}

// Step moves the position by delta words while clamping to the sequence
// bounds. Playback state is untouched; stepping is meant for paused review
// but is harmless while playing.
func (p *Player) Step(delta int) {
	if len(p.words) == 0 {
		return
	}
	p.index += delta
	if p.index < 0 {
		p.index = 0
	}
	if p.index > len(p.words)-1 {
		p.index = len(p.words) - 1
	}
}

// Seek jumps to the given zero-based word position, clamped to bounds.
func (p *Player) Seek(index int) {
	if len(p.words) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(p.words)-1 {
		index = len(p.words) - 1
	}
	p.index = index
}

// SetWPM changes the pacing rate, clamped and snapped to the step. The
// position is untouched; while playing, only the tick period changes.
func (p *Player) SetWPM(v int) {
	p.wpm = ClampWPM(v)
}

// AdjustWPM nudges the rate by delta steps.
func (p *Player) AdjustWPM(steps int) {
	p.SetWPM(p.wpm + steps*StepWPM)
}

// Interval returns the tick period for the current rate: one word every
// 60000/wpm milliseconds.
func (p *Player) Interval() time.Duration {
	return time.Duration(60000/p.wpm) * time.Millisecond
}

// State reports Idle, Paused, or Playing.
func (p *Player) State() State {
	switch {
	case len(p.words) == 0:
		return Idle
	case p.playing:
		return Playing
	default:
		return Paused
	}
}

// Word returns the current word, or "" when no words are loaded.
func (p *Player) Word() string {
	if len(p.words) == 0 {
		return ""
	}
	return p.words[p.index]
}

// Index returns the zero-based position of the current word.
func (p *Player) Index() int { return p.index }

// Len returns the number of loaded words.
func (p *Player) Len() int { return len(p.words) }

// WPM returns the current pacing rate.
func (p *Player) WPM() int { return p.wpm }

// Playing reports whether the engine is advancing on ticks.
func (p *Player) Playing() bool { return p.playing }
