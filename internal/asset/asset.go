// Package asset models the things a set publishes: achievements,
// leaderboards, the set itself, and its rich presence script.
package asset

import (
	"strings"

	"github.com/roach88/ralint/internal/ir"
)

// State is where an asset currently lives.
type State string

const (
	StateCore       State = "core"
	StateUnofficial State = "unofficial"
	StateLocal      State = "local"
)

// States lists every state in rank order.
var States = []State{StateCore, StateUnofficial, StateLocal}

// Meta holds the fields shared by achievements and leaderboards.
type Meta struct {
	ID          int    `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Author      string `json:"author,omitempty"`
	State       State  `json:"state"`
}

// Asset is anything with a title and description shown to players.
type Asset interface {
	Metadata() Meta
}

// Metadata implements Asset.
func (m Meta) Metadata() Meta { return m }

// IsVoid reports whether the title marks the asset as retired.
func (m Meta) IsVoid() bool {
	return strings.Contains(strings.ToUpper(m.Title), "[VOID]")
}

// Achievement types.
const (
	TypeNone         = ""
	TypeProgression  = "progression"
	TypeWinCondition = "win_condition"
	TypeMissable     = "missable"
)

// AchievementTypes lists the known types, untyped first.
var AchievementTypes = []string{TypeNone, TypeProgression, TypeWinCondition, TypeMissable}

// Achievement is a single achievement and its trigger logic.
type Achievement struct {
	Meta
	Points int       `json:"points" validate:"gte=0"`
	Type   string    `json:"type,omitempty" validate:"omitempty,oneof=progression win_condition missable"`
	Badge  string    `json:"badge,omitempty"`
	Logic  *ir.Logic `json:"-"`
}

// Component identifies one of the four logic blocks of a leaderboard.
type Component string

const (
	ComponentStart  Component = "STA"
	ComponentCancel Component = "CAN"
	ComponentSubmit Component = "SUB"
	ComponentValue  Component = "VAL"
)

// Components lists the leaderboard components in evaluation order.
var Components = []Component{ComponentStart, ComponentCancel, ComponentSubmit, ComponentValue}

// Leaderboard is a leaderboard with its four logic components.
type Leaderboard struct {
	Meta
	Format        ir.Format `json:"format"`
	LowerIsBetter bool      `json:"lower_is_better"`
	Start         *ir.Logic `json:"-"`
	Cancel        *ir.Logic `json:"-"`
	Submit        *ir.Logic `json:"-"`
	Value         *ir.Logic `json:"-"`
}

// Component returns the logic of one component.
func (lb *Leaderboard) Component(c Component) *ir.Logic {
	switch c {
	case ComponentStart:
		return lb.Start
	case ComponentCancel:
		return lb.Cancel
	case ComponentSubmit:
		return lb.Submit
	case ComponentValue:
		return lb.Value
	}
	return nil
}

// SetComponent assigns the logic of one component.
func (lb *Leaderboard) SetComponent(c Component, l *ir.Logic) {
	switch c {
	case ComponentStart:
		lb.Start = l
	case ComponentCancel:
		lb.Cancel = l
	case ComponentSubmit:
		lb.Submit = l
	case ComponentValue:
		lb.Value = l
	}
}

var fastWords = []string{"fast", "quick", "speed", "rush", "hurry", "rapid"}

func (lb *Leaderboard) usesFastWords() bool {
	title := strings.ToLower(lb.Title)
	desc := strings.ToLower(lb.Description)
	for _, w := range fastWords {
		if strings.Contains(title, w) || strings.Contains(desc, w) {
			return true
		}
	}
	return false
}

// IsTime reports whether the leaderboard ranks durations.
func (lb *Leaderboard) IsTime() bool {
	return lb.Format.IsTime() || lb.usesFastWords()
}

// Kind classifies the leaderboard as "speedrun", "survival", "min score" or
// "high score".
func (lb *Leaderboard) Kind() string {
	switch {
	case lb.usesFastWords():
		return "speedrun"
	case lb.IsTime() && lb.LowerIsBetter:
		return "speedrun"
	case lb.IsTime():
		return "survival"
	case lb.LowerIsBetter:
		return "min score"
	default:
		return "high score"
	}
}

// Set is an achievement set. Achievements and leaderboards keep their
// source order; adding an asset with an existing ID replaces it in place.
type Set struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	ConsoleID    int            `json:"console_id,omitempty"`
	Achievements []*Achievement `json:"-"`
	Leaderboards []*Leaderboard `json:"-"`
}

// AddAchievement appends or replaces an achievement by ID.
func (s *Set) AddAchievement(a *Achievement) {
	for i, existing := range s.Achievements {
		if existing.ID == a.ID {
			s.Achievements[i] = a
			return
		}
	}
	s.Achievements = append(s.Achievements, a)
}

// AddLeaderboard appends or replaces a leaderboard by ID.
func (s *Set) AddLeaderboard(lb *Leaderboard) {
	for i, existing := range s.Leaderboards {
		if existing.ID == lb.ID {
			s.Leaderboards[i] = lb
			return
		}
	}
	s.Leaderboards = append(s.Leaderboards, lb)
}
