package router

import "github.com/abhisek/infoquiz/internal/quiz"

// State is the active screen. The concrete types are Home, Quiz and Result.
type State interface {
	isState()
}

// Home is the category picker.
type Home struct{}

// Quiz is an active round in one category.
type Quiz struct {
	CategoryID string
	Round      *quiz.Round
}

// Result summarizes a finished round.
type Result struct {
	CategoryID string
	Score      int
	Total      int
	Correct    int
}

func (Home) isState()   {}
func (Quiz) isState()   {}
func (Result) isState() {}
