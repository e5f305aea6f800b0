package main

import (
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

// sessionTracker turns the per-tick game state into finished game results.
// Observe runs on the loop goroutine; Finish is called after the loop stops.
type sessionTracker struct {
	sessionID string
	ended     bool
	results   []storage.GameResult
}

func newSessionTracker(sessionID string) *sessionTracker {
	return &sessionTracker{sessionID: sessionID}
}

// Observe records a result when a game ends and rearms on restart.
func (t *sessionTracker) Observe(res core.StepResult) {
	s := res.State
	switch {
	case s.GameOver && !t.ended:
		t.ended = true
		t.results = append(t.results, t.result(s))
	case !s.GameOver && t.ended:
		t.ended = false
	}
}

// Finish returns every result, adding the game in progress as a quit when
// it scored anything.
func (t *sessionTracker) Finish(final core.GameState) []storage.GameResult {
	if !final.GameOver && !t.ended && final.Score > 0 {
		r := t.result(final)
		r.Outcome = storage.OutcomeQuit
		t.results = append(t.results, r)
	}
	return t.results
}

func (t *sessionTracker) result(s core.GameState) storage.GameResult {
	outcome := storage.OutcomeGameOver
	if s.Won {
		outcome = storage.OutcomeWin
	}
	return storage.GameResult{
		SessionID: t.sessionID,
		Score:     s.Score,
		Level:     s.Level,
		Outcome:   outcome,
	}
}
