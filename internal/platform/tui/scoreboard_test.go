package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/storage"
)

type fakeScores struct {
	top, recent []storage.ScoreEntry
	stats       *storage.GameStats
	err         error
	topCalls    int
	recentCalls int
}

func (f *fakeScores) TopScores(int) ([]storage.ScoreEntry, error) {
	f.topCalls++
	return f.top, f.err
}

func (f *fakeScores) RecentScores(int) ([]storage.ScoreEntry, error) {
	f.recentCalls++
	return f.recent, f.err
}

func (f *fakeScores) Stats() (*storage.GameStats, error) {
	if f.stats == nil {
		return nil, errors.New("no stats")
	}
	return f.stats, nil
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{}, 80, 24)
	v := stripANSI(m.View())
	if !strings.Contains(v, "No scores recorded yet.") {
		t.Errorf("View() should show the empty message, got:\n%s", v)
	}
	if !strings.Contains(v, "No games played") {
		t.Error("View() should show the empty stats line")
	}
}

func TestScoreboardNilSource(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(stripANSI(m.View()), "No scores recorded yet.") {
		t.Error("nil source should render as empty")
	}
}

func TestScoreboardShowsScoresAndStats(t *testing.T) {
	when := time.Date(2026, 3, 4, 15, 4, 0, 0, time.UTC)
	src := &fakeScores{
		top: []storage.ScoreEntry{
			{Score: 4200, Level: 3, Outcome: storage.OutcomeGameOver, CreatedAt: when},
			{Score: 900, Level: 1, Outcome: storage.OutcomeQuit, CreatedAt: when},
		},
		stats: &storage.GameStats{GamesCount: 2, Wins: 0, HighScore: 4200, AvgScore: 2550, BestLevel: 3},
	}
	m := NewScoreboardModel(src, 100, 30)
	v := stripANSI(m.View())

	for _, want := range []string{"TOP SCORES", "4200", "gameover", "Games: 2", "Best: 4200", "Mar 04 15:04"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardToggle(t *testing.T) {
	src := &fakeScores{}
	m := NewScoreboardModel(src, 80, 24)
	if m.CurrentView() != ViewTop || src.topCalls != 1 {
		t.Fatalf("initial view = %v, topCalls = %d", m.CurrentView(), src.topCalls)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.CurrentView() != ViewRecent || src.recentCalls != 1 {
		t.Errorf("after tab view = %v, recentCalls = %d", m.CurrentView(), src.recentCalls)
	}
	if !strings.Contains(stripANSI(m.View()), "RECENT GAMES") {
		t.Error("title should name the recent view")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).CurrentView() != ViewTop {
		t.Error("second tab should return to top scores")
	}
}

func TestScoreboardLoadError(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{err: errors.New("disk gone")}, 80, 24)
	if !strings.Contains(stripANSI(m.View()), "disk gone") {
		t.Error("View() should surface the load error")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{}, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("View() after quit should be empty")
	}
}
