// Package tui hosts the game in a terminal through Bubble Tea. The
// simulation runs on the loop goroutine and draws into a Canvas; the Bubble
// Tea program only repaints the latest frame and forwards input.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a repaint of the latest canvas frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 30
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
