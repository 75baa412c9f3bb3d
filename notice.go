package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

type noticeKind string

const (
	noticeInfo    noticeKind = "info"
	noticeSuccess noticeKind = "success"
	noticeWarn    noticeKind = "warn"
	noticeError   noticeKind = "error"
)

func (k noticeKind) icon() string {
	switch k {
	case noticeInfo:
		return "ℹ"
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	default:
		return ""
	}
}

func noticeText(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	if icon := kind.icon(); icon != "" {
		return icon + " " + msg
	}
	return msg
}

// startNotice shows msg in the footer until d elapses or a newer notice
// replaces it.
func (m *model) startNotice(msg string, kind noticeKind, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeType = kind

	// bump sequence to invalidate older timers
	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
