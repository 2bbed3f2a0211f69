// Package ui renders the interactive review session.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/walterairs/just-remember/internal/answers"
	"github.com/walterairs/just-remember/internal/grammar"
	"github.com/walterairs/just-remember/internal/session"
	"github.com/walterairs/just-remember/internal/ui/theme"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseDone
)

// ReviewModel is the Bubble Tea model for one review session.
type ReviewModel struct {
	session  *session.Session
	recorder *session.Recorder
	now      func() time.Time

	input  textinput.Model
	phase  phase
	result answers.Result
	last   grammar.Item
	errMsg string
	width  int
	height int
}

// NewReviewModel creates the model for a non-empty session.
func NewReviewModel(s *session.Session, recorder *session.Recorder, now func() time.Time) ReviewModel {
	ti := textinput.New()
	ti.Placeholder = "Type the meaning..."
	ti.Focus()

	return ReviewModel{
		session:  s,
		recorder: recorder,
		now:      now,
		input:    ti,
	}
}

func (m ReviewModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

		switch m.phase {
		case phaseQuestion:
			if msg.String() == "enter" {
				return m.grade()
			}
		case phaseFeedback:
			if m.session.Done() {
				m.phase = phaseDone
				return m, nil
			}
			m.phase = phaseQuestion
			m.input.Reset()
			return m, m.input.Focus()
		case phaseDone:
			return m, tea.Quit
		}
	}

	if m.phase == phaseQuestion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// grade checks the typed answer and records the outcome.
func (m ReviewModel) grade() (tea.Model, tea.Cmd) {
	answer := strings.TrimSpace(m.input.Value())
	if answer == "" {
		return m, nil
	}

	current := m.session.Current()
	m.result = answers.Check(answer, current.Meaning)

	updated, err := m.recorder.Record(
		context.Background(), m.session, m.result.Correct, m.result.Score, m.now(),
	)
	if err != nil {
		m.errMsg = err.Error()
		m.phase = phaseDone
		return m, nil
	}

	m.last = updated
	m.phase = phaseFeedback
	return m, nil
}

func (m ReviewModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.phase {
	case phaseQuestion:
		content = m.questionView()
	case phaseFeedback:
		content = m.feedbackView()
	case phaseDone:
		content = m.doneView()
	}

	v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content))
	return v
}

func (m ReviewModel) questionView() string {
	item := m.session.Current()

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Review %d of %d",
		m.session.Position()+1, len(m.session.Items))))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render(item.Term))
	if item.Usage != "" {
		b.WriteString("\n" + theme.Body.Render(item.Usage))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Enter to submit · Esc to quit"))

	return theme.Card.Render(b.String())
}

func (m ReviewModel) feedbackView() string {
	var b strings.Builder

	if m.result.Correct {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("✓ Correct (match %d%%)", m.result.Score)))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("✗ Not quite (match %d%%)", m.result.Score)))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render(m.last.Term))
	b.WriteString("\n" + theme.Body.Render(m.last.Meaning))

	if m.last.Example1JA != "" {
		b.WriteString("\n\n" + theme.Body.Render(m.last.Example1JA))
		if m.last.Example1EN != "" {
			b.WriteString("\n" + theme.Hint.Render(m.last.Example1EN))
		}
	}
	if m.last.Example2JA != "" {
		b.WriteString("\n" + theme.Body.Render(m.last.Example2JA))
		if m.last.Example2EN != "" {
			b.WriteString("\n" + theme.Hint.Render(m.last.Example2EN))
		}
	}
	if m.last.Note != "" {
		b.WriteString("\n\n" + theme.Hint.Render("Note: "+m.last.Note))
	}

	b.WriteString("\n\n" + theme.Body.Render("Now at "+m.last.Stage.String()))
	b.WriteString("\n" + theme.Hint.Render("Any key to continue"))

	return theme.Card.Render(b.String())
}

func (m ReviewModel) doneView() string {
	if m.errMsg != "" {
		return theme.Card.Render(theme.Incorrect.Render("Error: " + m.errMsg))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("You reviewed %d items.", len(m.session.Items))))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Any key to exit"))
	return theme.Card.Render(b.String())
}

// RunReview starts the Bubble Tea program for a session.
func RunReview(s *session.Session, recorder *session.Recorder, now func() time.Time) error {
	p := tea.NewProgram(NewReviewModel(s, recorder, now))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running review:", err)
		return err
	}
	return nil
}
