package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/i18n-agent/i18n-agent-mcp/internal/ui"
)

// Run asks each question in turn and returns the answers.
// Each question runs as its own huh.Form so that later questions can be
// skipped based on earlier answers.
func Run(questions []Question) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &Result{}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		field, value := buildField(q)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		saveAnswer(q.ID, *value, result)
	}

	return result, nil
}

// buildField creates the huh field for q and the variable it writes to.
func buildField(q *Question) (huh.Field, *string) {
	value := q.Default
	switch q.Type {
	case QuestionTypeInput:
		return buildInputField(q, &value), &value
	default:
		return buildSelectField(q, &value), &value
	}
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(value)
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, value *string) *huh.Input {
	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(value)

	if q.Secret {
		inp = inp.EchoMode(huh.EchoModePassword)
	}

	validate := q.Validate
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			return errors.New("a value is required")
		}
		if validate != nil {
			return validate(v)
		}
		return nil
	})

	return inp
}

// newWizardTheme creates a huh.Theme in the installer's brand colors.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: ui.ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ui.ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ui.ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ui.ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ui.ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ui.ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
