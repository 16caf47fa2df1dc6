// Package prompt asks the user to confirm overwriting an existing manifest.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/terminal"
)

var (
	// ErrNotInteractive is returned when a prompt is needed but no terminal is attached.
	ErrNotInteractive = errors.New(messages.PromptRequiresTerminal)
	// ErrCancelled is returned when the user aborts the prompt.
	ErrCancelled = errors.New(messages.PromptCancelled)
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(title string, description string) (bool, error)
}

// HuhConfirmer implements Confirmer with a huh form drawn on stderr.
type HuhConfirmer struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhConfirmer returns a HuhConfirmer gated by terminal.IsInteractive.
func NewHuhConfirmer() *HuhConfirmer {
	return &HuhConfirmer{isTerminal: terminal.IsInteractive}
}

// Confirm shows title and description and returns the answer.
func (c *HuhConfirmer) Confirm(title string, description string) (bool, error) {
	checker := c.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return false, fmt.Errorf("%w: %s", ErrNotInteractive, title)
	}

	answer := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative(messages.PromptOverwriteAffirmative).
				Negative(messages.PromptOverwriteNegative).
				Value(&answer),
		),
	).
		WithKeyMap(keyMap()).
		WithProgramOptions(tea.WithOutput(os.Stderr))

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, ErrCancelled
	}
	if err != nil {
		return false, err
	}
	return answer, nil
}

// keyMap lets both esc and ctrl+c abort the form.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

// Static answers every prompt with the same value. It backs --yes.
type Static bool

// Confirm returns the static answer.
func (s Static) Confirm(string, string) (bool, error) {
	return bool(s), nil
}
