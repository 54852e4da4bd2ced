package generate

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"

	errUtils "github.com/pkgci/pkgci/errors"
)

// HuhPrompter asks questions with interactive terminal forms.
type HuhPrompter struct{}

// NewHuhPrompter creates a HuhPrompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) run(field huh.Field) error {
	// ESC quits as well as ctrl+c.
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c/esc", "quit"),
	)

	if err := huh.NewForm(huh.NewGroup(field)).WithKeyMap(keyMap).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errUtils.ErrUserAborted
		}
		return errors.Wrap(err, "prompt failed")
	}
	return nil
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(title string, def bool) (bool, error) {
	confirmed := def
	err := p.run(huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed))
	return confirmed, err
}

// Input implements Prompter.
func (p *HuhPrompter) Input(title string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().Title(title).Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}
	err := p.run(input)
	return value, err
}

// List implements Prompter.
func (p *HuhPrompter) List(title string, validate func([]string) error) ([]string, error) {
	var value string
	err := p.run(huh.NewInput().
		Title(title).
		Description("Separate values with a comma").
		Value(&value).
		Validate(func(s string) error {
			items := ParseVersions(s)
			if len(items) == 0 {
				return errors.New("enter at least one value")
			}
			if validate != nil {
				return validate(items)
			}
			return nil
		}))
	return ParseVersions(value), err
}

// Select implements Prompter.
func (p *HuhPrompter) Select(title string, options []string, def string) (string, error) {
	value := def
	err := p.run(huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&value))
	return value, err
}
