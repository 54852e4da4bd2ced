package generate

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/pkgci/pkgci/errors"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// DefaultMaxAttempts bounds how often a LinePrompter asks again after an invalid answer.
const DefaultMaxAttempts = 5

// Prompter asks the questions of the generator.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(title string, def bool) (bool, error)
	// Input asks for free text. validate may be nil.
	Input(title string, validate func(string) error) (string, error)
	// List asks for comma separated values.
	List(title string, validate func([]string) error) ([]string, error)
	// Select asks for one of options.
	Select(title string, options []string, def string) (string, error)
}

// LinePrompter asks questions on a line oriented stream. Invalid answers are
// asked again at most MaxAttempts times in total.
type LinePrompter struct {
	in          *bufio.Reader
	out         io.Writer
	MaxAttempts int
}

// NewLinePrompter creates a LinePrompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:          bufio.NewReader(in),
		out:         out,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// ask prints the prompt and hands each answer to accept until it returns nil.
func (p *LinePrompter) ask(prompt string, accept func(answer string) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	var last error
	for i := 0; i < attempts; i++ {
		fmt.Fprint(p.out, prompt)
		line, err := p.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			if errors.Is(err, io.EOF) {
				return errUtils.ErrUserAborted
			}
			return err
		}

		if last = accept(strings.TrimSpace(line)); last == nil {
			return nil
		}
		fmt.Fprintf(p.out, "Invalid answer: %v\n", last)
	}

	return errUtils.Build(errUtils.ErrTooManyAttempts).
		WithCause(last).
		WithContext("prompt", strings.TrimSpace(prompt)).
		WithContext("attempts", fmt.Sprint(attempts)).
		Err()
}

// Confirm implements Prompter. An empty answer selects def.
func (p *LinePrompter) Confirm(title string, def bool) (bool, error) {
	hint := "n"
	if def {
		hint = "y"
	}

	var result bool
	err := p.ask(fmt.Sprintf("%s (y/n) [%s]: ", title, hint), func(answer string) error {
		switch strings.ToLower(answer) {
		case "":
			result = def
		case "y", "yes":
			result = true
		case "n", "no":
			result = false
		default:
			return errors.Newf("expected y or n, got %q", answer)
		}
		return nil
	})
	return result, err
}

// Input implements Prompter.
func (p *LinePrompter) Input(title string, validate func(string) error) (string, error) {
	var result string
	err := p.ask(title+": ", func(answer string) error {
		if validate != nil {
			if err := validate(answer); err != nil {
				return err
			}
		}
		result = answer
		return nil
	})
	return result, err
}

// List implements Prompter. An answer without any value is asked again.
func (p *LinePrompter) List(title string, validate func([]string) error) ([]string, error) {
	var result []string
	err := p.ask(title+": ", func(answer string) error {
		items := ParseVersions(answer)
		if len(items) == 0 {
			return errors.New("enter at least one value")
		}
		if validate != nil {
			if err := validate(items); err != nil {
				return err
			}
		}
		result = items
		return nil
	})
	return result, err
}

// Select implements Prompter. An empty answer selects def.
func (p *LinePrompter) Select(title string, options []string, def string) (string, error) {
	var result string
	err := p.ask(fmt.Sprintf("%s (%s) [%s]: ", title, strings.Join(options, ","), def), func(answer string) error {
		if answer == "" {
			answer = def
		}
		for _, option := range options {
			if answer == option {
				result = answer
				return nil
			}
		}
		return errors.Newf("expected one of %s", strings.Join(options, ", "))
	})
	return result, err
}
