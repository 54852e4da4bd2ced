// Package shell runs external commands synchronously and reports normalized exit codes.
package shell

import (
	"strings"

	"al.essio.dev/pkg/shellescape"
	"mvdan.cc/sh/v3/syntax"

	"github.com/pkgci/pkgci/pkg/ci"
)

// Command is a command line as a sequence of tokens. Tokens are shell source:
// they are joined with single spaces and handed to the platform shell.
type Command struct {
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// NewCommand builds a command from tokens.
func NewCommand(args ...string) Command {
	return Command{Args: args}
}

// ParseCommand splits a POSIX command line into tokens. Each token keeps its
// original quoting and variable references. Lines that are more than one
// simple command (pipes, lists, redirects), and lines the POSIX grammar
// cannot parse, stay a single token for the shell to interpret.
func ParseCommand(line string) Command {
	whole := Command{Args: []string{strings.TrimSpace(line)}}

	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil || len(file.Stmts) != 1 {
		return whole
	}
	stmt := file.Stmts[0]
	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(stmt.Redirs) > 0 || stmt.Negated || stmt.Background || len(call.Assigns) > 0 {
		return whole
	}

	printer := syntax.NewPrinter()
	args := make([]string, 0, len(call.Args))
	for _, word := range call.Args {
		var b strings.Builder
		if err := printer.Print(&b, word); err != nil {
			return whole
		}
		args = append(args, b.String())
	}
	return Command{Args: args}
}

// InDir returns a copy of the command that runs in dir.
func (c Command) InDir(dir string) Command {
	c.Dir = dir
	return c
}

// With returns a copy of the command with extra tokens appended.
func (c Command) With(args ...string) Command {
	out := make([]string, 0, len(c.Args)+len(args))
	out = append(out, c.Args...)
	c.Args = append(out, args...)
	return c
}

// Line joins the tokens with single spaces.
func (c Command) Line() string {
	return strings.Join(c.Args, " ")
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return c.Line()
}

// Quote turns a literal value, such as a file path, into a single token for family.
func Quote(family ci.OS, value string) string {
	if family == ci.Windows {
		if value == "" || strings.ContainsAny(value, " \t&()^|<>") {
			return `"` + value + `"`
		}
		return value
	}
	return shellescape.Quote(value)
}
