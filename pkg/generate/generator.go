package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/renameio/v2"

	errUtils "github.com/pkgci/pkgci/errors"
	log "github.com/pkgci/pkgci/pkg/logger"
)

// Options configure a Generator.
type Options struct {
	// Dir receives the generated files. Empty means the current directory.
	Dir string
	// DriverURL overrides DefaultDriverURL.
	DriverURL string
	// Out receives progress messages. Nil discards them.
	Out io.Writer
}

// Generator asks for the build matrix and writes the CI files.
type Generator struct {
	prompter Prompter
	opts     Options
}

// NewGenerator creates a Generator that asks its questions through prompter.
func NewGenerator(prompter Prompter, opts Options) *Generator {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Generator{prompter: prompter, opts: opts}
}

// Run asks whether to set up Travis CI, then AppVeyor, and writes the chosen
// files. Declining to overwrite an existing file stops the run with
// ErrOverwriteDeclined.
func (g *Generator) Run(ctx context.Context) error {
	fmt.Fprintln(g.opts.Out, "** CI YAML File Generator **")

	travis, err := g.prompter.Confirm("Set up a Travis CI YAML file?", false)
	if err != nil {
		return err
	}
	if travis {
		if err := g.travis(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	appveyor, err := g.prompter.Confirm("Set up an AppVeyor YAML file?", false)
	if err != nil {
		return err
	}
	if appveyor {
		return g.appveyor(ctx)
	}
	return nil
}

func (g *Generator) travis(ctx context.Context) error {
	opts := TravisOptions{DriverURL: g.opts.DriverURL}

	var err error
	if opts.Sudo, err = g.prompter.Confirm("Do you need package based dependencies?", false); err != nil {
		return err
	}

	pinned, err := g.prompter.Confirm("Do you need a specific Ubuntu version?", false)
	if err != nil {
		return err
	}
	if pinned {
		if opts.UbuntuDist, err = g.prompter.Input("Version", requireValue); err != nil {
			return err
		}
	}

	if opts.Versions, opts.Dist, err = g.matrix(); err != nil {
		return err
	}
	if opts.MacOS, err = g.prompter.Confirm("Do you want wheel building on macOS?", false); err != nil {
		return err
	}

	doc, err := TravisDocument(opts)
	if err != nil {
		return err
	}
	return g.save(ctx, TravisFileName, doc)
}

func (g *Generator) appveyor(ctx context.Context) error {
	opts := AppVeyorOptions{DriverURL: g.opts.DriverURL}

	var err error
	if opts.Versions, opts.Dist, err = g.matrix(); err != nil {
		return err
	}
	if opts.X64, err = g.prompter.Confirm("Do you want to test on 64-bit versions?", false); err != nil {
		return err
	}

	doc, err := AppVeyorDocument(opts)
	if err != nil {
		return err
	}
	return g.save(ctx, AppVeyorFileName, doc)
}

// matrix asks for the dist kind first, since it decides which versions are valid.
func (g *Generator) matrix() ([]string, Dist, error) {
	answer, err := g.prompter.Select("What distributions should be created?", Dists(), string(DistBoth))
	if err != nil {
		return nil, "", err
	}
	dist := Dist(answer)

	versions, err := g.prompter.List("Enter Python versions (separated by a comma)", func(versions []string) error {
		return ValidateVersions(versions, dist)
	})
	if err != nil {
		return nil, "", err
	}
	return versions, dist, nil
}

// save writes the lines joined by newlines, asking before it replaces a file.
func (g *Generator) save(ctx context.Context, name string, doc []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(g.opts.Dir, name)
	if _, err := os.Stat(path); err == nil {
		overwrite, err := g.prompter.Confirm(fmt.Sprintf("%s exists. Overwrite?", name), false)
		if err != nil {
			return err
		}
		if !overwrite {
			return errUtils.Build(errUtils.ErrOverwriteDeclined).
				WithContext("file", path).
				Err()
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := renameio.WriteFile(path, []byte(strings.Join(doc, "\n")), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	log.Info("Saved CI file", "file", path)
	fmt.Fprintf(g.opts.Out, "Successfully created %s\n", name)
	return nil
}

func requireValue(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}
