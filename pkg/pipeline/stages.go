package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	errUtils "github.com/pkgci/pkgci/errors"
	"github.com/pkgci/pkgci/pkg/ci"
	"github.com/pkgci/pkgci/pkg/config"
	"github.com/pkgci/pkgci/pkg/schema"
	"github.com/pkgci/pkgci/pkg/shell"
)

// baseRequirements are installed before the configured dependencies.
var baseRequirements = []string{"pip", "setuptools", "wheel"}

func (p *Pipeline) preparePlatform(ctx context.Context) (bool, error) {
	if err := checkWorkDir(p.workDir); err != nil {
		return false, err
	}

	pkgs := config.ListOption(p.cfg, string(p.rc.OS), schema.OptionPackages)
	if len(pkgs) == 0 {
		return true, nil
	}

	switch p.rc.OS {
	case ci.Linux:
		return false, p.run(ctx, StagePreparePlatform, shell.NewCommand("sudo", "apt-get", "install", "-y").With(pkgs...))
	case ci.MacOS:
		return false, p.run(ctx, StagePreparePlatform, shell.NewCommand("brew", "install").With(pkgs...))
	default:
		// Windows has no package manager; entries are commands.
		for _, entry := range pkgs {
			if err := p.runFor(ctx, StagePreparePlatform, p.command(entry), "command", entry); err != nil {
				return false, err
			}
		}
		return false, nil
	}
}

func (p *Pipeline) installDependencies(ctx context.Context) (bool, error) {
	base := append([]string{}, baseRequirements...)
	if p.defaultRunner() {
		base = append(base, schema.DefaultTestRunner)
	}
	if p.coverageEnabled() {
		base = append(base, "coverage")
	}
	if err := p.run(ctx, StageInstallDependencies, p.pipInstall(base...)); err != nil {
		return false, err
	}

	deps := config.ListOption(p.cfg, schema.SectionPackage, schema.OptionDependencies)
	if len(deps) > 0 {
		if err := p.run(ctx, StageInstallDependencies, p.pipInstall(deps...)); err != nil {
			return false, err
		}
	}

	if _, err := os.Stat(filepath.Join(p.workDir, config.RequirementsFileName)); err == nil {
		if err := p.run(ctx, StageInstallDependencies, p.pipInstall("-r", config.RequirementsFileName)); err != nil {
			return false, err
		}
	}

	return false, nil
}

// runScripts runs the entries of package.<option>. Python files run with the
// interpreter; anything else is a command line.
func (p *Pipeline) runScripts(ctx context.Context, s Stage, option string) (bool, error) {
	scripts := config.ListOption(p.cfg, schema.SectionPackage, option)
	if len(scripts) == 0 {
		return true, nil
	}

	for _, script := range scripts {
		cmd := p.command(script)
		if strings.HasSuffix(script, ".py") {
			cmd = p.python(script)
		}
		if err := p.runFor(ctx, s, cmd, "script", script); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (p *Pipeline) buildPackage(ctx context.Context) (bool, error) {
	if err := p.run(ctx, StageBuild, p.python("setup.py", string(p.rc.Dist))); err != nil {
		return false, err
	}

	artifact, err := FindArtifact(p.workDir)
	if err != nil {
		return false, err
	}
	p.artifact = artifact
	p.logger.Info("Built package", "file", artifact)
	return false, nil
}

func (p *Pipeline) installPackage(ctx context.Context) (bool, error) {
	cmd := p.pipInstall("--force-reinstall", shell.Quote(p.rc.OS, p.artifact))
	return false, p.run(ctx, StageInstall, cmd)
}

// deletePaths removes the package.delete entries so tests import the
// installed package. Every entry is checked before anything is removed.
func (p *Pipeline) deletePaths(_ context.Context) (bool, error) {
	entries := config.ListOption(p.cfg, schema.SectionPackage, schema.OptionDelete)
	if len(entries) == 0 {
		return true, nil
	}

	targets := make([]string, 0, len(entries))
	for _, entry := range entries {
		target, err := deleteTarget(p.workDir, entry)
		if err != nil {
			return false, err
		}
		targets = append(targets, target)
	}

	for i, target := range targets {
		p.logger.Info("Removing path", "path", entries[i])
		if err := os.RemoveAll(target); err != nil {
			return false, errUtils.Build(errUtils.ErrStageFailed).
				WithCause(err).
				WithContext("stage", StageDelete).
				WithContext("path", entries[i]).
				Err()
		}
	}
	return false, nil
}

func (p *Pipeline) runTests(ctx context.Context) (bool, error) {
	if p.defaultRunner() {
		cmd := p.python("-m", schema.DefaultTestRunner)
		if p.coverageEnabled() {
			cmd = cmd.With("--with-coverage", "--cover-xml", "--cover-package="+p.rc.Package)
		}
		return false, p.run(ctx, StageTests, cmd)
	}

	files := config.ParseList(p.testsOption())
	if len(files) == 0 {
		return true, nil
	}
	for _, file := range files {
		if err := p.runFor(ctx, StageTests, p.python(file), "test", file); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (p *Pipeline) uploadCoverage(ctx context.Context) (bool, error) {
	if !p.coverageEnabled() {
		return true, nil
	}

	provider := strings.TrimSpace(p.cfg.Get(schema.SectionCoverage, schema.OptionProvider, ""))
	if provider == "" {
		return false, errUtils.Build(errUtils.ErrCoverageProviderMissing).
			WithContext("stage", StageCoverage).
			WithHint("Set provider under [coverage] in ci.ini, for example codecov").
			Err()
	}

	if err := p.run(ctx, StageCoverage, p.pipInstall(provider)); err != nil {
		return false, err
	}
	return false, p.run(ctx, StageCoverage, p.python("-m", provider))
}

// command turns a configured command line into a Command. cmd.exe syntax is
// not POSIX, so Windows lines are passed on exactly as written.
func (p *Pipeline) command(line string) shell.Command {
	if p.rc.OS == ci.Windows {
		return shell.NewCommand(strings.TrimSpace(line))
	}
	return shell.ParseCommand(line)
}
