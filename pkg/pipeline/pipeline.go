// Package pipeline runs the CI sequence for a Python package: platform
// preparation, dependency install, scripts, build, install, cleanup, tests and
// coverage upload. Stages run in order and the first failure stops the run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	errUtils "github.com/pkgci/pkgci/errors"
	"github.com/pkgci/pkgci/pkg/ci"
	"github.com/pkgci/pkgci/pkg/config"
	log "github.com/pkgci/pkgci/pkg/logger"
	"github.com/pkgci/pkgci/pkg/schema"
	"github.com/pkgci/pkgci/pkg/shell"
)

// Stage names one step of the pipeline.
type Stage string

const (
	StagePreparePlatform     Stage = "prepare_platform"
	StageInstallDependencies Stage = "install_dependencies"
	StageBeforeScripts       Stage = "before_scripts"
	StageBuild               Stage = "build"
	StageInstall             Stage = "install"
	StageDelete              Stage = "delete"
	StageTests               Stage = "tests"
	StageAfterScripts        Stage = "after_scripts"
	StageCoverage            Stage = "coverage"
)

// Stages returns every stage in execution order.
func Stages() []Stage {
	return []Stage{
		StagePreparePlatform,
		StageInstallDependencies,
		StageBeforeScripts,
		StageBuild,
		StageInstall,
		StageDelete,
		StageTests,
		StageAfterScripts,
		StageCoverage,
	}
}

// StageResult records the outcome of one stage.
type StageResult struct {
	Stage   Stage
	Success bool
	Skipped bool
	Error   error
}

// Result is the outcome of a pipeline run.
type Result struct {
	Success bool
	Stages  []StageResult
	// Artifact is the built package file, relative to the working directory.
	Artifact string
}

// Pipeline holds everything a run needs. Build it with New.
type Pipeline struct {
	cfg     *schema.Configuration
	rc      ci.RunContext
	runner  shell.Runner
	logger  *log.Logger
	workDir string

	// artifact is set by the build stage and read by the install stage.
	artifact string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for stage progress.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithWorkDir overrides the working directory resolved from the configuration.
func WithWorkDir(dir string) Option {
	return func(p *Pipeline) {
		p.workDir = dir
	}
}

// New validates the configuration and returns a pipeline ready to run.
// Invalid combinations are reported here, before any command runs.
func New(cfg *schema.Configuration, rc ci.RunContext, runner shell.Runner, opts ...Option) (*Pipeline, error) {
	if runner == nil {
		return nil, errors.New("pipeline: runner is required")
	}

	p := &Pipeline{
		cfg:    cfg,
		rc:     rc,
		runner: runner,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	if p.workDir == "" {
		dir, err := ResolveWorkDir(cfg, rc.OS)
		if err != nil {
			return nil, err
		}
		p.workDir = dir
	}

	return p, nil
}

// Prepare loads the first existing configuration file among candidates,
// detects the platform and returns a validated pipeline.
func Prepare(candidates []string, env ci.Environment, runner shell.Runner, opts ...Option) (*Pipeline, error) {
	cfg, err := config.LoadConfiguration(candidates)
	if err != nil {
		return nil, err
	}

	rc, err := ci.NewRunContext(env, cfg)
	if err != nil {
		return nil, err
	}

	return New(cfg, rc, runner, opts...)
}

// WorkDir returns the directory every command runs in.
func (p *Pipeline) WorkDir() string {
	return p.workDir
}

// RunContext returns the detected run context.
func (p *Pipeline) RunContext() ci.RunContext {
	return p.rc
}

func (p *Pipeline) validate() error {
	name, ok := p.cfg.Lookup(schema.SectionPackage, schema.OptionName)
	if !ok || name == "" {
		return errUtils.Build(errUtils.ErrMissingPackageName).
			WithHint("Set name under [package] in ci.ini").
			Err()
	}

	if p.coverageEnabled() && !p.defaultRunner() {
		return errUtils.Build(errUtils.ErrCoverageWithoutRunner).
			WithContext("tests", p.testsOption()).
			WithHint("Remove the tests option to use nose, or disable coverage").
			Err()
	}

	return nil
}

type stageFunc func(ctx context.Context) (skipped bool, err error)

func (p *Pipeline) stage(s Stage) stageFunc {
	switch s {
	case StagePreparePlatform:
		return p.preparePlatform
	case StageInstallDependencies:
		return p.installDependencies
	case StageBeforeScripts:
		return func(ctx context.Context) (bool, error) {
			return p.runScripts(ctx, StageBeforeScripts, schema.OptionBefore)
		}
	case StageBuild:
		return p.buildPackage
	case StageInstall:
		return p.installPackage
	case StageDelete:
		return p.deletePaths
	case StageTests:
		return p.runTests
	case StageAfterScripts:
		return func(ctx context.Context) (bool, error) {
			return p.runScripts(ctx, StageAfterScripts, schema.OptionAfter)
		}
	case StageCoverage:
		return p.uploadCoverage
	default:
		return nil
	}
}

// Run executes the stages in order. The returned error is the first stage
// failure; the result lists every stage that was attempted.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	p.logger.Info("Starting CI run",
		"package", p.rc.Package,
		"platform", p.rc.Provider,
		"os", p.rc.OS,
		"python", p.rc.Python,
		"dist", p.rc.Dist,
		"dir", p.workDir)

	for _, s := range Stages() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		p.logger.Info("Running stage", "stage", s)
		skipped, err := p.stage(s)(ctx)
		result.Stages = append(result.Stages, StageResult{
			Stage:   s,
			Success: err == nil,
			Skipped: skipped,
			Error:   err,
		})
		if err != nil {
			p.logger.Error("Stage failed", "stage", s, "error", err)
			return result, err
		}
		if skipped {
			p.logger.Debug("Stage skipped", "stage", s)
		}
	}

	result.Success = true
	result.Artifact = p.artifact
	p.logger.Info("CI run finished", "package", p.rc.Package)
	return result, nil
}

// run executes cmd in the working directory and turns a non-zero exit status
// into a stage failure.
func (p *Pipeline) run(ctx context.Context, s Stage, cmd shell.Command) error {
	return p.runFor(ctx, s, cmd, "", "")
}

// runFor is run for a command that belongs to one configured entry, such as a
// script or a test file. The failure message and context name the entry.
func (p *Pipeline) runFor(ctx context.Context, s Stage, cmd shell.Command, key, value string) error {
	code, err := p.runner.Run(ctx, cmd.InDir(p.workDir))
	if err != nil {
		return errUtils.Build(errUtils.ErrStageFailed).
			WithCause(err).
			WithContext("stage", s).
			Err()
	}
	if code == 0 {
		return nil
	}

	subject := string(s)
	if value != "" {
		subject = fmt.Sprintf("%s %q", key, value)
	}

	b := errUtils.Build(errors.Newf("%s failed with exit code %d", subject, code)).
		WithSentinel(errUtils.ErrStageFailed).
		WithContext("stage", s).
		WithContext("command", cmd.String()).
		WithExitCode(code)
	if value != "" {
		b = b.WithContext(key, value)
	}
	return b.Err()
}

func (p *Pipeline) coverageEnabled() bool {
	return config.BoolOption(p.cfg, schema.SectionCoverage, schema.OptionEnabled)
}

func (p *Pipeline) testsOption() string {
	return p.cfg.Get(schema.SectionPackage, schema.OptionTests, schema.DefaultTestRunner)
}

func (p *Pipeline) defaultRunner() bool {
	return p.testsOption() == schema.DefaultTestRunner
}

func (p *Pipeline) python(args ...string) shell.Command {
	return shell.NewCommand(append([]string{p.rc.Python}, args...)...)
}

func (p *Pipeline) pipInstall(pkgs ...string) shell.Command {
	return p.python(append([]string{"-m", "pip", "install", "-U"}, pkgs...)...)
}
