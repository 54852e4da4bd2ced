package cmd

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pkgci/pkgci/pkg/ci"
	"github.com/pkgci/pkgci/pkg/config"
	log "github.com/pkgci/pkgci/pkg/logger"
	"github.com/pkgci/pkgci/pkg/pipeline"
	"github.com/pkgci/pkgci/pkg/shell"
)

// newRunner creates the command runner for an OS family. Tests replace it.
var newRunner = func(family ci.OS) shell.Runner {
	return shell.NewProcessRunner(family)
}

// currentEnvironment describes the process the run inspects. Tests replace it.
var currentEnvironment = func() ci.Environment {
	return ci.Environment{
		Getenv: os.Getenv,
		GOOS:   runtime.GOOS,
	}
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the CI pipeline for the package in the current directory",
	Long: `This command reads ci.ini (or .ci.ini), detects the CI platform and operating system, and runs the pipeline:
system packages, dependencies, before scripts, build, install, cleanup, tests, after scripts and coverage upload.
The first failing command stops the run and its exit code becomes the exit code of pkgci.`,
	Example: "pkgci run\npkgci run --platform travis --python python3",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := currentEnvironment()
		env.PlatformOverride = settings.Platform
		env.PythonOverride = settings.Python

		family, err := ci.DetectOS(env.GOOS)
		if err != nil {
			return err
		}

		p, err := pipeline.Prepare(config.Candidates(settings), env, newRunner(family), pipeline.WithLogger(log.Default()))
		if err != nil {
			return err
		}

		result, err := p.Run(cmd.Context())
		if err != nil {
			return err
		}
		log.Info("Package tested", "artifact", result.Artifact)
		return nil
	},
}

func init() {
	runCmd.Flags().String("config", "", "Path to the configuration file. Defaults to ci.ini, then .ci.ini, in the current directory")
	runCmd.Flags().String("platform", "", "CI platform to assume instead of detecting it (travis, appveyor)")
	runCmd.Flags().String("python", "", "Command that runs the Python interpreter, instead of the platform default")
	RootCmd.AddCommand(runCmd)
}
