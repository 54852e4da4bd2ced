package cmd

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	errUtils "github.com/pkgci/pkgci/errors"
	"github.com/pkgci/pkgci/pkg/generate"
	log "github.com/pkgci/pkgci/pkg/logger"
)

// newPrompter picks interactive forms on a terminal and plain line prompts otherwise.
var newPrompter = func(in io.Reader, out io.Writer) generate.Prompter {
	if isTerminal(in) && isTerminal(out) {
		return generate.NewHuhPrompter()
	}
	return generate.NewLinePrompter(in, out)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Travis CI and AppVeyor configuration files",
	Long: `This command asks for the Python versions, the distributions to build and platform options,
then writes .travis.yml and .appveyor.yml. Existing files are only replaced after confirmation.`,
	Example: "pkgci generate\npkgci generate --dir ./project",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			return err
		}
		driverURL, err := cmd.Flags().GetString("driver-url")
		if err != nil {
			return err
		}

		g := generate.NewGenerator(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), generate.Options{
			Dir:       dir,
			DriverURL: driverURL,
			Out:       cmd.OutOrStdout(),
		})

		err = g.Run(cmd.Context())
		if errors.Is(err, errUtils.ErrOverwriteDeclined) {
			log.Info("Overwrite declined, stopping")
			return nil
		}
		return err
	},
}

func init() {
	generateCmd.Flags().String("dir", ".", "Directory to write the CI files to")
	generateCmd.Flags().String("driver-url", generate.DefaultDriverURL, "URL CI jobs download the driver script from")
	RootCmd.AddCommand(generateCmd)
}
