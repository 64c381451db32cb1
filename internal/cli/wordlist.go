package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seedriot/internal/wordlist"
)

func newWordlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage wordlists",
	}
	cmd.AddCommand(newWordlistExportCmd(a))
	return cmd
}

func newWordlistExportCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write the bundled BIP39 English wordlist",
		Long: `Write the bundled BIP39 English wordlist (2048 words) to path, or to the
configured --wordlist location when path is omitted. Parent directories are
created as needed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return classify(err)
			}
			path := a.wordlistPath
			if len(args) == 1 {
				path = args[0]
			}

			_, err := os.Stat(path)
			switch {
			case err == nil && !force:
				return classify(fmt.Errorf("%s already exists; use --force to overwrite", path))
			case err != nil && !errors.Is(err, os.ErrNotExist):
				return classify(err)
			}

			words := wordlist.Demo()
			if err := wordlist.Export(path, words); err != nil {
				return classify(err)
			}
			a.logger.Debug("exported wordlist", "path", path, "entries", len(words))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words to %s\n", len(words), path)
			return classify(err)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
