package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/inputkit/internal/config"
	"github.com/vango-dev/inputkit/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter inputkit.yaml",
		Long: `Create inputkit.yaml with a bootstrap theme and a few preview samples.

Examples:
  inputkit init
  inputkit init ./web --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.New(errors.CodeConfigWrite).Wrap(err)
			}

			path := filepath.Join(dir, config.ConfigFileName)
			if config.Exists(dir) && !force {
				return errors.New(errors.CodeConfigExists).WithDetail(path + " already exists")
			}
			if err := config.Example().SaveTo(path); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			success(out, "Created %s", path)
			info(out, "Try: inputkit render text --attr name=email")
			info(out, "     inputkit preview")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")
	return cmd
}
