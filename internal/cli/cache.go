package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattkessler/crossweave/pkg/errors"
)

// cacheCommand creates the cache command with subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local result cache",
	}

	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheClearCommand())

	return cmd
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached results",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("cache is already empty")
				return nil
			}
			if err := os.RemoveAll(dir); err != nil {
				return errors.Wrap(errors.ErrCodeStorage, err, "clearing cache %s", dir)
			}
			printSuccess("cleared cache")
			printFile(dir)
			return nil
		},
	}
}
