package main

import (
	"github.com/spf13/cobra"

	"github.com/karniella/revisions/core"
)

func newRootCmd() *cobra.Command {
	conf := core.NewConfig()

	var dataDir string

	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "Content administration for the Karniella Revisions platform",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", conf.DataDir, "directory holding the JSON documents")

	cmd.AddCommand(newSeedCmd(&dataDir))
	cmd.AddCommand(newCheckCmd(&dataDir))
	return cmd
}
