package main

import "github.com/spf13/cobra"

func newTxCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Maintain the translation platform configuration",
	}
	cmd.AddCommand(newTxAddCmd(opts))
	return cmd
}
