package main

import (
	"fmt"

	"elastic-agent-access/codec"
	"elastic-agent-access/protocol"

	"github.com/spf13/cobra"
)

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the supported protocol versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range protocol.SupportedVersions() {
				if _, err := codec.GetConverter(v); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", protocol.ExtensionName, v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
