package main

import (
	"fmt"

	"elastic-agent-access/protocol"
	"elastic-agent-access/schema"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	var response bool
	cmd := &cobra.Command{
		Use:   "check <request> [file]",
		Short: "Check a message body against its schema",
		Long: "Check a request or response body against the JSON schema of the configured protocol version.\n" +
			"The request may be a full name such as cd.go.elastic-agent.create-agent or its last segment.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, ok := protocol.LookupRequest(args[0])
			if !ok {
				return errors.NotFoundf("elastic agent request %q", args[0])
			}
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			body, err := readBody(cmd, args[1:])
			if err != nil {
				return err
			}

			kind := schema.Request
			if response {
				kind = schema.Response
			}
			violations, err := schema.Validate(cfg.ProtocolVersion(), request, kind, body)
			if err != nil {
				return errors.Trace(err)
			}
			out := cmd.OutOrStdout()
			if len(violations) == 0 {
				_, err := fmt.Fprintf(out, "%s %s body conforms to v%s\n", request, kind, cfg.Version)
				return err
			}
			for _, v := range violations {
				fmt.Fprintln(out, v)
			}
			return errors.NotValidf("%s %s body (%d violations)", request, kind, len(violations))
		},
	}
	cmd.Flags().BoolVar(&response, "response", false, "check a response body instead of a request body")
	return cmd
}
