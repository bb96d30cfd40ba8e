package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"elastic-agent-access/codec"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
)

type propertyView struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

type metadataView struct {
	Key      string `json:"key"`
	Required bool   `json:"required"`
	Secure   bool   `json:"secure"`
}

type validationView struct {
	Successful bool                `json:"successful"`
	Errors     []map[string]string `json:"errors"`
}

type agentView struct {
	ID          string `json:"agent_id"`
	AgentState  string `json:"agent_state"`
	BuildState  string `json:"build_state"`
	ConfigState string `json:"config_state"`
}

type imageView struct {
	ContentType string `json:"content_type"`
	DataURI     string `json:"data_uri"`
}

// decoder turns a body into a value printable as JSON.
type decoder func(c codec.Converter, body string) (any, error)

var decoders = map[string]decoder{
	"can-handle": func(c codec.Converter, body string) (any, error) {
		return c.CanHandlePluginResponseFromBody(body)
	},
	"should-assign-work": func(c codec.Converter, body string) (any, error) {
		return c.ShouldAssignWorkResponseFromBody(body)
	},
	"profile-view": func(c codec.Converter, body string) (any, error) {
		return c.ProfileViewResponseFromBody(body)
	},
	"profile-metadata": func(c codec.Converter, body string) (any, error) {
		set, err := c.ProfileMetadataResponseFromBody(body)
		if err != nil {
			return nil, err
		}
		out := make([]metadataView, 0, set.Len())
		for _, m := range set.Items() {
			out = append(out, metadataView(m))
		}
		return out, nil
	},
	"validation-result": func(c codec.Converter, body string) (any, error) {
		result, err := c.ValidationResultResponseFromBody(body)
		if err != nil {
			return nil, err
		}
		view := validationView{Successful: result.IsSuccessful(), Errors: []map[string]string{}}
		for _, e := range result.Errors() {
			view.Errors = append(view.Errors, map[string]string{"key": e.Key, "message": e.Message})
		}
		return view, nil
	},
	"icon": func(c codec.Converter, body string) (any, error) {
		img, err := c.ImageResponseFromBody(body)
		if err != nil || img == nil {
			return nil, err
		}
		return imageView{ContentType: img.ContentType, DataURI: img.DataURI()}, nil
	},
	"agents": func(c codec.Converter, body string) (any, error) {
		agents, err := c.AgentMetadataListFromBody(body)
		if err != nil {
			return nil, err
		}
		out := make([]agentView, 0, len(agents))
		for _, a := range agents {
			out = append(out, agentView(a))
		}
		return out, nil
	},
	"configuration": func(c codec.Converter, body string) (any, error) {
		cfg, err := c.ConfigurationFromBody(body)
		if err != nil {
			return nil, err
		}
		out := make([]propertyView, 0, cfg.Len())
		for _, p := range cfg.Properties() {
			out = append(out, propertyView(p))
		}
		return out, nil
	},
}

func decoderKinds() []string {
	kinds := make([]string, 0, len(decoders))
	for k := range decoders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <kind> [file]",
		Short: "Decode a plugin message body",
		Long: "Decode a plugin message body read from file, or stdin, and print the result as JSON.\n\nKinds: " +
			strings.Join(decoderKinds(), ", "),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			decode, ok := decoders[args[0]]
			if !ok {
				return errors.NotFoundf("decoder %q", args[0])
			}
			c, err := opts.converter()
			if err != nil {
				return err
			}
			body, err := readBody(cmd, args[1:])
			if err != nil {
				return err
			}
			v, err := decode(c, body)
			if err != nil {
				return errors.Annotatef(err, "decoding %s", args[0])
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return errors.Trace(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
