package main

import (
	"io"
	"os"

	"elastic-agent-access/codec"
	"elastic-agent-access/config"
	"elastic-agent-access/middleware"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/spf13/cobra"
)

var logger = loggo.GetLogger("elastic.cmd.eaconv")

type options struct {
	cfgFile string
	version string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "eaconv",
		Short:        "Decode and check elastic agent plugin messages",
		Long:         "eaconv converts the JSON bodies exchanged with elastic agent plugins, using the converter of one protocol version.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "eaconv.yaml", "config file path")
	cmd.PersistentFlags().StringVar(&opts.version, "protocol-version", "", "protocol version, overrides the config file")

	cmd.AddCommand(newDecodeCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newVersionsCmd())
	return cmd
}

// load resolves the configuration and applies its log level.
func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if o.version != "" {
		cfg.Version = o.version
		if err := cfg.Validate(); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if err := cfg.ConfigureLogging(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// converter returns the configured converter wrapped in the middlewares the
// configuration asks for.
func (o *options) converter() (codec.Converter, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}
	c, err := codec.GetConverter(cfg.ProtocolVersion())
	if err != nil {
		return nil, errors.Trace(err)
	}
	mws := []middleware.Middleware{middleware.Logging(logger)}
	if cfg.CheckSchema {
		mws = append(mws, middleware.SchemaCheck())
	}
	logger.Debugf("using elastic agent protocol v%s (schema checks: %t)", c.Version(), cfg.CheckSchema)
	return middleware.Chain(mws...)(c), nil
}

// readBody reads the body from the named file, or from stdin when no file is
// given or the name is "-".
func readBody(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", errors.Annotate(err, "reading body")
	}
	return string(data), nil
}
