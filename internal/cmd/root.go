package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crimson-sun/readlog/internal/config"
	"github.com/crimson-sun/readlog/internal/decode"
	"github.com/crimson-sun/readlog/internal/logging"
	"github.com/crimson-sun/readlog/internal/output"
	"github.com/crimson-sun/readlog/internal/output/stdout"
	"github.com/crimson-sun/readlog/internal/printer"
)

// NewRootCmd builds the readlog command.
func NewRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "readlog [path]",
		Short: "Print a log file, decoding UTF-16 with a UTF-8 fallback",
		Long: `readlog prints a log file (error.log in the working directory by default)
to stdout. The file is decoded as UTF-16, honouring a byte-order mark. If
the bytes are not valid UTF-16 it is read again as UTF-8. Any other read
failure prints "Error reading file: <reason>" and exits 0.

Examples:
  readlog
  readlog /var/log/app/error.log
  READLOG_OUTPUT=json readlog`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			if len(args) == 1 {
				v.Set(config.KeyPath, args[0])
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "config file (default: ./.readlog.yaml or $HOME/.readlog.yaml)")
	f.StringP("output", "o", "text", "output format: text, json")
	f.String("log-level", "warn", "diagnostic log level on stderr: debug, info, warn, error")
	f.String("encoding", "utf-16", "encoding tried first")
	f.String("fallback-encoding", "utf-8", "encoding tried when the first cannot decode the file")
	f.Bool("translate-newlines", false, `translate "\r\n" and "\r" to "\n"`)

	bindFlags(v, cmd, map[string]string{
		config.KeyOutput:            "output",
		config.KeyLogLevel:          "log-level",
		config.KeyEncoding:          "encoding",
		config.KeyFallbackEncoding:  "fallback-encoding",
		config.KeyTranslateNewlines: "translate-newlines",
	})
	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		cobra.CheckErr(v.BindPFlag(key, cmd.Flags().Lookup(flag)))
	}
}

func run(ctx context.Context, cfg config.Config, stdoutW, stderrW io.Writer) error {
	// Validated by config.Load.
	format, _ := output.ParseFormat(cfg.Output.Format)
	primary, _ := decode.Get(cfg.Decode.Encoding)
	fallback, _ := decode.Get(cfg.Decode.FallbackEncoding)

	logger := logging.Init(stderrW, format == output.JSON, logging.ParseLevel(cfg.Log.Level))

	out := stdout.NewWriter(stdoutW, format)
	defer out.Close()

	p := printer.New(
		printer.WithPath(cfg.Path),
		printer.WithEncodings(primary, fallback),
		printer.WithOutput(out),
		printer.WithLogger(logger),
		printer.WithTranslateNewlines(cfg.Decode.TranslateNewlines),
	)
	return p.Run(ctx)
}
