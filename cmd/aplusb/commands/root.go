package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"aplusb/internal/app"
	"aplusb/internal/domain"
)

var appCtx *app.Wire

// Execute runs the CLI against the process arguments and standard streams.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, domain.Message(err))
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aplusb",
		Short:         "Sum the two integers in input.txt into output.txt",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.DefaultConfig()
			cfg.Logger = app.NewLogger(cmd.OutOrStdout(), slog.LevelInfo)

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := appCtx.Pipeline.Run()
			return err
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(fingerprintCmd())
	return root
}
