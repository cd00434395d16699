package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/llehouerou/tplay/internal/stderr"
)

// exitError carries a message already formatted for the user.
type exitError struct {
	msg string
}

func (e *exitError) Error() string { return e.msg }

func fail(msg string) error { return &exitError{msg: msg} }

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "tplay [path]",
		Short:         "Play the audio files of a directory in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.changed = cmd.Flags().Changed
			return runPlayer(cmd.Context(), opts, firstArg(args))
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configFile, "config", "", "extra config file, loaded last")
	f.StringVar(&opts.icons, "icons", "", "icon style: nerd, unicode or none")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.StringVar(&opts.logFile, "log-file", "", "log file path")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "playback mode: sequential, loop or random")
	cmd.Flags().IntVar(&opts.volume, "volume", 0, "start volume (0-128)")

	cmd.AddCommand(newListCmd(&opts))
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		var ee *exitError
		msg := err.Error()
		if errors.As(err, &ee) {
			msg = ee.msg
		}
		stderr.WriteOriginal(msg + "\n")
		os.Exit(1)
	}
}
