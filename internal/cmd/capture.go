package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/pasteimg/internal/capture"
	"github.com/Iron-Ham/pasteimg/internal/clipboard"
	"github.com/Iron-Ham/pasteimg/internal/codec"
	"github.com/Iron-Ham/pasteimg/internal/config"
	"github.com/Iron-Ham/pasteimg/internal/errors"
	"github.com/Iron-Ham/pasteimg/internal/logging"
	"github.com/Iron-Ham/pasteimg/internal/presenter"
	"github.com/Iron-Ham/pasteimg/internal/progress"
	"github.com/Iron-Ham/pasteimg/internal/reveal"
)

var lossless bool

// Replaced in tests.
var (
	newSource   = func() clipboard.Source { return clipboard.NewSystem() }
	newRevealer = reveal.New
	newCodec    = func() codec.Codec { return codec.New() }
)

func runCapture(cmd *cobra.Command, _ []string) error {
	out := presenter.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		err = errors.Wrap(err, "invalid configuration")
		out.Report(err)
		return err
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled() {
		logger = logging.NewLogger(cmd.ErrOrStderr(), logging.ParseLevel(cfg.Logging.Level))
	}
	logger = logger.With("lossless", lossless)

	opts := cfg.ProgressOptions()
	opts.Logger = logger
	indicator := progress.Start(cmd.OutOrStdout(), opts)

	pipeline := capture.New(newSource(), newCodec(),
		append(cfg.PipelineOptions(), capture.WithLogger(logger))...)
	result, err := pipeline.Capture(lossless)

	indicator.Stop()
	indicator.Clear()

	if err != nil {
		logger.Error("capture failed", "error", err.Error())
		out.Report(err)
		return err
	}

	logger.Info("clipboard image saved",
		"path", result.Path,
		"fingerprint", result.Fingerprint,
		"bytes", result.Size)
	out.Saved(result.Path)

	if err := newRevealer().Reveal(result.Path); err != nil {
		logger.Warn("reveal failed", "error", err.Error())
		out.Report(err)
		if errors.IsFatal(err) {
			return err
		}
	}
	return nil
}
