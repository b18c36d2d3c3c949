package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codahale/sakura"
)

// errFailed is returned when one or more inputs could not be hashed. The individual failures have been logged.
var errFailed = errors.New("one or more inputs failed")

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sakurasum [flags] [FILE...]",
		Short:         "Print Keccak-based digests of files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "sakurasum: %v\n", err)
				return err
			}

			log := newLogger(stderr, cfg.LogLevel)
			if cfg.List {
				return list(stdout)
			}
			return run(cfg, log, stdin, stdout, args)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	setupFlags(cmd.Flags())
	return cmd
}

func list(w io.Writer) error {
	for _, alg := range sakura.Algorithms() {
		kind := "hash"
		if alg.IsXOF() {
			kind = "xof"
		}
		if _, err := fmt.Fprintf(w, "%-20s %s\n", alg, kind); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}

func run(cfg *config, log zerolog.Logger, stdin io.Reader, stdout io.Writer, args []string) error {
	proto, err := sakura.New(cfg.Algorithm, cfg.Options)
	if err != nil {
		log.Error().Err(err).Msg("Invalid parameters")
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	failed := false
	for _, name := range args {
		h := proto.NewEmpty()
		n, err := hashInput(h, name, stdin)
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("Failed to hash input")
			failed = true
			continue
		}

		log.Debug().Str("file", name).Str("algorithm", string(cfg.Algorithm)).Int64("bytes", n).Msg("Hashed input")
		if _, err := fmt.Fprintf(stdout, "%x  %s\n", h.SumIn(nil), name); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}

	if failed {
		return errFailed
	}
	return nil
}

func hashInput(h sakura.Hash, name string, stdin io.Reader) (int64, error) {
	if name == "-" {
		n, err := io.Copy(h, stdin)
		return n, errors.Wrap(err, "reading standard input")
	}

	f, err := os.Open(name)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer func() { _ = f.Close() }()

	n, err := io.Copy(h, f)
	return n, errors.Wrapf(err, "reading %s", name)
}
