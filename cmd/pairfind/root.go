package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/metalagman/pairfind"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type solveOptions struct {
	jsonInput bool
	inputFile string
	debug     bool
}

func newRootCmd() *cobra.Command {
	opts := &solveOptions{}
	root := &cobra.Command{
		Use:   "pairfind",
		Short: "Find two sequence elements that sum to a target",
		Long: `pairfind reads whitespace-separated integers from stdin; the last one is
the target and the rest are the sequence. It prints the zero-based indices
of the first pair summing to the target as a JSON array, or [] when no
pair exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, opts)
		},
	}

	root.Flags().BoolVar(&opts.jsonInput, "json", false, `read a JSON request object {"nums":[...],"target":N} instead of a text line`)
	root.Flags().StringVar(&opts.inputFile, "input-file", "", "read input from a file instead of stdin")
	root.Flags().BoolVar(&opts.debug, "debug", false, "log solve details to stderr")

	return root
}

func runSolve(cmd *cobra.Command, opts *solveOptions) error {
	logger := newLogger(opts.debug)

	in, closeInput, err := openInput(cmd, opts.inputFile)
	if err != nil {
		return err
	}
	defer closeInput()

	nums, target, err := decodeInput(in, opts.jsonInput)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	logger.Debug().Int("sequence_len", len(nums)).Int("target", target).Msg("input decoded")

	indices := []int{}
	if pair, ok := pairfind.Find(nums, target); ok {
		indices = pair.Indices()
	}

	logger.Debug().Ints("indices", indices).Msg("scan finished")

	out, err := json.Marshal(indices)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(out)); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}

	return nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func decodeInput(r io.Reader, jsonInput bool) ([]int, int, error) {
	if jsonInput {
		return pairfind.DecodeRequest(r)
	}

	return pairfind.DecodeLine(r)
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.ErrorLevel
	if debug {
		level = zerolog.DebugLevel
	}

	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
