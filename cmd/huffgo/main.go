// Copyright (c) 2026, the huffgo authors.
// SPDX-License-Identifier: BSD-3-Clause

// Command huffgo compresses and decompresses files with the huffgo
// Huffman codec. By default it compresses the input file and writes the
// packed stream to stdout or to the file given with -o.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bitpack/huffgo/compress/huffman"
	"github.com/bitpack/huffgo/internal/logger"
)

// config carries the command's settings as explicit fields; there is no
// global argument state.
type config struct {
	decode bool
	framed bool
	output string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:           "huffgo [flags] <input>",
		Short:         "Huffman compressor with a self-describing stream format",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args[0])
		},
	}

	cmd.Flags().BoolVarP(&cfg.decode, "decode", "d", false, "decompress instead of compress")
	cmd.Flags().BoolVar(&cfg.framed, "framed", false, "use the length-prefixed format (safe for payloads with zero bytes)")
	cmd.Flags().StringVarP(&cfg.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func run(cfg config, input string) error {
	log := logger.Logger()

	data, err := os.ReadFile(input)
	if err != nil {
		log.Error().Err(err).Str("input", input).Msg("cannot read input")
		return err
	}

	var out []byte
	switch {
	case cfg.decode && cfg.framed:
		out, err = huffman.DecodeFramed(data)
	case cfg.decode:
		out, err = huffman.Decode(data)
	case cfg.framed:
		out, err = huffman.EncodeFramed(data)
	default:
		out, err = huffman.Encode(data)
	}
	if err != nil {
		log.Error().Err(err).Msg("codec failure")
		return err
	}

	if cfg.output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(cfg.output, out, 0o644); err != nil {
		log.Error().Err(err).Str("output", cfg.output).Msg("cannot write output")
		return err
	}
	log.Info().
		Int("in_bytes", len(data)).
		Int("out_bytes", len(out)).
		Str("output", cfg.output).
		Msg("done")
	return nil
}
