// SPDX-License-Identifier: EPL-2.0

// Command stegwav extracts LSB-hidden data from a stereo 16-bit PCM file.
//
//	stegwav [-v] [-info] [-delim S] <mode> <input> <output>
//
// The letters and digits recovered under <mode> are written to <output>.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ik5/stegwav"
	"github.com/ik5/stegwav/lsb"
)

const bufferSize = 4096

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)
	os.Exit(run(os.Args[1:], os.Stderr, log.Logger))
}

func modeNames() string {
	names := make([]string, 0, len(lsb.Modes()))
	for _, m := range lsb.Modes() {
		names = append(names, m.String())
	}

	return strings.Join(names, " ")
}

func run(args []string, stderr io.Writer, logger zerolog.Logger) int {
	fs := flag.NewFlagSet("stegwav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "debug logging")
	info := fs.Bool("info", false, "write a YAML report of the input to stderr")
	delim := fs.String("delim", "", "write this string after every recovered character")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: stegwav [flags] <mode> <input> <output>")
		fmt.Fprintf(stderr, "modes: %s\n", modeNames())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	if fs.NArg() != 3 {
		logger.Error().Err(stegwav.ErrArgument).Int("args", fs.NArg()).Msg("expected <mode> <input> <output>")
		fs.Usage()
		return 1
	}

	mode, err := lsb.ParseMode(fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Str("accepted", modeNames()).Msg("not a valid mode")
		return 1
	}

	if err := extract(mode, fs.Arg(1), fs.Arg(2), *info, *delim, stderr, logger); err != nil {
		logger.Error().Err(err).Msg(kind(err))
		return 1
	}

	return 0
}

func kind(err error) string {
	switch {
	case errors.Is(err, stegwav.ErrFormat):
		return "unsupported input"
	case errors.Is(err, stegwav.ErrIO):
		return "i/o failure"
	default:
		return "extraction failed"
	}
}

func extract(mode lsb.Mode, inPath, outPath string, info bool, delim string, stderr io.Writer, logger zerolog.Logger) error {
	start := time.Now()

	// Inspect holds its own handle and releases it before extraction starts.
	if info {
		rep, err := stegwav.Inspect(inPath)
		if err != nil {
			return err
		}
		if err := rep.WriteYAML(stderr); err != nil {
			return err
		}
	}

	src, err := stegwav.OpenFile(inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %w", stegwav.ErrIO, err)
	}
	defer out.Close()

	logger.Debug().
		Str("mode", mode.String()).
		Str("input", inPath).
		Int("sample_rate", src.SampleRate()).
		Msg("extracting")

	res, err := stegwav.Analyze(src, mode, bufferSize)
	if err != nil {
		return err
	}

	n, err := lsb.Render(out, res.Message, delim)
	if err != nil {
		return fmt.Errorf("%w: %w", stegwav.ErrIO, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", stegwav.ErrIO, err)
	}

	logger.Debug().
		Int("frames", res.Stats.Frames).
		Int("bytes", res.Stats.Bytes).
		Int("discarded_bits", res.Stats.DiscardedBits).
		Msg("bit assembly done")

	logger.Info().
		Str("output", outPath).
		Int("characters", len(res.Printable)).
		Int("written", n).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	return nil
}
