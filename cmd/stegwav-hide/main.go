// SPDX-License-Identifier: EPL-2.0

// Command stegwav-hide writes a copy of a carrier with a payload stored in
// its sample LSBs, laid out the way stegwav reads it back.
//
//	stegwav-hide [-v] <mode> <cover> <payload> <output.wav>
//
// An output of "-" streams a plain 44-byte-header WAV to stdout, without
// the metadata chunk a file output carries.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ik5/stegwav"
	"github.com/ik5/stegwav/audio"
	"github.com/ik5/stegwav/formats/wav"
	"github.com/ik5/stegwav/lsb"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, log.Logger))
}

func run(args []string, stdout, stderr io.Writer, logger zerolog.Logger) int {
	fs := flag.NewFlagSet("stegwav-hide", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: stegwav-hide [flags] <mode> <cover> <payload> <output.wav|->")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	if fs.NArg() != 4 {
		logger.Error().Err(stegwav.ErrArgument).Int("args", fs.NArg()).Msg("expected <mode> <cover> <payload> <output.wav>")
		fs.Usage()
		return 1
	}

	mode, err := lsb.ParseMode(fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Msg("not a valid mode")
		return 1
	}

	if err := hide(mode, fs.Arg(1), fs.Arg(2), fs.Arg(3), stdout, logger); err != nil {
		logger.Error().Err(err).Msg("hide failed")
		return 1
	}

	return 0
}

// hide embeds the payload and writes the result to outPath, or to stdout
// when outPath is "-".
func hide(mode lsb.Mode, coverPath, payloadPath, outPath string, stdout io.Writer, logger zerolog.Logger) error {
	start := time.Now()

	payload, err := os.ReadFile(payloadPath)
	if err != nil {
		return fmt.Errorf("%w: %w", stegwav.ErrIO, err)
	}

	src, err := stegwav.OpenFile(coverPath)
	if err != nil {
		return err
	}
	defer src.Close()

	frames, err := stegwav.Hide(src, payload, mode)
	if err != nil {
		return err
	}

	logger.Debug().
		Int("frames", len(frames)).
		Int("payload", len(payload)).
		Int("capacity", lsb.Capacity(len(frames), mode)).
		Msg("embedded")

	if outPath == "-" {
		if err := wav.WriteWAV16(stdout, src.SampleRate(), frames); err != nil {
			return fmt.Errorf("%w: %w", stegwav.ErrIO, err)
		}
	} else if err := writeFile(outPath, src.SampleRate(), frames); err != nil {
		return err
	}

	logger.Info().
		Str("mode", mode.String()).
		Str("output", outPath).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	return nil
}

func writeFile(path string, sampleRate int, frames []audio.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", stegwav.ErrIO, err)
	}
	defer out.Close()

	tags := map[string]string{"software": "stegwav-hide"}
	if err := wav.Encode(out, sampleRate, frames, tags); err != nil {
		return fmt.Errorf("%w: %w", stegwav.ErrIO, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", stegwav.ErrIO, err)
	}

	return nil
}
