// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/lpcmmix/audio"
	"github.com/ik5/lpcmmix/formats"
	"github.com/ik5/lpcmmix/formats/wav"
	"github.com/ik5/lpcmmix/internal/config"
	"github.com/ik5/lpcmmix/internal/loader"
	"github.com/ik5/lpcmmix/internal/logging"
	"github.com/ik5/lpcmmix/utils"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	stdoutPath = "-"
)

var errUsage = errors.New("usage: lpcmmix [flags] <input-a> <input-b> <output>")

type options struct {
	inputA string
	inputB string
	output string
	cfg    *config.Config
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if err := logging.Init(opts.cfg.Logging); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer logging.Sync()

	logging.SetTraceID(logging.NewTraceID())

	if err := mixFiles(ctx, opts, stdout); err != nil {
		logging.Errorf("mix failed: %v", err)
		fmt.Fprintln(stderr, "lpcmmix:", err)
		return exitError
	}

	return exitOK
}

// parseArgs layers flags over the config file and environment. Only flags
// given on the command line override.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("lpcmmix", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := config.Default()

	configPath := fs.String("config", "", "JSON config file")
	raw := fs.Bool("raw", false, "read inputs as raw PCM16LE instead of decoding by extension")
	rate := fs.Int("rate", defaults.Input.SampleRate, "sample rate for decoded inputs and WAV output")
	frame := fs.Int("frame", defaults.Mixer.SamplesPerFrame, "samples per frame")
	channels := fs.Int("channels", defaults.Mixer.Channels, "interleaved channels per frame")
	attenuation := fs.Float64("attenuation", float64(defaults.Mixer.Attenuation), "gain applied to the sum, in (0, 1]")
	format := fs.String("format", "", "output format: wav or raw (default by output extension)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	logFormat := fs.String("log-format", "", "console or json")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), errUsage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return nil, errUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "raw":
			cfg.Input.Raw = *raw
		case "rate":
			cfg.Input.SampleRate = *rate
		case "frame":
			cfg.Mixer.SamplesPerFrame = *frame
		case "channels":
			cfg.Mixer.Channels = *channels
		case "attenuation":
			cfg.Mixer.Attenuation = float32(*attenuation)
		case "format":
			cfg.Output.Format = *format
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-format":
			cfg.Logging.Format = *logFormat
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &options{
		inputA: fs.Arg(0),
		inputB: fs.Arg(1),
		output: fs.Arg(2),
		cfg:    cfg,
	}, nil
}

func mixFiles(ctx context.Context, opts *options, stdout io.Writer) error {
	cfg := opts.cfg

	mixer, err := audio.NewLPCMMixer(cfg.MixerConfig())
	if err != nil {
		return err
	}

	ld := loader.New(formats.NewRegistry(), loader.Options{
		SampleRate: cfg.Input.SampleRate,
		BufferSize: cfg.Input.BufferSize,
		Raw:        cfg.Input.Raw,
	})

	a, b, err := ld.LoadPair(ctx, opts.inputA, opts.inputB)
	if err != nil {
		return err
	}

	mixID := logging.StartMix()
	mixed := mixer.Mix(a, b)
	logging.Infof("mix %d: %d + %d bytes -> %d bytes", mixID, len(a), len(b), len(mixed))

	return writeOutput(opts.output, outputFormat(cfg.Output.Format, opts.output), cfg, mixed, stdout)
}

func outputFormat(format, path string) string {
	if format != "" {
		return strings.ToLower(format)
	}

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return config.FormatWAV
	}

	return config.FormatRaw
}

func writeOutput(path, format string, cfg *config.Config, pcm []byte, stdout io.Writer) (err error) {
	w := stdout
	if path != stdoutPath {
		f, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("%w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("%w", cerr)
			}
		}()
		w = f
	}

	switch format {
	case config.FormatWAV:
		err = wav.WritePCM16(w, cfg.Input.SampleRate, outputChannels(cfg), utils.BytesToInt16LE(pcm))
	default:
		_, err = w.Write(pcm)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logging.Infof("wrote %s (%s, %d bytes of PCM)", path, format, len(pcm))
	return nil
}

// outputChannels is the channel count of the mixed data. Decoded inputs are
// always collapsed to mono; raw inputs keep the interleaving of the frames.
func outputChannels(cfg *config.Config) int {
	if !cfg.Input.Raw {
		return 1
	}

	return cfg.Mixer.Channels
}
