// SPDX-License-Identifier: EPL-2.0

// Command lpcmmix mixes two audio inputs into one 16-bit PCM output.
//
//	lpcmmix [flags] <input-a> <input-b> <output>
//
// Inputs are decoded by file extension (wav, mp3, ogg, aif, aiff) and
// brought to -rate Hz mono, or read as raw PCM16LE with -raw. The output is
// a WAV file when -format is wav or the output path ends in ".wav", and raw
// PCM otherwise. Use "-" for stdout.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
