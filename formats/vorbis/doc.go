// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// The library already produces float32 samples in [-1, 1], so the Source
// here decodes straight into the caller's buffer. Reads are trimmed to
// whole frames; a buffer shorter than one frame reads nothing.
package vorbis
