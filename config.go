// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package gaba

// SeqFormat is the on-wire encoding of a strand handed to the sequence reader.
type SeqFormat uint8

// Recognized sequence formats. Only FormatASCII is wired to a working reader;
// the others are accepted at the type level (per the external interfaces in
// spec §6) but rejected at Init since their decoders are out-of-scope I/O
// collaborators.
const (
	FormatASCII SeqFormat = iota
	Format2Bit
	Format4Bit
	Format2BitPacked
	Format4BitPacked
)

// SeqDirection controls whether a strand is read forward-only or may be
// probed in reverse-complement.
type SeqDirection uint8

const (
	DirForwardOnly SeqDirection = iota
	DirForwardReverse
)

// AlnFormat selects the output format a downstream traceback writer would
// use; the core engine never interprets it, it is only threaded through for
// that external collaborator.
type AlnFormat uint8

const (
	AlnFormatStr AlnFormat = iota
	AlnFormatCIGAR
	AlnFormatDir
)

// DefaultXDrop is used whenever a Config leaves XDrop at zero, mirroring the
// teacher's DefaultPenalties/DefaultOptions package-level defaults.
const DefaultXDrop int16 = 100

// ScoreMatrix is the 4x4 substitution matrix plus affine-gap costs for each
// strand, the "simple-schema helper (m, x, gi, ge)" of spec §6. Indices 0..3
// are the four nucleotide codes (A, C, G, T).
type ScoreMatrix struct {
	Sub [4][4]int8 // Sub[a][b] is the reward/penalty for aligning base a against base b.

	GapOpenA, GapOpenB   int8
	GapExtendA, GapExtendB int8
}

// DefaultScoreMatrix is a plain match/mismatch/affine-gap scheme: match=+1,
// mismatch=-1, gap-open=-1, gap-extend=-1 on both strands.
var DefaultScoreMatrix = ScoreMatrix{
	Sub: [4][4]int8{
		{1, -1, -1, -1},
		{-1, 1, -1, -1},
		{-1, -1, 1, -1},
		{-1, -1, -1, 1},
	},
	GapOpenA: -1, GapOpenB: -1,
	GapExtendA: -1, GapExtendB: -1,
}

// Config is the builder handed to Init. NewConfig starts from the defaults
// (ASCII/forward-only/semi-global/xdrop=100/DefaultScoreMatrix); in a zero
// value only XDrop is defaulted (by Init), and ScoreMatrix is all zeros.
type Config struct {
	SeqAFormat, SeqBFormat       SeqFormat
	SeqADirection, SeqBDirection SeqDirection
	AlnFormat                    AlnFormat
	XDrop                        int16
	ScoreMatrix                  ScoreMatrix
	GlobalAlignment              bool
	Guided                       bool
}

// Option mutates a Config; passed in bulk to Init.
type Option func(*Config)

// WithXDrop overrides the X-drop threshold.
func WithXDrop(xdrop int16) Option {
	return func(c *Config) { c.XDrop = xdrop }
}

// WithFormats sets the wire encodings of the two strands.
func WithFormats(a, b SeqFormat) Option {
	return func(c *Config) { c.SeqAFormat, c.SeqBFormat = a, b }
}

// WithDirections sets forward-only vs forward-reverse probing per strand.
func WithDirections(a, b SeqDirection) Option {
	return func(c *Config) { c.SeqADirection, c.SeqBDirection = a, b }
}

// WithScoreMatrix overrides the substitution/gap scheme.
func WithScoreMatrix(m ScoreMatrix) Option {
	return func(c *Config) { c.ScoreMatrix = m }
}

// WithAlignmentFormat sets the format a downstream traceback writer should use.
func WithAlignmentFormat(f AlnFormat) Option {
	return func(c *Config) { c.AlnFormat = f }
}

// WithGuided requests guided-mode direction determination. Always rejected
// at Init (see ErrGuidedModeUnsupported) — kept as an explicit option rather
// than silently ignored, so callers get a clear Precondition error instead of
// unknowingly running dynamic mode.
func WithGuided(guided bool) Option {
	return func(c *Config) { c.Guided = guided }
}

// WithGlobalAlignment toggles between semi-global (default) and (false)
// local/free-ended extension at section boundaries.
func WithGlobalAlignment(global bool) Option {
	return func(c *Config) { c.GlobalAlignment = global }
}

// defaultConfig returns the zero-value-safe default configuration.
func defaultConfig() Config {
	return Config{
		SeqAFormat:       FormatASCII,
		SeqBFormat:       FormatASCII,
		SeqADirection:    DirForwardOnly,
		SeqBDirection:    DirForwardOnly,
		AlnFormat:        AlnFormatCIGAR,
		XDrop:            DefaultXDrop,
		ScoreMatrix:      DefaultScoreMatrix,
		GlobalAlignment:  true,
	}
}

// NewConfig builds a Config from the defaults plus any Options.
func NewConfig(opts ...Option) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}
