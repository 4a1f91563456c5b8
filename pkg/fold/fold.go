// Copyright Pigeonworks LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fold

import (
	"io"
	"os"
	"strings"
)

// Mode controls when folding is active.
type Mode string

const (
	// ModeNever disables folding regardless of the environment.
	ModeNever Mode = "never"
	// ModeAuto enables folding only when the provider's environment
	// variable carries its expected value.
	ModeAuto Mode = "auto"
	// ModeAlways enables folding regardless of the environment.
	ModeAlways Mode = "always"
)

// Config holds construction parameters for a Folder.
type Config struct {
	// Provider selects the marker dialect. Defaults to GitLab.
	Provider Provider
	// Mode is the tri-state enable switch. Any value other than ModeNever
	// and ModeAlways is treated as ModeAuto.
	Mode Mode
	// Prefix is the section-identifier discriminator. Defaults to
	// DefaultPrefix(), i.e. "go-<pid>".
	Prefix string
	// Sequences allocates per-name sequence numbers. Defaults to a single
	// process-wide allocator shared by all Folders.
	Sequences *SequenceAllocator
	// Env is the environment probe used in auto mode. Defaults to os.Getenv.
	Env func(string) string
	// Output is the default sink for Folding. When nil, os.Stdout is
	// resolved at call time.
	Output io.Writer
}

// Folder decides whether folding is active and wraps lines, strings, or
// live output streams with paired fold markers. A Folder is safe for
// concurrent wrapping calls; mutating the enabled flag while operations
// are in flight is not.
type Folder struct {
	provider Provider
	prefix   string
	seq      *SequenceAllocator
	output   io.Writer
	enabled  bool
}

// New creates a Folder. A nil config selects all defaults: GitLab markers,
// auto mode probed against the real environment.
func New(cfg *Config) *Folder {
	if cfg == nil {
		cfg = &Config{}
	}
	p := cfg.Provider
	if p.Token == "" {
		p = GitLab
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix()
	}
	seq := cfg.Sequences
	if seq == nil {
		seq = defaultAllocator
	}
	env := cfg.Env
	if env == nil {
		env = os.Getenv
	}

	f := &Folder{
		provider: p,
		prefix:   prefix,
		seq:      seq,
		output:   cfg.Output,
	}
	switch cfg.Mode {
	case ModeNever:
		f.enabled = false
	case ModeAlways:
		f.enabled = true
	default: // auto
		f.enabled = env(p.EnvVar) == p.EnvValue
	}
	return f
}

// Enabled reports whether folding is active for this Folder.
func (f *Folder) Enabled() bool {
	return f.enabled
}

// SetEnabled overrides the construction-time decision. Intended for test
// harnesses restoring state between cases.
func (f *Folder) SetEnabled(on bool) {
	f.enabled = on
}

// Provider returns the marker dialect this Folder emits.
func (f *Folder) Provider() Provider {
	return f.provider
}

type callOpts struct {
	force   *bool
	lineEnd *string
	sep     string
	output  io.Writer
}

// Option adjusts a single Folder operation.
type Option func(*callOpts)

// WithForce overrides the Folder's enabled flag for one call: true folds
// unconditionally, false passes through unconditionally.
func WithForce(on bool) Option {
	return func(o *callOpts) { o.force = &on }
}

// WithLineEnd sets the marker line terminator instead of inferring it
// from the wrapped content.
func WithLineEnd(lineEnd string) Option {
	return func(o *callOpts) { o.lineEnd = &lineEnd }
}

// WithSeparator sets the join separator used by WrapString.
func WithSeparator(sep string) Option {
	return func(o *callOpts) { o.sep = sep }
}

// WithOutput directs Folding's markers to w instead of the Folder's
// configured sink.
func WithOutput(w io.Writer) Option {
	return func(o *callOpts) { o.output = w }
}

func applyOpts(opts []Option) *callOpts {
	o := &callOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (f *Folder) enabledFor(o *callOpts) bool {
	if o.force != nil {
		return *o.force
	}
	return f.enabled
}

// NewSection allocates a fresh section identifier for name. Every call
// advances the sequence for the normalized name.
func (f *Folder) NewSection(name string) string {
	name = NormalizeName(name)
	return SectionName(f.prefix, name, f.seq.Next(name))
}

// newSectionMarks allocates one section and renders its marker pair, so
// start and end always share an identifier.
func (f *Folder) newSectionMarks(name, lineEnd string) (string, string) {
	return Markers(f.provider, f.NewSection(name), lineEnd)
}

func (o *callOpts) lineEndFor(sample string) string {
	if o.lineEnd != nil {
		return *o.lineEnd
	}
	return DetectLineEnd(sample)
}

// WrapLines returns lines wrapped with a fold-marker pair. The marker
// terminator is inferred from the last line unless WithLineEnd is given,
// so joining the result with "\n" or with "" stays consistent with how
// the input lines were meant to be joined. Disabled folding returns lines
// unchanged without allocating a section.
func (f *Folder) WrapLines(lines []string, name string, opts ...Option) []string {
	o := applyOpts(opts)
	if !f.enabledFor(o) {
		return lines
	}
	sample := ""
	if len(lines) > 0 {
		sample = lines[len(lines)-1]
	}
	start, end := f.newSectionMarks(name, o.lineEndFor(sample))
	wrapped := make([]string, 0, len(lines)+2)
	wrapped = append(wrapped, start)
	wrapped = append(wrapped, lines...)
	wrapped = append(wrapped, end)
	return wrapped
}

// WrapString returns text wrapped with a fold-marker pair. Without an
// explicit WithSeparator, markers are joined to the text with "\n" unless
// text already ends with the (inferred or given) line terminator, so
// trailing-newline text is not double-spaced while bare text still gets
// its markers on their own lines. Disabled folding returns text unchanged.
func (f *Folder) WrapString(text, name string, opts ...Option) string {
	o := applyOpts(opts)
	if !f.enabledFor(o) {
		return text
	}
	lineEnd := o.lineEndFor(text)
	sep := o.sep
	if sep == "" && !(lineEnd != "" && strings.HasSuffix(text, lineEnd)) {
		sep = "\n"
	}
	start, end := f.newSectionMarks(name, lineEnd)
	return strings.Join([]string{start, text, end}, sep)
}

// Folding writes the start marker, runs body, and writes the matching end
// marker on every exit path, including a panicking or failing body. The
// body's error is returned unchanged after the end marker is written.
// Markers written to a live stream always delimit full lines, so their
// terminator is fixed to "\n". When folding is disabled the body runs
// with no markers and nothing else happens.
func (f *Folder) Folding(name string, body func() error, opts ...Option) error {
	o := applyOpts(opts)
	if !f.enabledFor(o) {
		return body()
	}
	w := o.output
	if w == nil {
		w = f.output
	}
	if w == nil {
		w = os.Stdout
	}
	start, end := f.newSectionMarks(name, "\n")
	_, _ = io.WriteString(w, start)
	defer func() {
		_, _ = io.WriteString(w, end)
	}()
	return body()
}
