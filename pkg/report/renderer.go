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

// Package report renders captured test-runner output sections with fold
// markers for a CI build log. It is the composition point for hosts that
// intercept per-test captured output or a coverage summary: the host hands
// each section's caption and content here instead of writing it directly.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pigeonworks-llc/go-logfold/pkg/fold"
)

const headingWidth = 60

// Renderer writes captured sections to one output stream, folded whenever
// its Folder decides folding is active.
type Renderer struct {
	folder *fold.Folder
	out    io.Writer
}

// NewRenderer composes a Renderer from a Folder and the stream the host
// report is being written to.
func NewRenderer(f *fold.Folder, out io.Writer) *Renderer {
	return &Renderer{folder: f, out: out}
}

// ShortSectionName trims test-runner caption boilerplate down to the bare
// channel name, e.g. "Captured stdout call" -> "stdout".
func ShortSectionName(caption string) string {
	name := strings.TrimPrefix(caption, "Captured ")
	name = strings.TrimSuffix(name, " call")
	return name
}

// heading centers caption in a dashed separator line.
func heading(caption string) string {
	fill := headingWidth - len(caption) - 2
	if fill < 2 {
		fill = 2
	}
	left := fill / 2
	return strings.Repeat("-", left) + " " + caption + " " + strings.Repeat("-", fill-left)
}

// Section writes one captured-output section under a dashed heading. The
// fold is named after the shortened caption and skipped entirely when the
// content is empty: a heading with nothing under it is not worth folding.
// One trailing newline of content is dropped; the section itself always
// ends with a newline.
func (r *Renderer) Section(caption, content string) error {
	content = strings.TrimSuffix(content, "\n")

	opts := []fold.Option{fold.WithOutput(r.out)}
	if content == "" {
		opts = append(opts, fold.WithForce(false))
	}
	return r.folder.Folding(ShortSectionName(caption), func() error {
		_, err := fmt.Fprintf(r.out, "%s\n%s\n", heading(caption), content)
		return err
	}, opts...)
}

// Coverage folds a coverage-summary callback under the "cov" section,
// handing the callback the renderer's own stream. The callback's error
// propagates after the end marker is written.
func (r *Renderer) Coverage(summary func(io.Writer) error) error {
	return r.folder.Folding("cov", func() error {
		return summary(r.out)
	}, fold.WithOutput(r.out))
}
