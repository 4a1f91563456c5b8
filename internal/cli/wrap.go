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

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/go-logfold/pkg/fold"
)

var (
	wrapName    string
	wrapLineEnd string
)

var wrapCmd = &cobra.Command{
	Use:   "wrap [text]",
	Short: "Wrap text in fold markers",
	Long: `Wrap the given text (or standard input when no argument is given) in a
start/end fold-marker pair and print the result.

The marker line terminator is inferred from the input: input ending in a
newline keeps its newline convention, bare input gets bare markers joined
with newlines. Use --line-end to override (accepts literal \n and \r).`,
	Example: `  # Fold piped output
  dmesg | go-logfold wrap --name dmesg

  # Fold a literal string
  go-logfold wrap --name note "all artifacts uploaded"

  # Force folding outside CI
  go-logfold wrap --fold always --name note "hello"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWrap,
}

func init() {
	wrapCmd.Flags().StringVar(&wrapName, "name", "", "section name embedded in the markers")
	wrapCmd.Flags().StringVar(&wrapLineEnd, "line-end", "", "marker line terminator override")
}

func runWrap(cmd *cobra.Command, args []string) error {
	folder, err := newFolder(cmd)
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	var opts []fold.Option
	if cmd.Flags().Changed("line-end") {
		opts = append(opts, fold.WithLineEnd(unescapeLineEnd(wrapLineEnd)))
	}

	out := folder.WrapString(text, wrapName, opts...)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// unescapeLineEnd translates the flag spellings \n and \r into the real
// control characters.
func unescapeLineEnd(s string) string {
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\n`, "\n")
	return s
}
