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
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/go-logfold/pkg/fold"
)

var runName string

var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Run a command with its output folded",
	Long: `Run a command with its combined stdout/stderr wrapped in a fold-marker
pair. The start marker is written before the command starts and the end
marker is written after it exits, on every exit path, so the fold is
always closed even when the command fails. The command's failure is
still reported through the exit status.`,
	Example: `  # Fold the build log section
  go-logfold run --name build -- make all

  # Section name defaults to the command's base name
  go-logfold run -- go test ./...`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runName, "name", "", "section name (default: command base name)")
}

func runRun(cmd *cobra.Command, args []string) error {
	folder, err := newFolder(cmd)
	if err != nil {
		return err
	}

	name := runName
	if name == "" {
		name = filepath.Base(args[0])
	}

	out := cmd.OutOrStdout()
	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = out
	child.Stderr = out

	return folder.Folding(name, child.Run, fold.WithOutput(out))
}
