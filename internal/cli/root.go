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

// Package cli provides the command-line interface for go-logfold.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/go-logfold/internal/config"
	"github.com/pigeonworks-llc/go-logfold/pkg/fold"
)

var (
	// Version is set during build time
	Version = "dev"

	configPath   string
	providerName string
	foldMode     string

	rootCmd = &cobra.Command{
		Use:   "go-logfold",
		Short: "Wrap command output in CI log-viewer fold markers",
		Long: `go-logfold wraps captured output in fold markers recognized by CI build
log viewers (GitLab, Travis), so long sections collapse in the web UI.

Features:
  - Collision-free section identifiers (process id + name + sequence)
  - Newline-preserving marker insertion
  - Tri-state activation: never / auto (probe CI env) / always
  - Single engine for multiple CI providers

Example:
  # Fold a command's output while it runs
  go-logfold run --name build -- make all

  # Wrap piped text in fold markers
  tar tvf release.tar | go-logfold wrap --name contents`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath,
		"path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&providerName, "provider", "",
		"CI provider marker dialect (gitlab, travis)")
	rootCmd.PersistentFlags().StringVar(&foldMode, "fold", "",
		"when to fold: never, auto or always")

	rootCmd.AddCommand(wrapCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// newFolder builds the fold engine from the config file plus any flag
// overrides on the invoked command. Flags outrank file values.
func newFolder(cmd *cobra.Command) (*fold.Folder, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = providerName
	}
	if cmd.Flags().Changed("fold") {
		cfg.Fold = foldMode
	}
	return cfg.Folder()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "go-logfold version %s\n", Version)
	},
}
