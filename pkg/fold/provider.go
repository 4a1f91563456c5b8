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

// Package fold wraps captured output in collapsible-section markers
// recognized by CI build log viewers.
package fold

// Provider describes the fold-marker dialect of one CI log viewer.
type Provider struct {
	// Name is the short provider name used in configuration, e.g. "gitlab".
	Name string
	// Token is the marker literal emitted at the start of each marker line,
	// e.g. "gitlab_fold".
	Token string
	// EnvVar is the environment variable probed when the fold mode is "auto".
	EnvVar string
	// EnvValue is the exact value of EnvVar that enables folding. The match
	// is a strict string comparison; other truthy spellings do not count.
	EnvValue string
}

// Built-in providers.
var (
	GitLab = Provider{Name: "gitlab", Token: "gitlab_fold", EnvVar: "GITLAB_CI", EnvValue: "true"}
	Travis = Provider{Name: "travis", Token: "travis_fold", EnvVar: "TRAVIS", EnvValue: "true"}
)

// ProviderByName looks up a built-in provider by its short name.
func ProviderByName(name string) (Provider, bool) {
	for _, p := range []Provider{GitLab, Travis} {
		if p.Name == name {
			return p, true
		}
	}
	return Provider{}, false
}
