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
	"regexp"
	"strings"
)

var punctRe = regexp.MustCompile(`\W+`)

// NormalizeName turns a free-form section label into a safe identifier:
// lowercase, every run of non-word characters collapsed to a single "-",
// no leading or trailing "-". Normalization is idempotent.
func NormalizeName(name string) string {
	return strings.Trim(punctRe.ReplaceAllString(strings.ToLower(name), "-"), "-")
}
