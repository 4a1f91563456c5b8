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

import "strings"

// DetectLineEnd infers the line terminator for markers from the content
// being wrapped: "\n" when sample ends with a newline, "" otherwise. This
// keeps marker insertion from changing the newline convention of the
// wrapped content.
func DetectLineEnd(sample string) string {
	if strings.HasSuffix(sample, "\n") {
		return "\n"
	}
	return ""
}
