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

import "fmt"

// Markers renders the paired start/end marker lines for a section
// identifier, each optionally suffixed with lineEnd.
func Markers(p Provider, section, lineEnd string) (start, end string) {
	start = fmt.Sprintf("%s:start:%s%s", p.Token, section, lineEnd)
	end = fmt.Sprintf("%s:end:%s%s", p.Token, section, lineEnd)
	return start, end
}
