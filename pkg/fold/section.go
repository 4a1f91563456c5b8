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
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultPrefix returns the process discriminator embedded in section
// identifiers, so that concurrent processes sharing one log stream never
// produce colliding sections.
func DefaultPrefix() string {
	return fmt.Sprintf("go-%d", os.Getpid())
}

// SectionName joins prefix, name and sequence number with dots to form a
// section identifier, e.g. "go-123.stdout.0". Empty components are omitted
// together with their separator.
func SectionName(prefix, name string, n int) string {
	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	if name != "" {
		parts = append(parts, name)
	}
	parts = append(parts, strconv.Itoa(n))
	return strings.Join(parts, ".")
}
