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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLineEnd(t *testing.T) {
	cases := []struct {
		sample string
		want   string
	}{
		{"", ""},
		{"\n", "\n"},
		{"Aww!", ""},
		{"Aww!\n", "\n"},
		{"two\nlines\n", "\n"},
		{"trailing\nmissing", ""},
	}

	for _, tc := range cases {
		t.Run(tc.sample, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectLineEnd(tc.sample))
		})
	}
}
