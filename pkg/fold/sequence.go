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

import "sync"

// SequenceAllocator hands out a strictly increasing counter per section
// name, so repeated sections with the same name get distinct identifiers.
// The zero counter map only grows for the life of the process; section
// counts in a CI run are small, so entries are never evicted.
type SequenceAllocator struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewSequenceAllocator returns an empty allocator.
func NewSequenceAllocator() *SequenceAllocator {
	return &SequenceAllocator{counts: make(map[string]int)}
}

// Next returns 0 on the first call for name, 1 on the second, and so on.
// It is safe to call from concurrent goroutines; no two callers observe
// the same value for the same name.
func (a *SequenceAllocator) Next(name string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := a.counts[name]
	a.counts[name] = n + 1
	return n
}

// defaultAllocator is shared by every Folder that is not given its own,
// keeping section identifiers unique across Folders within one process.
var defaultAllocator = NewSequenceAllocator()
