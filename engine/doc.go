// Copyright 2025 Poiesic Systems
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


// Package engine fans a compiled query out across a set of files.
//
// The Engine distributes files over a bounded worker pool. Each worker
// reads one file fully into memory, evaluates the shared compiled query
// against it, and emits an outcome. Outcomes flow through a channel into
// a single collector goroutine, so result aggregation never touches
// shared mutable state. A file that cannot be read or decoded is recorded
// as failed and never aborts the batch.
//
// No ordering is guaranteed across files; the aggregated result sets are
// order-irrelevant and callers impose any ordering they need by sorting
// paths.
package engine
