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


// Package search provides filtered semantic search over book listings.
//
// The Searcher type resolves each request into structured filter
// conditions and an embedding text, then combines:
//   - Semantic search using vector embeddings, constrained by the conditions
//   - Verbatim keyword matching with stop-word filtering
//
// Two entry points exist and never blend within a request: Search infers
// every dimension from the query text, while SearchWithParams takes a
// budget and edition keyword supplied directly by the caller.
package search
