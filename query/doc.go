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


// Package query turns a collector's free-text request into structured
// filter conditions and an embedding-text decision.
//
// Six independent extractors each parse one filter dimension (publisher,
// author, edition type, price ceiling, availability, genre tags) from the
// raw query string using ordered alias and vocabulary tables. Analyze
// assembles the extractor outputs into an ordered condition list and a
// confidence score; ResolveQuery and ResolveExplicit choose between the
// two resolution paths and decide what text augments the embedding query.
//
// Everything in this package is pure and total: extraction never fails,
// it only declines to populate a dimension. "Zero conditions, confidence
// 0" is a valid outcome, not an error. The tables are read-only after
// initialization, so all entry points are safe for concurrent use.
package query
