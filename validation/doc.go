// Copyright 2026 The Fenn Authors
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

// Package validation implements declarative input validation over
// pipe-delimited rule strings such as "required|numeric|min:1|max:10".
//
// Rules operate on a single named input value and compose left to right with
// short-circuiting: required stops its attribute on failure, nullable stops
// on an absent value and clears any errors recorded so far. Unrecognized
// rule names are a documented leniency and evaluate as no-ops.
//
// Numeric comparisons coerce values with a fixed-order parse (integer,
// float, boolean literal, then string length); input is never evaluated as
// code.
package validation
