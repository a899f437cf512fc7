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

package router

import "strings"

// segment is one element of a compiled route path. A segment is either a
// literal that must match the request path exactly, or a named parameter
// that binds whatever the request carries at that position.
type segment struct {
	value string // literal text, or parameter name without the leading colon
	param bool   // true when the segment is a :name parameter
}

// segmentate compiles a route path into its ordered segment list.
// The path is split on "/" and the leading empty segment produced by the
// root slash is dropped, so "/users/:id" yields ["users", ":id"].
// Any segment beginning with ":" becomes a parameter segment.
//
// segmentate runs once per route at registration time; matching never
// re-splits the pattern.
func segmentate(path string) []segment {
	parts := strings.Split(path, "/")
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}

	segments := make([]segment, len(parts))
	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			segments[i] = segment{value: part[1:], param: true}
		} else {
			segments[i] = segment{value: part}
		}
	}

	return segments
}

// splitPath splits a concrete request path the same way segmentate splits a
// pattern, so the two line up pairwise during matching.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}

	return parts
}
