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

package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// kind enumerates the closed set of rule behaviors. Rule names are mapped to
// kinds through ruleTable; names outside the table map to kindIgnore, so an
// unrecognized rule degrades to a no-op instead of failing the request.
type kind int

const (
	kindIgnore kind = iota
	kindRequired
	kindNullable
	kindNumeric
	kindMin
	kindMax
	kindAccepted
)

// rule is one named check bound to an attribute: a kind, its string targets
// (such as a numeric bound), the three flow-control flags, and a message
// template rendered on failure.
type rule struct {
	kind   kind
	name   string
	params []string

	stopIfFail        bool
	stopIfPass        bool
	addErrorOnFailure bool

	message string
}

// ruleTable maps rule names to constructors. The table is the single place a
// new rule kind is wired in.
var ruleTable = map[string]func(params []string) rule{
	"required": func([]string) rule {
		return rule{
			kind:              kindRequired,
			name:              "required",
			stopIfFail:        true,
			addErrorOnFailure: true,
			message:           ":attribute is required",
		}
	},
	"nullable": func([]string) rule {
		return rule{
			kind:       kindNullable,
			name:       "nullable",
			stopIfPass: true,
		}
	},
	"numeric": func([]string) rule {
		return rule{
			kind:              kindNumeric,
			name:              "numeric",
			addErrorOnFailure: true,
			message:           ":attribute must be numeric",
		}
	},
	"min": func(params []string) rule {
		return rule{
			kind:              kindMin,
			name:              "min",
			params:            params,
			addErrorOnFailure: true,
			message:           ":attribute must be greater than :param_0",
		}
	},
	"max": func(params []string) rule {
		return rule{
			kind:              kindMax,
			name:              "max",
			params:            params,
			addErrorOnFailure: true,
			message:           ":attribute must be less than :param_0",
		}
	},
	"accepted": func([]string) rule {
		return rule{
			kind:              kindAccepted,
			name:              "accepted",
			addErrorOnFailure: true,
			message:           ":attribute must be accepted",
		}
	},
}

// newRule constructs the rule for a name. Unknown names construct an ignore
// rule; this leniency is deliberate, not an error path.
func newRule(name string, params []string) rule {
	if ctor, ok := ruleTable[name]; ok {
		return ctor(params)
	}

	return rule{kind: kindIgnore, name: name}
}

// parseSpec expands a pipe-delimited rule string into its ordered rule list.
// Each pipe segment names a rule and optionally carries colon-delimited,
// comma-split targets: "min:1" becomes rule min with targets ["1"].
func parseSpec(spec string) []rule {
	pieces := strings.Split(spec, "|")

	rules := make([]rule, 0, len(pieces))
	for _, piece := range pieces {
		if piece == "" {
			continue
		}

		name := piece
		var params []string
		if idx := strings.Index(piece, ":"); idx >= 0 {
			name = piece[:idx]
			params = strings.Split(piece[idx+1:], ",")
		}

		rules = append(rules, newRule(name, params))
	}

	return rules
}

// passes evaluates the rule against one value. present reports whether the
// attribute exists in the request's input or query parameters at all.
func (r rule) passes(value string, present bool) bool {
	switch r.kind {
	case kindRequired:
		return present
	case kindNullable:
		return !present
	case kindNumeric:
		_, ok := parseNumber(value)
		return ok
	case kindMin:
		return size(value) > r.bound()
	case kindMax:
		return size(value) < r.bound()
	case kindAccepted:
		switch value {
		case "yes", "on", "1", "true":
			return true
		}
		return false
	default:
		return true
	}
}

// bound returns the rule's first target as a number, or 0 when the target is
// missing or unparsable.
func (r rule) bound() float64 {
	if len(r.params) == 0 {
		return 0
	}

	n, err := strconv.ParseFloat(r.params[0], 64)
	if err != nil {
		return 0
	}

	return n
}

// parseNumber interprets a raw string strictly as a number: integer first,
// then float. Booleans and everything else are not numbers.
func parseNumber(value string) (float64, bool) {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return float64(n), true
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f, true
	}

	return 0, false
}

// size coerces a raw string to its numeric size for min/max comparisons.
// The parse order is fixed and the input is never evaluated as code:
// integer, then float, then boolean literal (1/0), then fall back to the
// string's length.
func size(value string) float64 {
	if n, ok := parseNumber(value); ok {
		return n
	}
	if b, err := strconv.ParseBool(value); err == nil {
		if b {
			return 1
		}
		return 0
	}

	return float64(len(value))
}

// render substitutes the message template's placeholders: :attribute,
// :value, and the positional :param_N targets. Each placeholder is replaced
// by a literal find-and-replace of its first occurrence.
func (r rule) render(attribute, value string) string {
	msg := strings.Replace(r.message, ":attribute", attribute, 1)
	msg = strings.Replace(msg, ":value", value, 1)
	for i, param := range r.params {
		msg = strings.Replace(msg, fmt.Sprintf(":param_%d", i), param, 1)
	}

	return msg
}
