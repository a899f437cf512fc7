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

import "sort"

// Source supplies attribute values to a Validator. Lookup reports the value
// and whether the attribute is present at all; the router's Request
// implements it with input parameters falling back to query parameters.
type Source interface {
	Lookup(name string) (string, bool)
}

// Validator runs a declarative rule specification against a Source and
// accumulates per-attribute errors.
//
// Rule specifications map an attribute name to a pipe-delimited rule string:
//
//	v := validation.New(req, map[string]string{
//	    "age": "required|numeric|min:1|max:150",
//	})
//	errs, ok := v.Validate()
type Validator struct {
	src   Source
	rules map[string]string
}

// New builds a validator from a value source and a rule specification.
// Rule strings are parsed lazily in Validate.
func New(src Source, rules map[string]string) *Validator {
	return &Validator{src: src, rules: rules}
}

// Validate evaluates every attribute's rules in the order they appear in the
// rule string and returns the accumulated errors. ok is true iff no
// attribute accumulated any error.
//
// Per rule, the flow-control flags decide what happens next:
//   - pass + stopIfPass: remaining rules for the attribute are skipped and
//     any errors already recorded for it are cleared (the nullable rule)
//   - fail + addErrorOnFailure: the rendered message is appended
//   - fail + stopIfFail: remaining rules for the attribute are skipped (the
//     required rule, so a missing value does not also fail type checks)
func (v *Validator) Validate() (Errors, bool) {
	errs := Errors{}

	// Attributes are independent of each other; iterate sorted for
	// deterministic evaluation.
	attributes := make([]string, 0, len(v.rules))
	for attribute := range v.rules {
		attributes = append(attributes, attribute)
	}
	sort.Strings(attributes)

	for _, attribute := range attributes {
		value, present := v.src.Lookup(attribute)

		for _, r := range parseSpec(v.rules[attribute]) {
			if r.passes(value, present) {
				if r.stopIfPass {
					errs.Clear(attribute)
					break
				}
				continue
			}

			if r.addErrorOnFailure {
				errs.Add(attribute, r.render(attribute, value))
			}
			if r.stopIfFail {
				break
			}
		}
	}

	return errs, len(errs) == 0
}
