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


package core

import (
	"fmt"
	"strings"
)

// ValidateLiteral validates a search literal according to domain rules.
//
// Validation rules:
//   - Must not be empty
//   - Must contain at least one non-whitespace character
//
// Internal whitespace is allowed; it is interpreted as a soft separator
// by the pattern compiler.
func ValidateLiteral(literal Literal) error {
	if strings.TrimSpace(string(literal)) == "" {
		return ErrInvalidLiteral
	}
	return nil
}

// ValidateOrGroup validates that an OR-group is non-empty and that every
// member literal is valid.
func ValidateOrGroup(group OrGroup) error {
	if len(group) == 0 {
		return ErrEmptyOrGroup
	}
	for _, literal := range group {
		if err := ValidateLiteral(literal); err != nil {
			return err
		}
	}
	return nil
}

// ValidateQuerySpec validates a QuerySpec according to domain rules.
//
// Validation rules:
//   - Primary must be a valid literal
//   - Every OR-group must be non-empty with valid members
//
// Groups may be absent entirely; the query then degenerates to a
// single-literal search.
func ValidateQuerySpec(spec QuerySpec) error {
	if strings.TrimSpace(string(spec.Primary)) == "" {
		return ErrMissingPrimary
	}
	for i, group := range spec.Groups {
		if err := ValidateOrGroup(group); err != nil {
			return fmt.Errorf("group %d: %w", i, err)
		}
	}
	return nil
}
