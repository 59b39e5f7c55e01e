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

import "errors"

// Query validation errors
var (
	// ErrInvalidLiteral indicates a literal is empty or all whitespace.
	ErrInvalidLiteral = errors.New("literal cannot be empty or all whitespace")

	// ErrEmptyOrGroup indicates an OR-group with no literals.
	ErrEmptyOrGroup = errors.New("or-group must contain at least one literal")

	// ErrMissingPrimary indicates a query spec without a primary literal.
	ErrMissingPrimary = errors.New("query requires a primary literal")
)
