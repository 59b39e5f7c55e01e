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


// Package pattern compiles search literals into whitespace-tolerant matchers.
//
// Text produced by extraction tools (pdftotext and friends) carries
// irregular whitespace: extra spaces and line breaks inside phrases, and
// sometimes spaces dropped entirely. Source transforms a literal into a
// regex that matches the literal's characters verbatim while allowing any
// amount of whitespace, including none, at each word boundary the literal
// itself contains. CJK runs additionally allow whitespace between every
// character, since extraction freely breaks them.
//
// The transform is exposed separately from compilation so the
// whitespace-insertion policy can be verified without a regex engine.
package pattern
