// Copyright 2025 Oxide Package Manager Contributors
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

package solver

import pkgerrors "github.com/pkg/errors"

// ParseError is returned when a version, constraint, or package name string
// does not conform to its canonical textual form. ParseErrors surface eagerly,
// before any search begins, and are never recovered from.
type ParseError struct {
	Kind  string // "version", "constraint", or "package name"
	Input string
	cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.cause.Error()
}

// Unwrap returns the underlying cause, recoverable via errors.Cause for
// callers that want the original library error (e.g. from Masterminds/semver).
func (e *ParseError) Unwrap() error {
	return e.cause
}

func newParseError(kind, input string, cause error) *ParseError {
	return &ParseError{
		Kind:  kind,
		Input: input,
		cause: pkgerrors.Wrapf(cause, "invalid %s %q", kind, input),
	}
}

var _ error = (*ParseError)(nil)
