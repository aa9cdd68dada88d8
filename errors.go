// Copyright 2025 Google LLC
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

package vibesort

import (
	"errors"
	"fmt"
)

var (
	// ErrModelRequired is returned when a model name is not provided.
	ErrModelRequired = errors.New("vibesort: model name is required")
	// ErrClientRequired is returned when an OpenAI client is not provided.
	ErrClientRequired = errors.New("vibesort: client is required")
)

// APIError reports that the chat-completion API answered with a non-success
// HTTP status, or with a success status whose body is missing the fields the
// sorter needs (no choices, empty message content). StatusCode is zero for
// the malformed-response case.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("vibesort: api error: %s", e.Body)
	}
	return fmt.Sprintf("vibesort: api error: status %d: %s", e.StatusCode, e.Body)
}

// ParseError reports that the assistant's reply could not be decoded as a
// JSON array of the expected element type. Content carries the raw text the
// model returned so callers can see what went wrong.
type ParseError struct {
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vibesort: parse sorted array: %v (model returned: %s)", e.Err, e.Content)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TransportError reports a failure below the HTTP-status level: DNS,
// connect, TLS, timeout, or context cancellation.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vibesort: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
