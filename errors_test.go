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
	"strings"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 429, Body: "slow down"}
	if got := err.Error(); !strings.Contains(got, "429") || !strings.Contains(got, "slow down") {
		t.Fatalf("Error() = %q, want status and body included", got)
	}

	malformed := &APIError{Body: "malformed response: no choices"}
	if got := malformed.Error(); strings.Contains(got, "status") {
		t.Fatalf("Error() = %q, want no status for malformed responses", got)
	}
}

func TestParseError_CarriesContent(t *testing.T) {
	cause := errors.New("invalid character 'n'")
	err := &ParseError{Content: "not an array", Err: cause}
	if got := err.Error(); !strings.Contains(got, "not an array") {
		t.Fatalf("Error() = %q, want raw content included", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is() = false, want unwrap to %v", cause)
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is() = false, want unwrap to %v", cause)
	}
}
