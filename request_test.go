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
	"testing"
)

func TestBuildSortParams(t *testing.T) {
	params := buildSortParams("gpt-4o-mini", "[2,1]")

	if got, want := string(params.Model), "gpt-4o-mini"; got != want {
		t.Fatalf("Model mismatch got=%q want=%q", got, want)
	}
	if len(params.Messages) != 2 {
		t.Fatalf("unexpected messages: %+v", params.Messages)
	}
	system := params.Messages[0].OfSystem
	if system == nil {
		t.Fatalf("first message is not a system message: %+v", params.Messages[0])
	}
	if got, want := system.Content.OfString.Value, sortSystemPrompt; got != want {
		t.Fatalf("system prompt mismatch got=%q want=%q", got, want)
	}
	user := params.Messages[1].OfUser
	if user == nil {
		t.Fatalf("second message is not a user message: %+v", params.Messages[1])
	}
	if got, want := user.Content.OfString.Value, "[2,1]"; got != want {
		t.Fatalf("user payload mismatch got=%q want=%q", got, want)
	}
	if !params.Temperature.Valid() || params.Temperature.Value != 0 {
		t.Fatalf("Temperature = %+v, want explicit zero", params.Temperature)
	}
}
