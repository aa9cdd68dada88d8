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
	"encoding/json"
	"strings"

	"github.com/openai/openai-go/v3"
)

// extractContent pulls the assistant text out of a chat completion. A
// completion with no choices or no message content is malformed as far as
// the sorter is concerned and surfaces as an APIError.
func extractContent(completion *openai.ChatCompletion) (string, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return "", &APIError{Body: "malformed response: no choices"}
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", &APIError{Body: "malformed response: message content is empty"}
	}
	return content, nil
}

// decodeSorted parses the assistant's reply as a JSON array of T.
func decodeSorted[T any](content string) ([]T, error) {
	var sorted []T
	if err := json.Unmarshal([]byte(content), &sorted); err != nil {
		return nil, &ParseError{Content: content, Err: err}
	}
	return sorted, nil
}
