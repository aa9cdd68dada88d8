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
	"github.com/openai/openai-go/v3"
)

const sortSystemPrompt = "You are a helpful assistant that sorts arrays. " +
	"Sort the following JSON array with ascending order and return ONLY the sorted JSON array, nothing else."

// buildSortParams assembles the chat-completion request for one sort call: a
// system message carrying the sorting instruction and a user message carrying
// the JSON-encoded input. Temperature is pinned to zero so the ordering is as
// deterministic as the model allows.
func buildSortParams(model, payload string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(sortSystemPrompt),
			openai.UserMessage(payload),
		},
		Temperature: openai.Float(0),
	}
}
