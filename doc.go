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

// Package vibesort sorts slices by delegating the ordering decision to an
// OpenAI-compatible chat-completion API. Each call serializes the input into
// a prompt, issues a single POST to {base_url}/chat/completions through
// github.com/openai/openai-go/v3, and decodes the assistant's reply back into
// a slice of the same element type.
//
// A Sorter holds only immutable configuration, so a single instance may be
// shared across goroutines:
//
//	ctx := context.Background()
//	sorter := vibesort.New(os.Getenv("OPENAI_API_KEY"), "gpt-4o-mini", "https://api.openai.com/v1")
//	sorted, err := sorter.Sort(ctx, []int{3, 1, 4, 1, 5, 9, 2, 6})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Whether the result is actually sorted, or even a permutation of the input,
// is up to the model. The library verifies neither; callers that need those
// guarantees must check the result themselves.
package vibesort
