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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Sorter asks a chat-completion model to order slices of ints or strings.
// Its configuration is fixed at construction and never mutated, so one
// Sorter may serve any number of concurrent calls.
type Sorter struct {
	client *openai.Client
	model  string
}

// New returns a Sorter that talks to the chat-completion endpoint under
// baseURL (e.g. "https://api.openai.com/v1") with the given bearer API key.
// Each sort is a single attempt: the client is configured without retries.
func New(apiKey, model, baseURL string) *Sorter {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	return &Sorter{
		client: &client,
		model:  model,
	}
}

// NewWithClient returns a Sorter backed by a caller-constructed OpenAI
// client, for callers that need their own HTTP transport or request options.
func NewWithClient(model string, client openai.Client) (*Sorter, error) {
	if model == "" {
		return nil, ErrModelRequired
	}
	if len(client.Options) == 0 {
		return nil, ErrClientRequired
	}
	return &Sorter{
		client: &client,
		model:  model,
	}, nil
}

// Sort asks the model to order items ascending and returns the decoded
// result. Inputs of length zero or one are returned (as a copy) without a
// network call.
func (s *Sorter) Sort(ctx context.Context, items []int) ([]int, error) {
	return sortSlice(ctx, s, items)
}

// SortStrings is Sort for string elements.
func (s *Sorter) SortStrings(ctx context.Context, items []string) ([]string, error) {
	return sortSlice(ctx, s, items)
}

func sortSlice[T any](ctx context.Context, s *Sorter, items []T) ([]T, error) {
	if len(items) <= 1 {
		return slices.Clone(items), nil
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("vibesort: encode input: %w", err)
	}
	content, err := s.complete(ctx, string(payload))
	if err != nil {
		return nil, err
	}
	return decodeSorted[T](content)
}

// complete issues the single round trip to the API and classifies failures:
// an HTTP-level error status becomes an APIError, anything below that
// (including context cancellation) a TransportError.
func (s *Sorter) complete(ctx context.Context, payload string) (string, error) {
	completion, err := s.client.Chat.Completions.New(ctx, buildSortParams(s.model, payload))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &APIError{StatusCode: apiErr.StatusCode, Body: apiErr.RawJSON()}
		}
		return "", &TransportError{Err: err}
	}
	return extractContent(completion)
}
