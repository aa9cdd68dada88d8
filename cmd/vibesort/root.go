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

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	vibesort "github.com/vibesort/vibesort-go"
)

func newRootCommand() *cobra.Command {
	var modelFlag string
	var baseURLFlag string
	var stringsFlag bool

	rootCmd := &cobra.Command{
		Use:           "vibesort [items...]",
		Short:         "Sort values by asking a chat-completion model",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := os.Getenv("OPENAI_API_KEY")
			if apiKey == "" {
				return fmt.Errorf("OPENAI_API_KEY is not set")
			}
			sorter := vibesort.New(apiKey, modelFlag, baseURLFlag)
			ctx := cmd.Context()

			var sorted any
			if stringsFlag {
				out, err := sorter.SortStrings(ctx, args)
				if err != nil {
					return err
				}
				sorted = out
			} else {
				items := make([]int, len(args))
				for i, arg := range args {
					n, err := strconv.Atoi(arg)
					if err != nil {
						return fmt.Errorf("item %q is not an integer (use --strings for string inputs)", arg)
					}
					items[i] = n
				}
				out, err := sorter.Sort(ctx, items)
				if err != nil {
					return err
				}
				sorted = out
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(sorted)
		},
	}

	rootCmd.Flags().StringVar(&modelFlag, "model", "gpt-4o-mini", "Model to ask for the ordering")
	rootCmd.Flags().StringVar(&baseURLFlag, "base-url", "https://api.openai.com/v1", "Base URL of the chat-completion API")
	rootCmd.Flags().BoolVar(&stringsFlag, "strings", false, "Treat items as strings instead of integers")

	return rootCmd
}
