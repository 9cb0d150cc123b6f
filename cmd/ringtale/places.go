// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ringtale/ringtale/internal/world"
)

// NewPlacesCmd creates the places subcommand.
func NewPlacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "places",
		Short: "List the places of the story",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, p := range world.Places() {
				fmt.Fprintln(cmd.OutOrStdout(), p.String())
			}
		},
	}
}
