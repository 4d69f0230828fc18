package main

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/lipi"
	"github.com/spf13/cobra"
)

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the supported encoding schemes",
		Run: func(cmd *cobra.Command, args []string) {
			type entry struct {
				Name string `json:"name"`
				Kind string `json:"kind"`
			}
			var entries []entry
			for _, s := range lipi.Schemes() {
				kind := "roman"
				if s.IsBrahmic() {
					kind = "brahmic"
				}
				entries = append(entries, entry{Name: s.String(), Kind: kind})
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(entries)
				return
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", e.Name, e.Kind)
			}
		},
	}
}
