package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-screener/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the built-in job profiles",
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(_ *cobra.Command, _ []string) error {
	for _, id := range profile.IDs() {
		p, ok := profile.Lookup(id)
		if !ok {
			continue
		}
		fmt.Printf("%s\n", p.ID)
		fmt.Printf("  keywords: %s\n", strings.Join(p.Keywords, ", "))
		fmt.Printf("  required sections: %s\n", strings.Join(p.RequiredSections, ", "))
	}
	return nil
}
