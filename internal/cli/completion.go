package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// matchPrefix returns items from pool that start with prefix
// (case-insensitive). Shell completion wants a strict prefix; date
// suggestions have their own filter in package suggest.
func matchPrefix(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

// completeFrom builds a cobra completion func over a fixed pool.
func completeFrom(pool func() []string) cobra.CompletionFunc {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return matchPrefix(pool(), toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func parseModeNames() []string {
	return []string{"replace", "link", "clean", "time"}
}
