package cli

import (
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

// filterFlags are the directory filters shared by query, bounds and export.
type filterFlags struct {
	search       string
	category     string
	city         string
	verifiedOnly bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "match names and services (case-insensitive)")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category value or alias (default: all)")
	cmd.Flags().StringVar(&f.city, "city", "", "exact city name (default: all)")
	cmd.Flags().BoolVar(&f.verifiedOnly, "verified-only", false, "only resources with a trust score of 80 or more")
}

func (f *filterFlags) state() core.QueryState {
	city := f.city
	if city == "" {
		city = core.CityAll
	}
	return core.QueryState{
		SearchText:   f.search,
		Category:     core.ParseCategoryFilter(f.category),
		City:         city,
		VerifiedOnly: f.verifiedOnly,
	}
}
