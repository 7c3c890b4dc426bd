package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		format  string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List resources matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, FormatTable, FormatJSON, FormatYAML); err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}

			hits := core.Filter(store, filters.state())
			a.log().Debug("query", "matches", len(hits))

			if format == FormatTable {
				return writeTable(cmd.OutOrStdout(), hits)
			}
			return encode(cmd.OutOrStdout(), format, hits)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", FormatTable, "output format: table, json or yaml")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one resource with its share and map links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, FormatTable, FormatJSON, FormatYAML); err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}

			r, ok := store.Get(args[0])
			if !ok {
				return fmt.Errorf("resource %q: %w", args[0], core.ErrResourceNotFound)
			}

			if format == FormatTable {
				if err := writeDetail(cmd.OutOrStdout(), r); err != nil {
					return err
				}
				maps := core.NewMapLinks(r)
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nGoogle Maps: %s\nApple Maps:  %s\n", maps.Google, maps.Apple)
				return err
			}
			return encode(cmd.OutOrStdout(), format, struct {
				core.Resource `yaml:",inline"`
				Maps          core.MapLinks `json:"maps" yaml:"maps"`
			}{r, core.NewMapLinks(r)})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", FormatTable, "output format: table, json or yaml")
	return cmd
}

func newCitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the cities in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			for _, c := range store.Cities() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List category values and labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range core.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", c, c.Label())
			}
			return nil
		},
	}
}

func newBoundsCmd(a *app) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Print the padded map bounds of the matching resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}

			b := core.ComputeBounds(core.Filter(store, filters.state()))
			if b == nil {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no matching resources")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "lat %.4f .. %.4f\nlng %.4f .. %.4f\n",
				b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
			return err
		},
	}

	filters.register(cmd)
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		format  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export matching resources for sharing",
		Long: `Export writes the matching resources to stdout. The text format is the
same plain-text list the web directory downloads for a saved list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, FormatText, FormatJSON, FormatYAML); err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}

			hits := core.Filter(store, filters.state())
			if format != FormatText {
				return encode(cmd.OutOrStdout(), format, hits)
			}

			text, err := core.ExportText(hits)
			if err != nil {
				return err
			}
			a.log().Debug("export", "resources", len(hits), "file", core.ExportFileName(time.Now()))
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", FormatText, "output format: text, json or yaml")
	return cmd
}
