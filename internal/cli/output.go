package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatText  = "text"
)

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want %s)", format, strings.Join(allowed, ", "))
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("cannot encode as %q", format)
	}
}

// writeTable prints one resource per line.
func writeTable(w io.Writer, resources []core.Resource) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tCITY\tSTATUS\tTRUST")
	for _, r := range resources {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			r.ID, r.Name, r.Category.Label(), r.Location.City, r.Status, r.Trust.VerificationScore)
	}
	return tw.Flush()
}

// writeDetail prints every field of one resource.
func writeDetail(w io.Writer, r core.Resource) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"ID", r.ID},
		{"Name", r.Name},
		{"Category", r.Category.Label()},
		{"Status", string(r.Status)},
		{"Address", r.Location.Address + ", " + r.Location.City},
		{"Phone", deref(r.Contact.Phone)},
		{"Website", deref(r.Contact.Website)},
		{"Hours", r.Hours},
		{"Services", strings.Join(r.Services, "; ")},
		{"Eligibility", strings.Join(r.Eligibility, "; ")},
		{"Trust", fmt.Sprintf("%d (%s, checked %s)", r.Trust.VerificationScore, r.Trust.VerificationStatus, r.Trust.LastVerified)},
		{"Description", r.Description},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
