package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// exportSeparator sits between resources in a text export. Every block
// ends in its own newline, so the dash line has a blank line either side.
const exportSeparator = "\n----------------------------------------\n\n"

const notAvailable = "N/A"

// ExportText renders resources as a plain-text list.
func ExportText(resources []Resource) (string, error) {
	if len(resources) == 0 {
		return "", ErrNothingToExport
	}

	blocks := make([]string, len(resources))
	for i, r := range resources {
		blocks[i] = fmt.Sprintf(
			"NAME: %s\nPHONE: %s\nADDRESS: %s, %s\nWEBSITE: %s\nDESCRIPTION: %s\n",
			r.Name,
			orNA(r.Contact.Phone),
			r.Location.Address, r.Location.City,
			orNA(r.Contact.Website),
			r.Description,
		)
	}
	return strings.Join(blocks, exportSeparator), nil
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return *s
}

// ExportFileName is the download name for an export made at now.
func ExportFileName(now time.Time) string {
	return "Saved_Resources_" + now.Format(time.DateOnly) + ".txt"
}

// ShareLinks are the ways a resource can be passed on.
type ShareLinks struct {
	URL    string `json:"url"`
	Mailto string `json:"mailto"`
}

// NewShareLinks builds the public link and a prefilled email for r.
func NewShareLinks(baseURL string, r Resource) ShareLinks {
	link := strings.TrimRight(baseURL, "/") + "/resource/" + url.PathEscape(r.ID)

	subject := "Community Resource: " + r.Name
	body := fmt.Sprintf("Check out this resource: %s\n\n%s\n\nLink: %s", r.Name, r.Description, link)

	return ShareLinks{
		URL:    link,
		Mailto: mailto("", subject, body),
	}
}

// mailto builds a mailto link. Subject and body are escaped as URI
// components so '&', '=' and '+' in names survive.
func mailto(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + escapeComponent(subject) + "&body=" + escapeComponent(body)
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MapLinks open a resource's address in a map app.
type MapLinks struct {
	Google string `json:"google"`
	Apple  string `json:"apple"`
}

// NewMapLinks searches for "<address>, <city>, MA".
func NewMapLinks(r Resource) MapLinks {
	q := url.QueryEscape(fmt.Sprintf("%s, %s, MA", r.Location.Address, r.Location.City))
	return MapLinks{
		Google: "https://www.google.com/maps/search/?api=1&query=" + q,
		Apple:  "https://maps.apple.com/?q=" + q,
	}
}
