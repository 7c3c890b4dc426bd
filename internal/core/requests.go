package core

import (
	"fmt"
	"strings"
)

// ResourceRequest is a signed-in user's suggestion for a resource the
// directory is missing. Only Name is required.
type ResourceRequest struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Eligibility string `json:"eligibility"`
	About       string `json:"about"`
}

// RequestMail is a resource request addressed to the directory curator.
type RequestMail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}

// NewResourceRequest builds the email asking curator to add req. The
// requester is the actor's email, or their name when no email is known.
// An empty curator leaves the recipient for the mail client to fill in.
func NewResourceRequest(actor *Actor, curator string, req ResourceRequest) (RequestMail, error) {
	if actor == nil || actor.key() == "" {
		return RequestMail{}, ErrUnauthenticated
	}

	req = trimRequest(req)
	if req.Name == "" {
		return RequestMail{}, fmt.Errorf("%w: resource name is required", ErrBadRequest)
	}

	subject := "New Resource Request: " + req.Name
	body := "Please add this resource:\n\n" +
		"Name: " + req.Name + "\n" +
		"Website: " + req.Website + "\n" +
		"Phone: " + req.Phone + "\n" +
		"Address: " + req.Address + "\n" +
		"Eligibility: " + req.Eligibility + "\n" +
		"About: " + req.About + "\n\n" +
		"Requested by: " + actor.key()

	curator = strings.TrimSpace(curator)
	return RequestMail{
		To:      curator,
		Subject: subject,
		Body:    body,
		Mailto:  mailto(curator, subject, body),
	}, nil
}

func trimRequest(r ResourceRequest) ResourceRequest {
	for _, f := range []*string{&r.Name, &r.Website, &r.Phone, &r.Address, &r.Eligibility, &r.About} {
		*f = strings.TrimSpace(*f)
	}
	return r
}
