package core

import (
	"time"
	"unicode/utf16"
)

// PreVerifiedIDs are resources vetted by hand before launch.
var PreVerifiedIDs = map[string]bool{
	"housing-metro":     true,
	"food-projectbread": true,
	"mh-988":            true,
}

// DefaultVerificationSources is attached to every newly ingested resource.
var DefaultVerificationSources = []string{"CHW Submitted", "Initial Vetting"}

// Initial trust score range, inclusive.
const (
	MinInitialScore = 60
	MaxInitialScore = 99
)

// VerifiedThreshold is the score at or above which a resource counts as
// verified for the "verified only" filter.
const VerifiedThreshold = 80

// TrustInitializer assigns default trust metadata at ingestion time.
type TrustInitializer struct {
	rnd Rand
	now func() time.Time
}

// NewTrustInitializer returns an initializer using rnd for scores and now
// for the verification date.
func NewTrustInitializer(rnd Rand, now func() time.Time) *TrustInitializer {
	if now == nil {
		now = time.Now
	}
	return &TrustInitializer{rnd: rnd, now: now}
}

// Init returns the trust metrics for a resource id. The status depends
// only on the id; the score is drawn uniformly from [60, 99].
func (t *TrustInitializer) Init(id string) TrustMetrics {
	return TrustMetrics{
		VerificationStatus:  verificationStatusFor(id),
		VerificationSources: append([]string(nil), DefaultVerificationSources...),
		LastVerified:        t.now().Format(time.DateOnly),
		VerificationScore:   MinInitialScore + t.rnd.IntN(MaxInitialScore-MinInitialScore+1),
		ReportCount:         0,
	}
}

func verificationStatusFor(id string) VerificationStatus {
	switch {
	case PreVerifiedIDs[id]:
		return Verified
	case utf16Len(id)%5 == 0:
		return Unverified
	default:
		return Pending
	}
}

// utf16Len counts UTF-16 code units, the length ids have in the browser
// the directory data comes from. It equals len(id) for ASCII ids.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
