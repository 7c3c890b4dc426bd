package core

import (
	"strings"
	"time"
)

// fakeRand returns scripted values; each sequence cycles when exhausted.
type fakeRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (f *fakeRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0
	}
	v := f.floats[f.fi%len(f.floats)]
	f.fi++
	return v
}

func (f *fakeRand) IntN(n int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[f.ii%len(f.ints)]
	f.ii++
	if v >= n {
		return n - 1
	}
	return v
}

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

const fixtureHeader = "ID,Name,Category,City,Address,Phone,Website,Status,Services,Eligibility,Description"

// fixtureRows produce, in order, resources with initial scores 60+ints[i].
var fixtureRows = []string{
	`food-1,Greater Boston Food Bank,food,Boston,70 S Bay Ave,617-427-5200,gbfb.org,active,"Food Pantry; Groceries",All,Regional food bank`,
	`housing-metro,Metro Housing|Boston,housing,Boston,1411 Tremont St,,metrohousingboston.org,active,Section 8;RAFT,Low income,Housing help`,
	`mh-1,Cambridge Health Alliance,mh,Cambridge,1493 Cambridge St,617-665-1000,,Seasonal,"Counseling; Crisis Care",Adults,Mental health services`,
	`legal-1,Community Legal Aid,legal,Worcester,,508-752-3718,communitylegal.org,closed,Tenant Law,Income eligible,Free civil legal help`,
	`odd-1,Mystery Org,underwater-basket,Atlantis,1 Sea Rd,,,unknown,,,Somewhere`,
}

func fixtureCSV(extra ...string) string {
	lines := append([]string{fixtureHeader}, fixtureRows...)
	lines = append(lines, extra...)
	return strings.Join(lines, "\n")
}

// fixtureStore builds the fixture with scores 95, 70, 85, 60, 79.
func fixtureStore() *Store {
	return Build(fixtureCSV(), BuildOptions{
		Rand: &fakeRand{floats: []float64{0.5}, ints: []int{35, 10, 25, 0, 19}},
		Now:  clock,
	})
}

func strPtr(s string) *string { return &s }
