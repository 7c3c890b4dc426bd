package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

const table = `ID,Name,Category,City,Address,Phone,Website,Status,Services,Eligibility,Description
food-1,Greater Boston Food Bank,food,Boston,70 S Bay Ave,617-427-5200,gbfb.org,active,"Food Pantry; Groceries",All,Regional food bank
mh-1,Cambridge Health Alliance,mh,Cambridge,1493 Cambridge St,617-665-1000,,active,Counseling,Adults,Mental health services
legal-1,Community Legal Aid,legal,Worcester,,508-752-3718,,active,Tenant Law,Income eligible,Free civil legal help`

func tableFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.csv")
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))
	return path
}

// run executes dirctl against the test table and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--data", tableFile(t), "--seed", "7"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestQuery_Table(t *testing.T) {
	out, err := run(t, "query", "--city", "Boston")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "food-1")
	assert.Contains(t, lines[1], "Food Security")
}

func TestQuery_JSON(t *testing.T) {
	out, err := run(t, "query", "--category", "mh", "--format", "json")
	require.NoError(t, err)

	var got []core.Resource
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "mh-1", got[0].ID)
	assert.Equal(t, core.MentalHealth, got[0].Category)
}

func TestQuery_YAML(t *testing.T) {
	out, err := run(t, "query", "--search", "tenant", "-o", "yaml")
	require.NoError(t, err)

	var got []core.Resource
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "legal-1", got[0].ID)
	assert.Equal(t, core.AddressPlaceholder, got[0].Location.Address)
}

func TestQuery_SeedIsReproducible(t *testing.T) {
	first, err := run(t, "query", "-o", "json")
	require.NoError(t, err)
	second, err := run(t, "query", "-o", "json")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQuery_BadFormat(t *testing.T) {
	_, err := run(t, "query", "--format", "xml")
	assert.ErrorContains(t, err, `unknown format "xml"`)
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "food-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Greater Boston Food Bank")
	assert.Contains(t, out, "Food Pantry; Groceries")
	assert.Contains(t, out, "https://www.google.com/maps/search/?api=1&query=70+S+Bay+Ave%2C+Boston%2C+MA")

	out, err = run(t, "show", "mh-1", "-o", "json")
	require.NoError(t, err)
	var got struct {
		ID   string        `json:"id"`
		Maps core.MapLinks `json:"maps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "mh-1", got.ID)
	assert.NotEmpty(t, got.Maps.Apple)

	_, err = run(t, "show", "nope")
	assert.ErrorIs(t, err, core.ErrResourceNotFound)
}

func TestCitiesAndCategories(t *testing.T) {
	out, err := run(t, "cities")
	require.NoError(t, err)
	assert.Equal(t, "Boston\nCambridge\nWorcester\n", out)

	out, err = run(t, "categories")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(core.Categories()))
	assert.Contains(t, lines[0], "food-security")
	assert.Contains(t, lines[0], "Food Security")
}

func TestBounds(t *testing.T) {
	out, err := run(t, "bounds", "--city", "Boston")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lat "))
	assert.Contains(t, out, "\nlng ")

	out, err = run(t, "bounds", "--city", "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, "no matching resources\n", out)
}

func TestExport(t *testing.T) {
	out, err := run(t, "export", "--city", "Worcester")
	require.NoError(t, err)
	assert.Equal(t,
		"NAME: Community Legal Aid\nPHONE: 508-752-3718\nADDRESS: Varies / Statewide, Worcester\nWEBSITE: N/A\nDESCRIPTION: Free civil legal help\n",
		out)

	out, err = run(t, "export")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"+strings.Repeat("-", 40)+"\n"))

	_, err = run(t, "export", "--city", "Atlantis")
	assert.ErrorIs(t, err, core.ErrNothingToExport)
}

func TestMissingDataFile(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--data", filepath.Join(t.TempDir(), "missing.csv"), "cities"})

	assert.ErrorContains(t, cmd.Execute(), "open data file")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dirctl dev\n", out)
}
