package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/placement-hub/internal/domain/internship"
	"github.com/campus-hub/placement-hub/internal/domain/user"
)

func posting(id, title, major string, level internship.Level) *internship.Internship {
	i := internship.New(id, title, "desc", level, major,
		"2026-03-01", "2026-03-31", "Acme", "REP-1", 2)
	i.Status = internship.StatusApproved
	i.Visible = true
	return i
}

func fixtures() []*internship.Internship {
	a := posting("INT001", "Backend Intern", "CSC", internship.LevelBasic)
	a.ClosingDate = "2026-04-15"

	b := posting("INT002", "analytics intern", "DSAI", internship.LevelAdvanced)
	b.OpeningDate = "2026-02-15"

	c := posting("INT003", "Civil Works Intern", "Mechanical Engineering", internship.LevelBasic)
	c.RepresentativeID = "REP-2"

	d := posting("INT004", "Draft Posting", "CSC", internship.LevelBasic)
	d.Status = internship.StatusPending
	d.Visible = false

	e := posting("INT005", "Hidden Posting", "CSC", internship.LevelBasic)
	e.Visible = false

	return []*internship.Internship{a, b, c, d, e}
}

func staff() *user.User {
	return user.NewStaff("STAFF1", "Grace", "grace@uni.edu", "hash", "Careers")
}

func ids(view []*internship.Internship) []string {
	var out []string
	for _, i := range view {
		out = append(out, i.ID)
	}
	return out
}

func TestFilteredView_StaffSeesEverything(t *testing.T) {
	view := FilteredView(fixtures(), NewFilterSettings(), staff())
	assert.Len(t, view, 5)
}

func TestFilteredView_StudentScoping(t *testing.T) {
	sophomore, err := user.NewStudent("S001", "Alice", "alice@uni.edu", "hash", "Computer Science", 2)
	require.NoError(t, err)

	// Visible+approved, major-compatible, level-allowed: only INT001.
	// INT002 is DSAI and ADVANCED, INT003 is the wrong major, INT004 is
	// not approved, INT005 is hidden.
	view := FilteredView(fixtures(), NewFilterSettings(), sophomore)
	assert.Equal(t, []string{"INT001"}, ids(view))

	senior, err := user.NewStudent("S002", "Bob", "bob@uni.edu", "hash", "Data Science & AI", 4)
	require.NoError(t, err)
	view = FilteredView(fixtures(), NewFilterSettings(), senior)
	assert.Equal(t, []string{"INT002"}, ids(view))
}

func TestFilteredView_RepresentativeSeesOwnOnly(t *testing.T) {
	rep := user.NewRepresentative("REP-1", "Dana", "dana@acme.com", "hash", "Acme", "HR", "Lead", user.AccountApproved)

	view := FilteredView(fixtures(), NewFilterSettings(), rep)
	assert.Equal(t, []string{"INT002", "INT001", "INT004", "INT005"}, ids(view))
}

func TestFilteredView_Filters(t *testing.T) {
	settings := NewFilterSettings()
	status := internship.StatusPending
	settings.Status = &status
	view := FilteredView(fixtures(), settings, staff())
	assert.Equal(t, []string{"INT004"}, ids(view))

	settings = NewFilterSettings()
	settings.Major = "mech"
	view = FilteredView(fixtures(), settings, staff())
	assert.Equal(t, []string{"INT003"}, ids(view))

	settings = NewFilterSettings()
	level := internship.LevelAdvanced
	settings.Level = &level
	view = FilteredView(fixtures(), settings, staff())
	assert.Equal(t, []string{"INT002"}, ids(view))

	settings = NewFilterSettings()
	hidden := false
	settings.Visible = &hidden
	view = FilteredView(fixtures(), settings, staff())
	assert.Equal(t, []string{"INT004", "INT005"}, ids(view))
}

func TestFilteredView_SortKeys(t *testing.T) {
	all := fixtures()

	// Default: by title, case-insensitive.
	view := FilteredView(all, NewFilterSettings(), staff())
	assert.Equal(t, []string{"INT002", "INT001", "INT003", "INT004", "INT005"}, ids(view))

	settings := NewFilterSettings()
	settings.SortBy = SortByOpeningDate
	view = FilteredView(all, settings, staff())
	assert.Equal(t, "INT002", view[0].ID, "the earliest opening date sorts first")

	settings.SortBy = SortByClosingDate
	view = FilteredView(all, settings, staff())
	assert.Equal(t, "INT001", view[len(view)-1].ID, "the latest closing date sorts last")
}

func TestFilteredView_SortIsStable(t *testing.T) {
	a := posting("INT001", "Same Title", "CSC", internship.LevelBasic)
	b := posting("INT002", "same title", "CSC", internship.LevelBasic)

	view := FilteredView([]*internship.Internship{a, b}, NewFilterSettings(), staff())
	assert.Equal(t, []string{"INT001", "INT002"}, ids(view), "equal keys keep store order")
}

func TestFilterSettings_ClearRestoresDefaults(t *testing.T) {
	settings := NewFilterSettings()
	assert.False(t, settings.IsActive())

	status := internship.StatusApproved
	settings.Status = &status
	settings.Major = "csc"
	settings.SortBy = SortByClosingDate
	assert.True(t, settings.IsActive())

	settings.Clear()
	assert.False(t, settings.IsActive())

	// A cleared filter behaves exactly like a fresh one.
	assert.Equal(t, ids(FilteredView(fixtures(), NewFilterSettings(), staff())),
		ids(FilteredView(fixtures(), settings, staff())))
}

func TestFilteredView_DoesNotMutateInput(t *testing.T) {
	all := fixtures()
	before := ids(all)

	settings := NewFilterSettings()
	settings.SortBy = SortByClosingDate
	FilteredView(all, settings, staff())

	assert.Equal(t, before, ids(all))
}
