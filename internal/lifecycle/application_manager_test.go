package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/campus-hub/placement-hub/internal/domain/application"
	"github.com/campus-hub/placement-hub/internal/domain/internship"
	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/internal/domain/user"
)

func alice() user.StudentActor {
	return user.StudentActor{ID: "S001", Name: "Alice", Major: "Computer Science", Year: 2}
}

func TestApply_HappyPath(t *testing.T) {
	apps := &memApplications{}
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{openPosting("INT001", 2)}}, apps)

	created, err := am.Apply(context.Background(), alice(), "INT001")
	require.NoError(t, err)

	assert.Equal(t, "APP001", created.ID)
	assert.Equal(t, app.StatusPending, created.Status)
	assert.Equal(t, "Alice", created.StudentName)
	assert.Equal(t, "Computer Science", created.StudentMajor)
	assert.Equal(t, 2, created.StudentYear)
	assert.Equal(t, testToday, created.AppliedDate)
	assert.Equal(t, 1, apps.persists)
}

func TestApply_UnknownInternship(t *testing.T) {
	_, am := newManagers(t, &memInternships{}, &memApplications{})

	_, err := am.Apply(context.Background(), alice(), "INT999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestApply_AcceptedOfferLocksOut(t *testing.T) {
	accepted := app.New("APP001", "S001", "Alice", "Computer Science", 2, "INT002", testToday)
	accepted.Status = app.StatusAccepted

	_, am := newManagers(t,
		&memInternships{items: []*internship.Internship{openPosting("INT001", 2)}},
		&memApplications{items: []*app.Application{accepted}})

	_, err := am.Apply(context.Background(), alice(), "INT001")
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestApply_PostingMustBeOpen(t *testing.T) {
	hidden := openPosting("INT001", 2)
	hidden.Visible = false
	pending := openPosting("INT002", 2)
	pending.Status = internship.StatusPending

	_, am := newManagers(t, &memInternships{items: []*internship.Internship{hidden, pending}}, &memApplications{})
	ctx := context.Background()

	_, err := am.Apply(ctx, alice(), "INT001")
	assert.ErrorIs(t, err, shared.ErrInvalidState)

	_, err = am.Apply(ctx, alice(), "INT002")
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestApply_ActiveApplicationCap(t *testing.T) {
	var postings []*internship.Internship
	for _, id := range []string{"INT001", "INT002", "INT003", "INT004"} {
		postings = append(postings, openPosting(id, 2))
	}
	_, am := newManagers(t, &memInternships{items: postings}, &memApplications{})
	ctx := context.Background()

	for _, id := range []string{"INT001", "INT002", "INT003"} {
		_, err := am.Apply(ctx, alice(), id)
		require.NoError(t, err)
	}

	_, err := am.Apply(ctx, alice(), "INT004")
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
}

func TestApply_TerminalApplicationsDoNotCountAgainstCap(t *testing.T) {
	var postings []*internship.Internship
	for _, id := range []string{"INT001", "INT002", "INT003", "INT004"} {
		postings = append(postings, openPosting(id, 2))
	}
	apps := &memApplications{}
	for n, id := range []string{"INT001", "INT002", "INT003"} {
		a := app.New("APP00"+string(rune('1'+n)), "S001", "Alice", "Computer Science", 2, id, testToday)
		a.Status = app.StatusWithdrawn
		apps.items = append(apps.items, a)
	}
	_, am := newManagers(t, &memInternships{items: postings}, apps)

	_, err := am.Apply(context.Background(), alice(), "INT004")
	assert.NoError(t, err)
}

func TestApply_DateWindowInclusive(t *testing.T) {
	opensToday := openPosting("INT001", 2)
	opensToday.OpeningDate, opensToday.ClosingDate = testToday, "2026-03-31"
	closesToday := openPosting("INT002", 2)
	closesToday.OpeningDate, closesToday.ClosingDate = "2026-03-01", testToday
	notYetOpen := openPosting("INT003", 2)
	notYetOpen.OpeningDate, notYetOpen.ClosingDate = "2026-03-16", "2026-03-31"
	alreadyClosed := openPosting("INT004", 2)
	alreadyClosed.OpeningDate, alreadyClosed.ClosingDate = "2026-03-01", "2026-03-14"

	_, am := newManagers(t, &memInternships{items: []*internship.Internship{opensToday, closesToday, notYetOpen, alreadyClosed}}, &memApplications{})
	ctx := context.Background()

	_, err := am.Apply(ctx, alice(), "INT001")
	assert.NoError(t, err)
	_, err = am.Apply(ctx, alice(), "INT002")
	assert.NoError(t, err)

	_, err = am.Apply(ctx, alice(), "INT003")
	assert.ErrorIs(t, err, shared.ErrDateWindowViolation)
	_, err = am.Apply(ctx, alice(), "INT004")
	assert.ErrorIs(t, err, shared.ErrDateWindowViolation)
}

func TestApply_MajorMismatch(t *testing.T) {
	mech := openPosting("INT001", 2)
	mech.PreferredMajor = "Mechanical Engineering"

	_, am := newManagers(t, &memInternships{items: []*internship.Internship{mech}}, &memApplications{})

	_, err := am.Apply(context.Background(), alice(), "INT001")
	assert.ErrorIs(t, err, shared.ErrEligibility)
}

func TestApply_LevelRestrictedForJuniorYears(t *testing.T) {
	advanced := openPosting("INT001", 2)
	advanced.Level = internship.LevelAdvanced

	_, am := newManagers(t, &memInternships{items: []*internship.Internship{advanced}}, &memApplications{})
	ctx := context.Background()

	_, err := am.Apply(ctx, alice(), "INT001")
	assert.ErrorIs(t, err, shared.ErrEligibility)

	senior := alice()
	senior.Year = 3
	_, err = am.Apply(ctx, senior, "INT001")
	assert.NoError(t, err)
}

func TestApply_NoRemainingSlots(t *testing.T) {
	full := openPosting("INT001", 1)
	full.SlotsLeft = 0

	_, am := newManagers(t, &memInternships{items: []*internship.Internship{full}}, &memApplications{})

	_, err := am.Apply(context.Background(), alice(), "INT001")
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
}

func TestApply_DuplicateApplication(t *testing.T) {
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{openPosting("INT001", 2)}}, &memApplications{})
	ctx := context.Background()

	_, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)

	_, err = am.Apply(ctx, alice(), "INT001")
	assert.ErrorIs(t, err, shared.ErrDuplicateEntry)
}

func TestApply_RuleOrderMajorBeatsSlots(t *testing.T) {
	// Both violations present: the major rule comes first, so its error wins.
	full := openPosting("INT001", 1)
	full.PreferredMajor = "Mechanical Engineering"
	full.SlotsLeft = 0

	_, am := newManagers(t, &memInternships{items: []*internship.Internship{full}}, &memApplications{})

	_, err := am.Apply(context.Background(), alice(), "INT001")
	assert.ErrorIs(t, err, shared.ErrEligibility)
}

func TestApproveApplication_ConsumesSlot(t *testing.T) {
	posting := openPosting("INT001", 1)
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{posting}}, &memApplications{})
	ctx := context.Background()

	created, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)

	require.NoError(t, am.ApproveApplication(ctx, created.ID))
	assert.Equal(t, app.StatusSuccessful, created.Status)
	assert.Equal(t, 0, posting.SlotsLeft)
}

func TestApproveApplication_RecheckSlotsAtDecisionTime(t *testing.T) {
	posting := openPosting("INT001", 1)
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{posting}}, &memApplications{})
	ctx := context.Background()

	created, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)

	// Another decision consumed the last slot while this one waited.
	posting.SlotsLeft = 0

	err = am.ApproveApplication(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
	assert.Equal(t, app.StatusPending, created.Status, "the application is untouched when the posting is full")
}

func TestRejectApplication(t *testing.T) {
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{openPosting("INT001", 2)}}, &memApplications{})
	ctx := context.Background()

	created, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)

	require.NoError(t, am.RejectApplication(ctx, created.ID))
	assert.Equal(t, app.StatusUnsuccessful, created.Status)

	// Terminal: no further decisions.
	assert.ErrorIs(t, am.RejectApplication(ctx, created.ID), shared.ErrStateTransition)
}

func TestAcceptOffer_CascadesWithdrawal(t *testing.T) {
	first := openPosting("INT001", 2)
	second := openPosting("INT002", 2)
	third := openPosting("INT003", 2)
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{first, second, third}}, &memApplications{})
	ctx := context.Background()

	a1, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)
	a2, err := am.Apply(ctx, alice(), "INT002")
	require.NoError(t, err)
	a3, err := am.Apply(ctx, alice(), "INT003")
	require.NoError(t, err)

	require.NoError(t, am.ApproveApplication(ctx, a1.ID))
	require.NoError(t, am.RejectApplication(ctx, a3.ID))

	require.NoError(t, am.AcceptOffer(ctx, "S001", a1.ID))

	assert.Equal(t, app.StatusAccepted, a1.Status)
	assert.Equal(t, app.StatusWithdrawn, a2.Status, "other active applications are cascaded to withdrawn")
	assert.Equal(t, app.StatusUnsuccessful, a3.Status, "terminal applications are left alone")
	assert.Equal(t, 0, first.SlotsLeft, "acceptance consumes a second slot on top of the approval")
}

func TestAcceptOffer_Guards(t *testing.T) {
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{openPosting("INT001", 2)}}, &memApplications{})
	ctx := context.Background()

	created, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)

	err = am.AcceptOffer(ctx, "S002", created.ID)
	assert.ErrorIs(t, err, shared.ErrForbidden)

	// A pending application is not an offer yet.
	err = am.AcceptOffer(ctx, "S001", created.ID)
	assert.ErrorIs(t, err, shared.ErrStateTransition)
}

func TestWithdraw_RequestFlow(t *testing.T) {
	posting := openPosting("INT001", 2)
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{posting}}, &memApplications{})
	ctx := context.Background()

	created, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)

	err = am.Withdraw(ctx, "S002", created.ID)
	assert.ErrorIs(t, err, shared.ErrForbidden)

	require.NoError(t, am.Withdraw(ctx, "S001", created.ID))
	assert.Equal(t, app.StatusWithdrawalPending, created.Status)

	// Filing twice is invalid: the application is no longer pending.
	err = am.Withdraw(ctx, "S001", created.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestWithdrawalDecisions(t *testing.T) {
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{openPosting("INT001", 2), openPosting("INT002", 2)}}, &memApplications{})
	ctx := context.Background()

	a1, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)
	a2, err := am.Apply(ctx, alice(), "INT002")
	require.NoError(t, err)

	require.NoError(t, am.Withdraw(ctx, "S001", a1.ID))
	require.NoError(t, am.Withdraw(ctx, "S001", a2.ID))

	require.NoError(t, am.ApproveWithdrawal(ctx, a1.ID))
	assert.Equal(t, app.StatusWithdrawn, a1.Status)

	require.NoError(t, am.RejectWithdrawal(ctx, a2.ID))
	assert.Equal(t, app.StatusPending, a2.Status, "a rejected request returns the application to pending")

	// Decisions only apply to filed requests.
	assert.ErrorIs(t, am.ApproveWithdrawal(ctx, a2.ID), shared.ErrInvalidState)
}

func TestRepresentativeQueries(t *testing.T) {
	mine := openPosting("INT001", 2)
	other := openPosting("INT002", 2)
	other.RepresentativeID = "REP-2"
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{mine, other}}, &memApplications{})
	ctx := context.Background()

	a1, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)
	bob := user.StudentActor{ID: "S002", Name: "Bob", Major: "CSC", Year: 4}
	a2, err := am.Apply(ctx, bob, "INT001")
	require.NoError(t, err)
	_, err = am.Apply(ctx, bob, "INT002")
	require.NoError(t, err)

	require.NoError(t, am.ApproveApplication(ctx, a1.ID))

	all, err := am.ForRepresentative(ctx, "REP-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := am.PendingForRepresentative(ctx, "REP-1")
	require.NoError(t, err)
	assert.Equal(t, []*app.Application{a2}, pending)
}

func TestStudentQueries(t *testing.T) {
	_, am := newManagers(t, &memInternships{items: []*internship.Internship{openPosting("INT001", 2), openPosting("INT002", 2)}}, &memApplications{})
	ctx := context.Background()

	a1, err := am.Apply(ctx, alice(), "INT001")
	require.NoError(t, err)
	a2, err := am.Apply(ctx, alice(), "INT002")
	require.NoError(t, err)

	ok, err := am.HasSuccessfulOffer(ctx, "S001")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, am.ApproveApplication(ctx, a1.ID))
	ok, err = am.HasSuccessfulOffer(ctx, "S001")
	require.NoError(t, err)
	assert.True(t, ok)

	withdrawable, err := am.Withdrawable(ctx, "S001")
	require.NoError(t, err)
	assert.Equal(t, []*app.Application{a2}, withdrawable, "only pending applications are withdrawable")

	require.NoError(t, am.Withdraw(ctx, "S001", a2.ID))
	requests, err := am.PendingWithdrawals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*app.Application{a2}, requests)
}
