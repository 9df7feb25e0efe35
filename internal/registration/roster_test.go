package registration

import (
	"testing"
	"time"

	"registration-service/internal/premium"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func newTestRoster(t *testing.T) *Roster {
	t.Helper()
	roster := NewRoster(premium.NewResolver(premium.DefaultRateTable()), nil)
	roster.SetNow(fixedNow)
	return roster
}

func TestRoster_AddCreatesBlankRow(t *testing.T) {
	roster := newTestRoster(t)

	member := roster.Add()

	assert.NotEmpty(t, member.ID)
	assert.Empty(t, member.FirstName)
	assert.Empty(t, member.Relationship)
	assert.Equal(t, 0, member.Age)
	assert.Equal(t, 0.0, member.Premium)
	assert.Len(t, roster.Members(), 1)
}

func TestRoster_UpdateDerivesAgeAndPremium(t *testing.T) {
	roster := newTestRoster(t)
	member := roster.Add()

	// son born 2014-08-20 is 10 on 2025-06-01
	_, err := roster.Update(member.ID, FieldRelationship, "son")
	require.NoError(t, err)
	_, err = roster.Update(member.ID, FieldDateOfBirth, "2014-08-20")
	require.NoError(t, err)
	updated, err := roster.Update(member.ID, FieldCoverAmount, "2000")
	require.NoError(t, err)

	assert.Equal(t, 10, updated.Age)
	assert.Equal(t, 25.0, updated.Premium)
	assert.Equal(t, 25.0, roster.TotalPremium())
}

func TestRoster_PremiumZeroUntilAllInputsPresent(t *testing.T) {
	roster := newTestRoster(t)
	member := roster.Add()

	updated, err := roster.Update(member.ID, FieldRelationship, "spouse")
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Premium, "no premium without age and cover")

	updated, err = roster.Update(member.ID, FieldDateOfBirth, "1980-01-15")
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Age)
	assert.Equal(t, 0.0, updated.Premium, "no premium without cover amount")

	updated, err = roster.Update(member.ID, FieldCoverAmount, "10000")
	require.NoError(t, err)
	assert.Equal(t, 125.0, updated.Premium, "spouse aged 45 in bracket 40-59")
}

func TestRoster_ChangingInputRecomputesPremiumSynchronously(t *testing.T) {
	roster := newTestRoster(t)
	member := roster.Add()

	_, _ = roster.Update(member.ID, FieldRelationship, "spouse")
	_, _ = roster.Update(member.ID, FieldDateOfBirth, "1990-01-01")
	updated, _ := roster.Update(member.ID, FieldCoverAmount, "5000")
	assert.Equal(t, 45.0, updated.Premium)

	// moving the birth date into the senior bracket reprices immediately
	updated, err := roster.Update(member.ID, FieldDateOfBirth, "1960-01-01")
	require.NoError(t, err)
	assert.Equal(t, 65, updated.Age)
	assert.Equal(t, 95.0, updated.Premium)
	assert.Equal(t, 95.0, roster.TotalPremium())
}

func TestRoster_InvalidDateLeavesAgeUnset(t *testing.T) {
	roster := newTestRoster(t)
	member := roster.Add()
	_, _ = roster.Update(member.ID, FieldRelationship, "daughter")
	_, _ = roster.Update(member.ID, FieldCoverAmount, "1000")

	updated, err := roster.Update(member.ID, FieldDateOfBirth, "31/02/2015")
	require.NoError(t, err, "a bad date keeps the row pending, it is not an error")
	assert.Equal(t, 0, updated.Age)
	assert.Equal(t, 0.0, updated.Premium)
}

func TestRoster_RemoveRestoresPriorState(t *testing.T) {
	roster := newTestRoster(t)

	first := roster.Add()
	_, _ = roster.Update(first.ID, FieldRelationship, "son")
	_, _ = roster.Update(first.ID, FieldDateOfBirth, "2014-08-20")
	_, _ = roster.Update(first.ID, FieldCoverAmount, "2000")

	before := append([]Dependent(nil), roster.Members()...)
	beforeTotal := roster.TotalPremium()

	added := roster.Add()
	assert.Len(t, roster.Members(), 2)
	assert.True(t, roster.Remove(added.ID))

	assert.Equal(t, before, roster.Members(), "same members in the same order")
	assert.Equal(t, beforeTotal, roster.TotalPremium())
}

func TestRoster_RemoveUnknownID(t *testing.T) {
	roster := newTestRoster(t)
	roster.Add()

	assert.False(t, roster.Remove("no-such-id"))
	assert.Len(t, roster.Members(), 1)
}

func TestRoster_UpdateUnknownMemberOrField(t *testing.T) {
	roster := newTestRoster(t)
	member := roster.Add()

	_, err := roster.Update("no-such-id", FieldFirstName, "Sipho")
	assert.Error(t, err)

	_, err = roster.Update(member.ID, DependentField("shoe_size"), "9")
	assert.Error(t, err)

	_, err = roster.Update(member.ID, FieldCoverAmount, "lots")
	assert.Error(t, err)
}

func TestRoster_TotalPremiumIsPureSum(t *testing.T) {
	roster := newTestRoster(t)

	son := roster.Add()
	_, _ = roster.Update(son.ID, FieldRelationship, "son")
	_, _ = roster.Update(son.ID, FieldDateOfBirth, "2014-08-20")
	_, _ = roster.Update(son.ID, FieldCoverAmount, "2000")

	mother := roster.Add()
	_, _ = roster.Update(mother.ID, FieldRelationship, "mother")
	_, _ = roster.Update(mother.ID, FieldDateOfBirth, "1965-03-10")
	_, _ = roster.Update(mother.ID, FieldCoverAmount, "10000")

	assert.Equal(t, 25.0+245.0, roster.TotalPremium())

	// recomputing after a single-field change never leaves a stale total
	_, _ = roster.Update(mother.ID, FieldCoverAmount, "5000")
	assert.Equal(t, 25.0+125.0, roster.TotalPremium())
}

func TestRoster_CoverOptionsFollowRelationship(t *testing.T) {
	roster := newTestRoster(t)
	member := roster.Add()

	assert.Empty(t, roster.CoverOptions(member.ID), "disabled until relationship and age known")

	_, _ = roster.Update(member.ID, FieldDateOfBirth, "2014-08-20")
	assert.Empty(t, roster.CoverOptions(member.ID), "still disabled without a relationship")

	_, _ = roster.Update(member.ID, FieldRelationship, "daughter")
	assert.Equal(t, []int{1000, 2000, 3000, 5000}, roster.CoverOptions(member.ID))

	// options are recomputed when the relationship changes, not cached
	_, _ = roster.Update(member.ID, FieldDateOfBirth, "1968-04-01")
	_, _ = roster.Update(member.ID, FieldRelationship, "father")
	assert.Equal(t, []int{5000, 10000, 15000}, roster.CoverOptions(member.ID))
}
