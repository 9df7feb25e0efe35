package premium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// RELATIONSHIP NORMALIZATION
// ============================================================================

func TestClassifyRelationship(t *testing.T) {
	tests := []struct {
		relationship string
		expected     RelationshipClass
	}{
		{"son", ClassChild},
		{"daughter", ClassChild},
		{"mother", ClassParent},
		{"father", ClassParent},
		{"spouse", ClassSpouse},
		{"main_member", ClassMainMember},
		{"cousin", ClassMainMember},
		{"", ClassMainMember},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyRelationship(tt.relationship), "relationship %q", tt.relationship)
	}
}

func TestBracketFor_AdultBrackets(t *testing.T) {
	assert.Equal(t, BracketYoungAdult, BracketFor(ClassMainMember, 18))
	assert.Equal(t, BracketYoungAdult, BracketFor(ClassMainMember, 39))
	assert.Equal(t, BracketMiddleAdult, BracketFor(ClassMainMember, 40))
	assert.Equal(t, BracketMiddleAdult, BracketFor(ClassSpouse, 59))
	assert.Equal(t, BracketSeniorAdult, BracketFor(ClassSpouse, 60))
	assert.Equal(t, BracketSeniorAdult, BracketFor(ClassMainMember, 75))
}

func TestBracketFor_OutsideAdultRangeDefaultsToYoungest(t *testing.T) {
	assert.Equal(t, BracketYoungAdult, BracketFor(ClassMainMember, 17))
	assert.Equal(t, BracketYoungAdult, BracketFor(ClassSpouse, 0))
	assert.Equal(t, BracketYoungAdult, BracketFor(ClassSpouse, 80))
}

func TestResolvePremium_Over75PricesAsYoungAdult(t *testing.T) {
	resolver := NewResolver(DefaultRateTable())

	assert.Equal(t, 45.0, resolver.ResolvePremium("spouse", 80, 5000))
}

func TestBracketFor_SingleBracketClasses(t *testing.T) {
	assert.Equal(t, BracketChild, BracketFor(ClassChild, 3))
	assert.Equal(t, BracketChild, BracketFor(ClassChild, 17))
	assert.Equal(t, BracketParent, BracketFor(ClassParent, 52))
	assert.Equal(t, BracketParent, BracketFor(ClassParent, 75))
}

// ============================================================================
// PREMIUM RESOLUTION
// ============================================================================

func TestResolvePremium_ChildExactMatch(t *testing.T) {
	resolver := NewResolver(DefaultRateTable())

	// son aged 10 with R2,000 cover prices as child, bracket 0-17
	assert.Equal(t, 25.0, resolver.ResolvePremium("son", 10, 2000))
}

func TestResolvePremium_MainMemberMiddleBracket(t *testing.T) {
	resolver := NewResolver(DefaultRateTable())

	assert.Equal(t, 125.0, resolver.ResolvePremium("main_member", 45, 10000))
}

func TestResolvePremium_TabulatedValues(t *testing.T) {
	resolver := NewResolver(DefaultRateTable())

	tests := []struct {
		relationship string
		age          int
		coverAmount  int
		expected     float64
	}{
		{"spouse", 25, 5000, 45},
		{"spouse", 62, 50000, 905},
		{"daughter", 5, 1000, 15},
		{"son", 16, 5000, 55},
		{"mother", 55, 5000, 125},
		{"father", 70, 15000, 365},
		{"main_member", 30, 20000, 165},
		{"main_member", 60, 30000, 545},
	}

	for _, tt := range tests {
		got := resolver.ResolvePremium(tt.relationship, tt.age, tt.coverAmount)
		assert.Equal(t, tt.expected, got, "%s/%d/%d", tt.relationship, tt.age, tt.coverAmount)
	}
}

func TestResolvePremium_AbsentCombinationsYieldZero(t *testing.T) {
	resolver := NewResolver(DefaultRateTable())

	// cover amount not offered for the class
	assert.Equal(t, 0.0, resolver.ResolvePremium("son", 10, 10000))
	assert.Equal(t, 0.0, resolver.ResolvePremium("mother", 55, 20000))
	// cover amount that exists for no class
	assert.Equal(t, 0.0, resolver.ResolvePremium("main_member", 30, 7777))
}

func TestCoverOptions(t *testing.T) {
	resolver := NewResolver(DefaultRateTable())

	assert.Equal(t, []int{1000, 2000, 3000, 5000}, resolver.CoverOptions("son", 10))
	assert.Equal(t, []int{5000, 10000, 15000}, resolver.CoverOptions("father", 60))
	assert.Equal(t, []int{5000, 10000, 20000, 30000, 50000}, resolver.CoverOptions("spouse", 30))
}

func TestCoverOptions_EmptyUntilInputsKnown(t *testing.T) {
	resolver := NewResolver(DefaultRateTable())

	assert.Empty(t, resolver.CoverOptions("", 30), "no options without a relationship")
	assert.Empty(t, resolver.CoverOptions("spouse", 0), "no options without an age")
}

func TestRateTable_LookupDistinguishesAbsent(t *testing.T) {
	table := DefaultRateTable()

	rate, ok := table.Lookup(ClassChild, 2000, BracketChild)
	assert.True(t, ok)
	assert.Equal(t, 25.0, rate)

	_, ok = table.Lookup(ClassChild, 2000, BracketParent)
	assert.False(t, ok)

	_, ok = table.Lookup(ClassParent, 99999, BracketParent)
	assert.False(t, ok)
}
