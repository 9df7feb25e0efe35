package premium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectTier_ExactMatch(t *testing.T) {
	resolver := NewFuneralResolver()

	tier, ok := resolver.SelectTier(FuneralExtended, 20000)
	assert.True(t, ok)
	assert.Equal(t, 20000, tier)
}

func TestSelectTier_RoundsUpToNextTier(t *testing.T) {
	resolver := NewFuneralResolver()

	// extended offers no 40000 tier: the smallest tier at or above the
	// request is 50000, never the 30000 below it
	tier, ok := resolver.SelectTier(FuneralExtended, 40000)
	assert.True(t, ok)
	assert.Equal(t, 50000, tier)

	tier, ok = resolver.SelectTier(FuneralSingle, 12500)
	assert.True(t, ok)
	assert.Equal(t, 15000, tier)
}

func TestSelectTier_RequestAboveAllTiersFallsBackToLargest(t *testing.T) {
	resolver := NewFuneralResolver()

	tier, ok := resolver.SelectTier(FuneralSingle, 100000)
	assert.True(t, ok)
	assert.Equal(t, 30000, tier)

	tier, ok = resolver.SelectTier(FuneralExtended, 75000)
	assert.True(t, ok)
	assert.Equal(t, 50000, tier)
}

func TestSelectTier_UnknownCoverType(t *testing.T) {
	resolver := NewFuneralResolver()

	_, ok := resolver.SelectTier(FuneralCoverType("family"), 10000)
	assert.False(t, ok)
}

func TestFuneralResolvePremium(t *testing.T) {
	resolver := NewFuneralResolver()

	rate, tier := resolver.ResolvePremium(FuneralExtended, 40, 40000)
	assert.Equal(t, 50000, tier)
	assert.Equal(t, 545.0, rate)

	rate, tier = resolver.ResolvePremium(FuneralSingle, 22, 5000)
	assert.Equal(t, 5000, tier)
	assert.Equal(t, 25.0, rate)
}

func TestFuneralResolvePremium_BracketClamping(t *testing.T) {
	resolver := NewFuneralResolver()

	// under the youngest bracket prices as 18-25, over the oldest as 56-65
	young, _ := resolver.ResolvePremium(FuneralSingle, 17, 10000)
	assert.Equal(t, 45.0, young)

	old, _ := resolver.ResolvePremium(FuneralSingle, 70, 10000)
	assert.Equal(t, 145.0, old)
}

func TestFuneralResolvePremium_UnknownTypeYieldsZero(t *testing.T) {
	resolver := NewFuneralResolver()

	rate, tier := resolver.ResolvePremium(FuneralCoverType("group"), 30, 10000)
	assert.Equal(t, 0.0, rate)
	assert.Equal(t, 0, tier)
}
