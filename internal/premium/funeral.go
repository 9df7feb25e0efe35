package premium

import "sort"

// The funeral-cover schedule is a separate product line with its own
// bracket shape and its own tier-selection rule. It is deliberately not
// unified with the lifestyle RateTable: that one matches cover amounts
// exactly, this one rounds the requested amount up to the nearest
// offered tier.

type FuneralCoverType string

const (
	FuneralSingle   FuneralCoverType = "single"
	FuneralExtended FuneralCoverType = "extended"
)

type funeralBracket string

const (
	funeralBracket18to25 funeralBracket = "18-25"
	funeralBracket26to35 funeralBracket = "26-35"
	funeralBracket36to45 funeralBracket = "36-45"
	funeralBracket46to55 funeralBracket = "46-55"
	funeralBracket56to65 funeralBracket = "56-65"
)

var funeralRates = map[FuneralCoverType]map[int]map[funeralBracket]float64{
	FuneralSingle: {
		5000:  {funeralBracket18to25: 25, funeralBracket26to35: 30, funeralBracket36to45: 40, funeralBracket46to55: 55, funeralBracket56to65: 75},
		10000: {funeralBracket18to25: 45, funeralBracket26to35: 55, funeralBracket36to45: 75, funeralBracket46to55: 105, funeralBracket56to65: 145},
		15000: {funeralBracket18to25: 65, funeralBracket26to35: 80, funeralBracket36to45: 110, funeralBracket46to55: 155, funeralBracket56to65: 215},
		20000: {funeralBracket18to25: 85, funeralBracket26to35: 105, funeralBracket36to45: 145, funeralBracket46to55: 205, funeralBracket56to65: 285},
		30000: {funeralBracket18to25: 125, funeralBracket26to35: 155, funeralBracket36to45: 215, funeralBracket46to55: 305, funeralBracket56to65: 425},
	},
	FuneralExtended: {
		10000: {funeralBracket18to25: 75, funeralBracket26to35: 90, funeralBracket36to45: 120, funeralBracket46to55: 165, funeralBracket56to65: 225},
		20000: {funeralBracket18to25: 140, funeralBracket26to35: 170, funeralBracket36to45: 230, funeralBracket46to55: 320, funeralBracket56to65: 440},
		30000: {funeralBracket18to25: 200, funeralBracket26to35: 245, funeralBracket36to45: 335, funeralBracket46to55: 470, funeralBracket56to65: 650},
		50000: {funeralBracket18to25: 320, funeralBracket26to35: 395, funeralBracket36to45: 545, funeralBracket46to55: 770, funeralBracket56to65: 1070},
	},
}

func funeralBracketFor(age int) funeralBracket {
	switch {
	case age <= 25:
		return funeralBracket18to25
	case age <= 35:
		return funeralBracket26to35
	case age <= 45:
		return funeralBracket36to45
	case age <= 55:
		return funeralBracket46to55
	default:
		return funeralBracket56to65
	}
}

// FuneralResolver prices funeral cover by rounding the requested amount
// up to the closest offered tier.
type FuneralResolver struct{}

func NewFuneralResolver() *FuneralResolver {
	return &FuneralResolver{}
}

// SelectTier picks the smallest offered tier at or above the requested
// amount. A request above every tier falls back to the largest tier.
// ok is false only for an unknown cover type.
func (r *FuneralResolver) SelectTier(coverType FuneralCoverType, requestedAmount int) (int, bool) {
	covers, found := funeralRates[coverType]
	if !found {
		return 0, false
	}

	tiers := make([]int, 0, len(covers))
	for tier := range covers {
		tiers = append(tiers, tier)
	}
	sort.Ints(tiers)

	for _, tier := range tiers {
		if tier >= requestedAmount {
			return tier, true
		}
	}
	return tiers[len(tiers)-1], true
}

// ResolvePremium returns the monthly rate for the tier selected for the
// requested amount, along with the tier itself. Unknown cover types
// yield zero, matching the main resolver's silent-zero contract.
func (r *FuneralResolver) ResolvePremium(coverType FuneralCoverType, age int, requestedAmount int) (float64, int) {
	tier, ok := r.SelectTier(coverType, requestedAmount)
	if !ok {
		return 0, 0
	}

	rate, ok := funeralRates[coverType][tier][funeralBracketFor(age)]
	if !ok {
		return 0, tier
	}
	return rate, tier
}
