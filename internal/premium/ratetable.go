package premium

import "sort"

type RelationshipClass string

const (
	ClassMainMember RelationshipClass = "main_member"
	ClassSpouse     RelationshipClass = "spouse"
	ClassChild      RelationshipClass = "child"
	ClassParent     RelationshipClass = "parent"
)

type AgeBracket string

const (
	BracketChild       AgeBracket = "0-17"
	BracketParent      AgeBracket = "50-75"
	BracketYoungAdult  AgeBracket = "18-39"
	BracketMiddleAdult AgeBracket = "40-59"
	BracketSeniorAdult AgeBracket = "60-75"
)

// RateTable maps (class, cover amount, age bracket) to a monthly
// premium. Immutable after construction; lookups on absent entries
// report ok=false rather than a zero that is indistinguishable from a
// tabulated zero.
type RateTable struct {
	rates map[RelationshipClass]map[int]map[AgeBracket]float64
}

func (t *RateTable) Lookup(class RelationshipClass, coverAmount int, bracket AgeBracket) (float64, bool) {
	covers, ok := t.rates[class]
	if !ok {
		return 0, false
	}
	brackets, ok := covers[coverAmount]
	if !ok {
		return 0, false
	}
	rate, ok := brackets[bracket]
	return rate, ok
}

// CoverAmounts returns the cover tiers offered for a class, ascending.
func (t *RateTable) CoverAmounts(class RelationshipClass) []int {
	covers, ok := t.rates[class]
	if !ok {
		return nil
	}
	amounts := make([]int, 0, len(covers))
	for amount := range covers {
		amounts = append(amounts, amount)
	}
	sort.Ints(amounts)
	return amounts
}

var adultRates = map[int]map[AgeBracket]float64{
	5000:  {BracketYoungAdult: 45, BracketMiddleAdult: 65, BracketSeniorAdult: 95},
	10000: {BracketYoungAdult: 85, BracketMiddleAdult: 125, BracketSeniorAdult: 185},
	20000: {BracketYoungAdult: 165, BracketMiddleAdult: 245, BracketSeniorAdult: 365},
	30000: {BracketYoungAdult: 245, BracketMiddleAdult: 365, BracketSeniorAdult: 545},
	50000: {BracketYoungAdult: 405, BracketMiddleAdult: 605, BracketSeniorAdult: 905},
}

// DefaultRateTable returns the lifestyle-plan rate schedule. Main
// members and spouses share one adult schedule; children and parents
// each have a single bracket.
func DefaultRateTable() *RateTable {
	return &RateTable{
		rates: map[RelationshipClass]map[int]map[AgeBracket]float64{
			ClassMainMember: adultRates,
			ClassSpouse:     adultRates,
			ClassChild: {
				1000: {BracketChild: 15},
				2000: {BracketChild: 25},
				3000: {BracketChild: 35},
				5000: {BracketChild: 55},
			},
			ClassParent: {
				5000:  {BracketParent: 125},
				10000: {BracketParent: 245},
				15000: {BracketParent: 365},
			},
		},
	}
}
