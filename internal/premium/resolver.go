package premium

// ClassifyRelationship normalizes a roster relationship to the rate
// class it is priced under. Unknown relationships price as the main
// member.
func ClassifyRelationship(relationship string) RelationshipClass {
	switch relationship {
	case "son", "daughter":
		return ClassChild
	case "mother", "father":
		return ClassParent
	case "spouse":
		return ClassSpouse
	default:
		return ClassMainMember
	}
}

// BracketFor maps an age to the rate bracket for a class. Children and
// parents each have a single bracket; adult ages outside the tabulated
// ranges price as young adults.
func BracketFor(class RelationshipClass, age int) AgeBracket {
	switch class {
	case ClassChild:
		return BracketChild
	case ClassParent:
		return BracketParent
	}
	switch {
	case age >= 18 && age <= 39:
		return BracketYoungAdult
	case age >= 40 && age <= 59:
		return BracketMiddleAdult
	case age >= 60 && age <= 75:
		return BracketSeniorAdult
	}
	return BracketYoungAdult
}

// Resolver resolves monthly premiums against the lifestyle-plan rate
// table by exact cover-amount match.
type Resolver struct {
	table *RateTable
}

func NewResolver(table *RateTable) *Resolver {
	return &Resolver{table: table}
}

// ResolvePremium returns the tabulated rate for the combination, or 0
// when the cover amount is not offered for the class or the bracket has
// no rate. It never fails: 0 is the "not computable" sentinel and
// callers distinguish it from an incomplete row by checking their own
// inputs.
func (r *Resolver) ResolvePremium(relationship string, age int, coverAmount int) float64 {
	class := ClassifyRelationship(relationship)
	bracket := BracketFor(class, age)

	rate, ok := r.table.Lookup(class, coverAmount, bracket)
	if !ok {
		return 0
	}
	return rate
}

// CoverOptions returns the cover amounts selectable for a dependent.
// Empty until both relationship and age are known, so the selector
// stays disabled on a pending row.
func (r *Resolver) CoverOptions(relationship string, age int) []int {
	if relationship == "" || age <= 0 {
		return nil
	}
	return r.table.CoverAmounts(ClassifyRelationship(relationship))
}
