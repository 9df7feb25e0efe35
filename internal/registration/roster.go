package registration

import (
	"fmt"
	"strconv"
	"time"

	"registration-service/internal/premium"

	"github.com/google/uuid"
)

// Dependent is one family member row on the registration form. Age and
// Premium are derived and recomputed on every relevant change; they are
// never stored independently of their inputs within a session.
type Dependent struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	DateOfBirth  string  `json:"date_of_birth"` // YYYY-MM-DD, blank = unset
	Age          int     `json:"age"`           // 0 = unset
	Relationship string  `json:"relationship"`
	CoverAmount  int     `json:"cover_amount"` // 0 = unset
	Premium      float64 `json:"premium"`
}

type DependentField string

const (
	FieldFirstName    DependentField = "first_name"
	FieldLastName     DependentField = "last_name"
	FieldDateOfBirth  DependentField = "date_of_birth"
	FieldRelationship DependentField = "relationship"
	FieldCoverAmount  DependentField = "cover_amount"
)

// PremiumResolver is the pricing capability the roster depends on.
type PremiumResolver interface {
	ResolvePremium(relationship string, age int, coverAmount int) float64
	CoverOptions(relationship string, age int) []int
}

// Roster is the ordered, mutable collection of dependents. Every
// mutation re-derives age and premium synchronously, so no stale
// derived value is ever observable.
type Roster struct {
	resolver PremiumResolver
	members  []Dependent
	now      func() time.Time
}

func NewRoster(resolver PremiumResolver, members []Dependent) *Roster {
	return &Roster{
		resolver: resolver,
		members:  members,
		now:      time.Now,
	}
}

// SetNow overrides the clock used for age derivation.
func (r *Roster) SetNow(now func() time.Time) {
	r.now = now
}

// Add appends a blank dependent with a fresh ephemeral id and returns it.
func (r *Roster) Add() Dependent {
	member := Dependent{ID: uuid.New().String()}
	r.members = append(r.members, member)
	return member
}

// Remove deletes the dependent with the given id, preserving order of
// the rest. Returns false when the id is unknown.
func (r *Roster) Remove(id string) bool {
	for i, member := range r.members {
		if member.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return true
		}
	}
	return false
}

// Update sets a single field on a dependent, then re-derives age and
// premium. An unparseable date of birth leaves the age unset rather
// than failing, so the row can stay pending on the form.
func (r *Roster) Update(id string, field DependentField, value string) (Dependent, error) {
	for i := range r.members {
		member := &r.members[i]
		if member.ID != id {
			continue
		}

		switch field {
		case FieldFirstName:
			member.FirstName = value
		case FieldLastName:
			member.LastName = value
		case FieldDateOfBirth:
			member.DateOfBirth = value
		case FieldRelationship:
			member.Relationship = value
		case FieldCoverAmount:
			if value == "" {
				member.CoverAmount = 0
			} else {
				amount, err := strconv.Atoi(value)
				if err != nil || amount < 0 {
					return Dependent{}, fmt.Errorf("invalid cover amount %q", value)
				}
				member.CoverAmount = amount
			}
		default:
			return Dependent{}, fmt.Errorf("unknown dependent field %q", field)
		}

		r.rederive(member)
		return *member, nil
	}
	return Dependent{}, fmt.Errorf("dependent %s not found", id)
}

// Get returns the dependent with the given id.
func (r *Roster) Get(id string) (Dependent, bool) {
	for _, member := range r.members {
		if member.ID == id {
			return member, true
		}
	}
	return Dependent{}, false
}

// Members returns the roster in order.
func (r *Roster) Members() []Dependent {
	return r.members
}

// CoverOptions returns the cover amounts currently selectable for a
// member. Empty until the member's relationship and age are both known.
func (r *Roster) CoverOptions(id string) []int {
	member, ok := r.Get(id)
	if !ok {
		return nil
	}
	return r.resolver.CoverOptions(member.Relationship, member.Age)
}

// TotalPremium is a pure reduction over the current per-member
// premiums, recomputed from scratch on every call so it can never drift
// from the rows.
func (r *Roster) TotalPremium() float64 {
	var total float64
	for _, member := range r.members {
		total += member.Premium
	}
	return total
}

// Rederive recomputes every member's derived fields against the current
// clock and rate table, e.g. after a draft is loaded back from storage.
func (r *Roster) Rederive() {
	for i := range r.members {
		r.rederive(&r.members[i])
	}
}

func (r *Roster) rederive(member *Dependent) {
	age, ok := premium.AgeFromString(member.DateOfBirth, r.now())
	if ok {
		member.Age = age
	} else {
		member.Age = 0
	}

	if member.Relationship != "" && member.CoverAmount > 0 && member.Age > 0 {
		member.Premium = r.resolver.ResolvePremium(member.Relationship, member.Age, member.CoverAmount)
	} else {
		member.Premium = 0
	}
}
