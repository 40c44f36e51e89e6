package matching

import (
	"strconv"
	"strings"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"
)

type CriterionKind int

const (
	KindEquality CriterionKind = iota
	KindRange
)

// Criterion describes one partner-preference filter before it becomes a query
// predicate: the candidate column it constrains, whether it is an equality or
// a closed-range check, and the raw stored preference values.
type Criterion struct {
	Column string
	Kind   CriterionKind
	Value  string
	Min    string
	Max    string
}

// CriteriaFor maps a partner-preference sub-record onto the declarative list
// of candidate-column criteria. Both historical implementations of this query
// drifted apart; this list is the single source of truth now.
func CriteriaFor(pref entity.PartnerPreference) []Criterion {
	return []Criterion{
		{Column: "cast", Kind: KindEquality, Value: pref.Caste},
		{Column: "religion", Kind: KindEquality, Value: pref.Religion},
		{Column: "height", Kind: KindRange, Min: pref.MinimumHeight, Max: pref.MaximumHeight},
		{Column: "age", Kind: KindRange, Min: pref.MinimumAge, Max: pref.MaximumAge},
		{Column: "education", Kind: KindEquality, Value: pref.Education},
		{Column: "occupation", Kind: KindEquality, Value: pref.Occupation},
		{Column: "star_sign", Kind: KindEquality, Value: pref.StarSign},
		{Column: "eating_habit", Kind: KindEquality, Value: pref.EatingHabit},
		{Column: "annual_income", Kind: KindEquality, Value: pref.AnnualIncome},
		{Column: "maritial_status", Kind: KindEquality, Value: pref.MaritalStatus},
		{Column: "physical_status", Kind: KindEquality, Value: pref.PhysicalStatus},
		{Column: "smoking_habit", Kind: KindEquality, Value: pref.SmokingHabit},
		{Column: "drinking_habit", Kind: KindEquality, Value: pref.DrinkingHabit},
	}
}

// Specification turns one criterion into a query predicate. The second return
// is false when the criterion yields no predicate: unset or "Any" sentinel
// values, and range bounds that fail to parse as numbers (preference data is
// free-form historical input, so a bad bound is skipped, never an error).
func (c Criterion) Specification() (specification.Specification, bool) {
	switch c.Kind {
	case KindRange:
		min, okMin := parseBound(c.Min)
		max, okMax := parseBound(c.Max)
		if !okMin || !okMax {
			return nil, false
		}
		return specification.Between{Field: c.Column, Min: min, Max: max}, true
	default:
		if !constrains(c.Value) {
			return nil, false
		}
		return specification.FilterBy{Field: c.Column, Value: c.Value}, true
	}
}

// BuildSpecifications derives the AND-composed predicate set for a
// partner-preference sub-record.
func BuildSpecifications(pref entity.PartnerPreference) []specification.Specification {
	var specs []specification.Specification
	for _, c := range CriteriaFor(pref) {
		if spec, ok := c.Specification(); ok {
			specs = append(specs, spec)
		}
	}
	return specs
}

// HasCasteTier reports whether the relaxed caste-only fallback applies for
// this preference set.
func HasCasteTier(pref entity.PartnerPreference) bool {
	return constrains(pref.Caste)
}

// CasteSpecification is the single predicate of the relaxed fallback tier.
func CasteSpecification(pref entity.PartnerPreference) specification.Specification {
	return specification.FilterBy{Field: "cast", Value: pref.Caste}
}

func constrains(value string) bool {
	v := strings.TrimSpace(value)
	return v != "" && !strings.EqualFold(v, entity.PreferenceAny)
}

func parseBound(raw string) (float64, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, entity.PreferenceAny) {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
