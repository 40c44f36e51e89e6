package matching

import (
	"testing"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"
)

func TestCriterionSpecification(t *testing.T) {
	tests := []struct {
		name      string
		criterion Criterion
		wantSpec  bool
		want      specification.Specification
	}{
		{
			name:      "equality with value",
			criterion: Criterion{Column: "religion", Kind: KindEquality, Value: "Hindu"},
			wantSpec:  true,
			want:      specification.FilterBy{Field: "religion", Value: "Hindu"},
		},
		{
			name:      "equality skips Any",
			criterion: Criterion{Column: "religion", Kind: KindEquality, Value: "Any"},
			wantSpec:  false,
		},
		{
			name:      "equality skips any lowercase",
			criterion: Criterion{Column: "cast", Kind: KindEquality, Value: "any"},
			wantSpec:  false,
		},
		{
			name:      "equality skips empty",
			criterion: Criterion{Column: "education", Kind: KindEquality, Value: ""},
			wantSpec:  false,
		},
		{
			name:      "equality skips whitespace",
			criterion: Criterion{Column: "education", Kind: KindEquality, Value: "  "},
			wantSpec:  false,
		},
		{
			name:      "range with both bounds",
			criterion: Criterion{Column: "age", Kind: KindRange, Min: "25", Max: "31"},
			wantSpec:  true,
			want:      specification.Between{Field: "age", Min: 25.0, Max: 31.0},
		},
		{
			name:      "range skips Any min",
			criterion: Criterion{Column: "age", Kind: KindRange, Min: "Any", Max: "31"},
			wantSpec:  false,
		},
		{
			name:      "range skips empty max",
			criterion: Criterion{Column: "height", Kind: KindRange, Min: "150", Max: ""},
			wantSpec:  false,
		},
		{
			name:      "range skips malformed bound",
			criterion: Criterion{Column: "height", Kind: KindRange, Min: "five feet", Max: "180"},
			wantSpec:  false,
		},
		{
			name:      "range parses decimals",
			criterion: Criterion{Column: "height", Kind: KindRange, Min: "150.5", Max: "180.5"},
			wantSpec:  true,
			want:      specification.Between{Field: "height", Min: 150.5, Max: 180.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := tt.criterion.Specification()
			if ok != tt.wantSpec {
				t.Fatalf("ok = %v, want %v", ok, tt.wantSpec)
			}
			if !ok {
				return
			}
			if spec != tt.want {
				t.Errorf("spec = %#v, want %#v", spec, tt.want)
			}
		})
	}
}

func TestBuildSpecifications(t *testing.T) {
	tests := []struct {
		name      string
		pref      entity.PartnerPreference
		wantCount int
	}{
		{
			name:      "all unset yields no predicates",
			pref:      entity.PartnerPreference{},
			wantCount: 0,
		},
		{
			name: "all Any yields no predicates",
			pref: entity.PartnerPreference{
				Caste:          "Any",
				Religion:       "Any",
				Education:      "Any",
				Occupation:     "Any",
				StarSign:       "Any",
				EatingHabit:    "Any",
				AnnualIncome:   "Any",
				MaritalStatus:  "Any",
				PhysicalStatus: "Any",
				SmokingHabit:   "Any",
				DrinkingHabit:  "Any",
				MinimumAge:     "Any",
				MaximumAge:     "Any",
				MinimumHeight:  "Any",
				MaximumHeight:  "Any",
			},
			wantCount: 0,
		},
		{
			name: "mixed preferences",
			pref: entity.PartnerPreference{
				Caste:      "Vellalar",
				Religion:   "Hindu",
				MinimumAge: "25",
				MaximumAge: "31",
				Education:  "Any",
			},
			wantCount: 3,
		},
		{
			name: "half-open range is dropped",
			pref: entity.PartnerPreference{
				MinimumAge: "25",
			},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := BuildSpecifications(tt.pref)
			if len(specs) != tt.wantCount {
				t.Errorf("len(specs) = %d, want %d", len(specs), tt.wantCount)
			}
		})
	}
}

func TestBuildSpecificationsAgeRangeInclusive(t *testing.T) {
	specs := BuildSpecifications(entity.PartnerPreference{MinimumAge: "25", MaximumAge: "31"})
	if len(specs) != 1 {
		t.Fatalf("len(specs) = %d, want 1", len(specs))
	}
	between, ok := specs[0].(specification.Between)
	if !ok {
		t.Fatalf("spec = %#v, want Between", specs[0])
	}
	if between.Field != "age" || between.Min != 25.0 || between.Max != 31.0 {
		t.Errorf("between = %#v, want age BETWEEN 25 AND 31", between)
	}
}

func TestHasCasteTier(t *testing.T) {
	tests := []struct {
		name string
		pref entity.PartnerPreference
		want bool
	}{
		{name: "caste set", pref: entity.PartnerPreference{Caste: "Vellalar"}, want: true},
		{name: "caste Any", pref: entity.PartnerPreference{Caste: "Any"}, want: false},
		{name: "caste empty", pref: entity.PartnerPreference{}, want: false},
		{name: "caste whitespace", pref: entity.PartnerPreference{Caste: " "}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCasteTier(tt.pref); got != tt.want {
				t.Errorf("HasCasteTier = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCasteSpecification(t *testing.T) {
	spec := CasteSpecification(entity.PartnerPreference{Caste: "Vellalar", Religion: "Hindu"})
	want := specification.FilterBy{Field: "cast", Value: "Vellalar"}
	if spec != want {
		t.Errorf("spec = %#v, want %#v", spec, want)
	}
}
