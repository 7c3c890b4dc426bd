package core

import "strings"

// Category is one of the fixed service-domain tags.
type Category string

const (
	FoodSecurity       Category = "food-security"
	HousingStability   Category = "housing-stability"
	MentalHealth       Category = "mental-health"
	EmploymentServices Category = "employment-services"
	UtilityAssistance  Category = "utility-assistance"
	LegalAid           Category = "legal-aid"
	DomesticViolence   Category = "domestic-violence"
	YouthServices      Category = "youth-services"
	VeteranSupport     Category = "veteran-support"
	FamilySupport      Category = "family-support"
	DisabilityServices Category = "disability-services"
	SeniorServices     Category = "senior-services"
	PetAssistance      Category = "pet-assistance"
	Healthcare         Category = "healthcare"
	FinancialServices  Category = "financial-services"
	EducationTraining  Category = "education-training"
	CommunityResources Category = "community-resources"
)

// CategoryAll is the query value that matches every category.
const CategoryAll Category = "all"

// FallbackCategory is assigned to any token missing from the alias table.
const FallbackCategory = CommunityResources

var categories = []Category{
	FoodSecurity, HousingStability, MentalHealth, EmploymentServices,
	UtilityAssistance, LegalAid, DomesticViolence, YouthServices,
	VeteranSupport, FamilySupport, DisabilityServices, SeniorServices,
	PetAssistance, Healthcare, FinancialServices, EducationTraining,
	CommunityResources,
}

var categoryLabels = map[Category]string{
	FoodSecurity:       "Food Security",
	HousingStability:   "Housing Stability",
	MentalHealth:       "Mental Health",
	EmploymentServices: "Employment Services",
	UtilityAssistance:  "Utility Assistance",
	LegalAid:           "Legal Aid",
	DomesticViolence:   "Domestic Violence",
	YouthServices:      "Youth Services",
	VeteranSupport:     "Veteran Support",
	FamilySupport:      "Family Support",
	DisabilityServices: "Disability Services",
	SeniorServices:     "Senior Services",
	PetAssistance:      "Pet Assistance",
	Healthcare:         "Healthcare",
	FinancialServices:  "Financial Services",
	EducationTraining:  "Education & Training",
	CommunityResources: "Community Resources",
}

// categoryAliases maps lowercase source tokens to categories.
var categoryAliases = map[string]Category{
	"food":               FoodSecurity,
	"housing":            HousingStability,
	"utility":            UtilityAssistance,
	"util":               UtilityAssistance,
	"mental-health":      MentalHealth,
	"mh":                 MentalHealth,
	"employment":         EmploymentServices,
	"emp":                EmploymentServices,
	"legal":              LegalAid,
	"domestic-violence":  DomesticViolence,
	"dv":                 DomesticViolence,
	"youth":              YouthServices,
	"veterans":           VeteranSupport,
	"vet":                VeteranSupport,
	"family":             FamilySupport,
	"dcf":                FamilySupport,
	"disability":         DisabilityServices,
	"dis":                DisabilityServices,
	"senior":             SeniorServices,
	"pet":                PetAssistance,
	"healthcare":         Healthcare,
	"health":             Healthcare,
	"med":                Healthcare,
	"financial":          FinancialServices,
	"financial-services": FinancialServices,
	"fin":                FinancialServices,
	"education":          EducationTraining,
	"edu":                EducationTraining,
	"community":          CommunityResources,
	"comm":               CommunityResources,
	"dept":               CommunityResources,
	"res":                CommunityResources,
}

// NormalizeCategory maps a free-text token to a Category. It never fails:
// unrecognized tokens map to FallbackCategory.
func NormalizeCategory(raw string) Category {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return FallbackCategory
}

// Categories returns all categories in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is a member of the enumeration ("all" is not).
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns a human-readable name, or the raw value for unknown categories.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ParseCategoryFilter interprets a query parameter as a category filter.
// Empty and "all" select everything; canonical values and aliases are
// accepted; anything else is returned as-is and will match nothing.
func ParseCategoryFilter(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == string(CategoryAll):
		return CategoryAll
	case Category(s).Valid():
		return Category(s)
	}
	if c, ok := categoryAliases[s]; ok {
		return c
	}
	return Category(s)
}
