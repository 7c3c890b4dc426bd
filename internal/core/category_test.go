package core

import (
	"math/rand/v2"
	"testing"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
	}{
		{"food", FoodSecurity},
		{"  FOOD ", FoodSecurity},
		{"housing", HousingStability},
		{"util", UtilityAssistance},
		{"mh", MentalHealth},
		{"emp", EmploymentServices},
		{"legal", LegalAid},
		{"dv", DomesticViolence},
		{"youth", YouthServices},
		{"vet", VeteranSupport},
		{"dcf", FamilySupport},
		{"dis", DisabilityServices},
		{"senior", SeniorServices},
		{"pet", PetAssistance},
		{"med", Healthcare},
		{"fin", FinancialServices},
		{"edu", EducationTraining},
		{"dept", CommunityResources},
		{"", FallbackCategory},
		{"underwater-basket", FallbackCategory},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.raw); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeCategory_Total(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	alphabet := []rune("abcdefghijklmnopqrstuvwxyz- ;\"é日0")

	for i := 0; i < 2000; i++ {
		buf := make([]rune, rnd.IntN(16))
		for j := range buf {
			buf[j] = alphabet[rnd.IntN(len(alphabet))]
		}
		if got := NormalizeCategory(string(buf)); !got.Valid() {
			t.Fatalf("NormalizeCategory(%q) = %q, not a member", string(buf), got)
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 17 {
		t.Fatalf("len(Categories()) = %d, want 17", len(cats))
	}
	for _, c := range cats {
		if !c.Valid() {
			t.Errorf("%q is not Valid", c)
		}
		if c.Label() == string(c) {
			t.Errorf("%q has no label", c)
		}
	}
	if CategoryAll.Valid() {
		t.Error("CategoryAll must not be a member")
	}

	cats[0] = "mutated"
	if Categories()[0] != FoodSecurity {
		t.Error("Categories returned shared slice")
	}
}

func TestParseCategoryFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"", CategoryAll},
		{"ALL", CategoryAll},
		{"legal-aid", LegalAid},
		{"legal", LegalAid},
		{"nonsense", Category("nonsense")},
	}
	for _, tt := range tests {
		if got := ParseCategoryFilter(tt.in); got != tt.want {
			t.Errorf("ParseCategoryFilter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
