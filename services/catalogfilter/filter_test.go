package catalogfilter

import (
	"reflect"
	"testing"

	"github.com/sahilchouksey/study-abroad-api/model"
)

func strPtr(s string) *string { return &s }

func course(id uint, program, institution, campus, country, level, intakes string) model.Course {
	c := model.Course{ID: id}
	if program != "" {
		c.ProgramName = strPtr(program)
	}
	if institution != "" {
		c.InstitutionName = strPtr(institution)
	}
	if campus != "" {
		c.Campus = strPtr(campus)
	}
	if country != "" {
		c.Country = strPtr(country)
	}
	if level != "" {
		c.StudyLevel = strPtr(level)
	}
	if intakes != "" {
		c.OpenIntakes = strPtr(intakes)
	}
	return c
}

func fixture() []model.Course {
	return []model.Course{
		course(1, "MS Computer Science", "TU Berlin", "Berlin", "Germany", model.StudyLevelPostgraduate, "Springjan, Fallsep"),
		course(2, "BSc Mechanical Engineering", "TU Munich", "Munich", "Germany", model.StudyLevelUndergraduate, "Fallsep"),
		course(3, "MS Data Science", "ETH Zurich", "Zurich", "Switzerland", model.StudyLevelPostgraduate, "Springfeb"),
		course(4, "MBA", "TU Berlin", "Berlin", "Germany", model.StudyLevelPostgraduate, ""),
		course(5, "", "", "", "", "", ""), // fully sparse row must never error
	}
}

func ids(items []model.Course) []uint {
	out := make([]uint, len(items))
	for i, c := range items {
		out[i] = c.ID
	}
	return out
}

func TestApplyConjunctiveFacets(t *testing.T) {
	items := fixture()

	got := Apply(items, FilterState{Country: "Germany", StudyLevel: model.StudyLevelPostgraduate})
	if want := []uint{1, 4}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids = %v, want %v", ids(got), want)
	}
}

func TestApplyFreeTextSearchAnyField(t *testing.T) {
	items := fixture()

	// matches campus on 1 and 4, institution on none new, program on none new
	got := Apply(items, FilterState{Search: "berlin"})
	if want := []uint{1, 4}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids = %v, want %v", ids(got), want)
	}

	// institution-only hit
	got = Apply(items, FilterState{Search: "eth"})
	if want := []uint{3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids = %v, want %v", ids(got), want)
	}
}

func TestApplySeasonLooseContainment(t *testing.T) {
	items := fixture()

	got := Apply(items, FilterState{IntakeSeason: "spring"})
	if want := []uint{1, 3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids = %v, want %v (loose match against Springjan/Springfeb)", ids(got), want)
	}
}

func TestApplyProgramModes(t *testing.T) {
	items := fixture()

	// substring mode
	got := Apply(items, FilterState{ProgramText: "science"})
	if want := []uint{1, 3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("substring ids = %v, want %v", ids(got), want)
	}

	// exact dropdown mode: no substring leniency
	got = Apply(items, FilterState{ProgramExact: "MBA"})
	if want := []uint{4}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("exact ids = %v, want %v", ids(got), want)
	}
	if got := Apply(items, FilterState{ProgramExact: "MS"}); len(got) != 0 {
		t.Fatalf("exact mode matched a prefix: %v", ids(got))
	}
}

func TestApplyIdempotentAndOrderPreserving(t *testing.T) {
	items := fixture()
	f := FilterState{Country: "Germany"}

	once := Apply(items, f)
	twice := Apply(once, f)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("not idempotent: %v then %v", ids(once), ids(twice))
	}
	// catalog order preserved
	if want := []uint{1, 2, 4}; !reflect.DeepEqual(ids(once), want) {
		t.Fatalf("order = %v, want %v", ids(once), want)
	}
}

func TestParentFacetResetsDependents(t *testing.T) {
	var f FilterState
	f.SetCountry("Germany")
	f.University = "TU Berlin"
	f.SetProgramExact("MBA")

	f.SetCountry("Switzerland")
	if f.University != "" || f.ProgramExact != "" || f.ProgramText != "" {
		t.Fatalf("dependents not reset after country change: %+v", f)
	}

	f.University = "ETH Zurich"
	f.SetStudyLevel(model.StudyLevelPostgraduate)
	if f.University != "" {
		t.Fatalf("university survived study-level change: %+v", f)
	}
}

func TestProgramModesMutuallyExclusive(t *testing.T) {
	var f FilterState
	f.SetProgramText("data")
	f.SetProgramExact("MS Data Science")
	if f.ProgramText != "" {
		t.Fatalf("text mode survived exact selection")
	}
	f.SetProgramText("eng")
	if f.ProgramExact != "" {
		t.Fatalf("exact mode survived text input")
	}
}

func TestDependentOptionNarrowing(t *testing.T) {
	items := fixture()

	// University options follow country + level only.
	f := FilterState{Country: "Germany", StudyLevel: model.StudyLevelPostgraduate}
	if got, want := Universities(items, f), []string{"TU Berlin"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("universities = %v, want %v", got, want)
	}

	// Program options additionally follow the selected university and any
	// partial text typed.
	f.University = "TU Berlin"
	if got, want := Programs(items, f), []string{"MBA", "MS Computer Science"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("programs = %v, want %v", got, want)
	}
	f.ProgramText = "ms"
	if got, want := Programs(items, f), []string{"MS Computer Science"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("programs with text = %v, want %v", got, want)
	}
}

func TestFacetOptionSets(t *testing.T) {
	items := fixture()
	if got, want := Countries(items), []string{"Germany", "Switzerland"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("countries = %v, want %v", got, want)
	}
	if got, want := StudyLevels(items), []string{model.StudyLevelPostgraduate, model.StudyLevelUndergraduate}; !reflect.DeepEqual(got, want) {
		t.Fatalf("levels = %v, want %v", got, want)
	}
}
