package matcher

import (
	"testing"

	"github.com/sahilchouksey/study-abroad-api/model"
)

func strPtr(s string) *string { return &s }

func course(program, concentration, country, level string) model.Course {
	c := model.Course{}
	if program != "" {
		c.ProgramName = strPtr(program)
	}
	if concentration != "" {
		c.Concentration = strPtr(concentration)
	}
	if country != "" {
		c.Country = strPtr(country)
	}
	if level != "" {
		c.StudyLevel = strPtr(level)
	}
	return c
}

func TestScoreCourseFullMatchScenario(t *testing.T) {
	// 50 (exact program substring) + 30 (country) + 20 (level)
	p := Profile{Countries: []string{"Germany"}, Degree: "Masters", Program: "computer science"}
	c := course("MS Computer Science", "", "Germany", model.StudyLevelPostgraduate)

	if got := ScoreCourse(&c, p); got != 100 {
		t.Fatalf("score = %d, want 100", got)
	}
}

func TestScoreCourseDeterministicAndNonNegative(t *testing.T) {
	profiles := []Profile{
		{},
		{Countries: []string{"Canada"}, Degree: "Bachelors", Program: "business administration"},
		{Countries: []string{"UK"}, Degree: "PhD", Program: "quantum-physics/astronomy"},
	}
	courses := []model.Course{
		{},
		course("BBA Management", "Finance", "Canada", model.StudyLevelUndergraduate),
		course("Astrophysics", "", "UK", model.StudyLevelPhD),
	}
	for _, p := range profiles {
		for i := range courses {
			first := ScoreCourse(&courses[i], p)
			if first < 0 {
				t.Errorf("score %d < 0 for course %d", first, i)
			}
			if again := ScoreCourse(&courses[i], p); again != first {
				t.Errorf("score not deterministic: %d then %d", first, again)
			}
		}
	}
}

func TestProgramScoreExactBeatsKeywordBands(t *testing.T) {
	// Forward containment is exactly 50, never the banded alternative.
	if got := programScore("data science", "msc data science and analytics"); got != 50 {
		t.Errorf("forward containment = %d, want 50", got)
	}
	// Reverse containment (course text truncated to 3 words) is exactly 48.
	if got := programScore("international business management and law", "international business management"); got != 48 {
		t.Errorf("reverse containment = %d, want 48", got)
	}
}

func TestProgramScoreKeywordBands(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		course  string
		want    int
	}{
		// all profile tokens present
		{"full overlap", "robotics automation", "automation robotics lab", 45},
		// 1 of 2 tokens -> 0.5 band -> 30
		{"half overlap", "marine biology", "biology with ecology", 30},
		// 1 of 4 tokens -> 0.25 -> 20
		{"quarter overlap", "ancient greek roman philosophy", "philosophy department", 20},
		{"no overlap no cluster", "viticulture", "dentistry", 0},
	}
	for _, tt := range tests {
		if got := programScore(tt.profile, tt.course); got != tt.want {
			t.Errorf("%s: programScore(%q, %q) = %d, want %d", tt.name, tt.profile, tt.course, got, tt.want)
		}
	}
}

func TestProgramScoreClusterBonus(t *testing.T) {
	// No token overlap, but both texts hit the cs cluster: 0 + 15.
	if got := programScore("computing", "software systems"); got != 15 {
		t.Errorf("cluster-only score = %d, want 15", got)
	}
	// Banded 20 is below 30, so the bonus stacks: 20 + 15.
	got := programScore("ancient greek computer philosophy", "philosophy computing department")
	if got != 35 {
		t.Errorf("band+cluster score = %d, want 35", got)
	}
	// At 30 and above the bonus no longer applies.
	if got := programScore("marine biology", "biology with environmental science"); got != 30 {
		t.Errorf("band-30 score = %d, want 30 (no bonus)", got)
	}
}

func TestTargetLevelDerivation(t *testing.T) {
	if lvl := (Profile{Degree: "Bachelors"}).TargetLevel(); lvl != model.StudyLevelUndergraduate {
		t.Errorf("Bachelors -> %s, want Undergraduate", lvl)
	}
	for _, d := range []string{"Masters", "PhD", "PG-Diploma", "anything"} {
		if lvl := (Profile{Degree: d}).TargetLevel(); lvl != model.StudyLevelPostgraduate {
			t.Errorf("%s -> %s, want Postgraduate", d, lvl)
		}
	}
}

func TestProfileValidatePriorityOrder(t *testing.T) {
	tests := []struct {
		p    Profile
		want error
	}{
		{Profile{}, ErrProfileCountries},
		{Profile{Degree: "Masters", Program: "cs"}, ErrProfileCountries},
		{Profile{Countries: []string{"Germany"}}, ErrProfileDegree},
		{Profile{Countries: []string{"Germany"}, Degree: "Masters"}, ErrProfileProgram},
		{Profile{Countries: []string{"Germany"}, Degree: "Masters", Program: "cs"}, nil},
	}
	for i, tt := range tests {
		if got := tt.p.Validate(); got != tt.want {
			t.Errorf("case %d: Validate() = %v, want %v", i, got, tt.want)
		}
	}
}

func TestRankCoursesIncompleteProfile(t *testing.T) {
	_, err := RankCourses([]model.Course{course("CS", "", "Germany", model.StudyLevelPostgraduate)}, Profile{}, 10)
	if err != ErrProfileCountries {
		t.Fatalf("err = %v, want ErrProfileCountries", err)
	}
}

func TestRankCoursesGatesAndQuota(t *testing.T) {
	p := Profile{Countries: []string{"Germany"}, Degree: "Masters", Program: "computer science"}

	catalog := []model.Course{
		course("MS Computer Science", "", "Germany", model.StudyLevelPostgraduate), // passes, high score
		course("MS Computer Science", "", "France", model.StudyLevelPostgraduate),  // wrong country
		course("BSc Computer Science", "", "Germany", model.StudyLevelUndergraduate), // wrong level
		course("", "", "Germany", model.StudyLevelPostgraduate),                    // no program name
		course("Fine Arts", "", "Germany", model.StudyLevelPostgraduate),           // passes, low score
	}

	got, err := RankCourses(catalog, p, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (gate-passing catalog size)", len(got))
	}
	for _, rc := range got {
		if *rc.Course.Country != "Germany" || *rc.Course.StudyLevel != model.StudyLevelPostgraduate {
			t.Errorf("gate-failing item leaked into results: %+v", rc.Course)
		}
	}
	if *got[0].Course.ProgramName != "MS Computer Science" {
		t.Errorf("best match not first: %+v", got[0])
	}
}

func TestRankCoursesQuotaAndOrder(t *testing.T) {
	p := Profile{Countries: []string{"Germany"}, Degree: "Masters", Program: "computer science"}

	catalog := []model.Course{
		course("MS Computer Science", "", "Germany", model.StudyLevelPostgraduate),
		course("Data Science", "", "Germany", model.StudyLevelPostgraduate),
	}
	for i := 0; i < 5; i++ {
		catalog = append(catalog, course("Fine Arts", "", "Germany", model.StudyLevelPostgraduate))
	}

	got, err := RankCourses(catalog, p, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want quota 4", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not descending at %d: %d > %d", i, got[i].Score, got[i-1].Score)
		}
	}
}

func TestTakeWithBackfill(t *testing.T) {
	mk := func(id uint, score int) RankedCourse {
		return RankedCourse{Course: model.Course{ID: id}, Score: score}
	}
	relevant := []RankedCourse{mk(1, 40), mk(2, 60)}
	reserve := []RankedCourse{mk(3, 5), mk(4, 8), mk(5, 8)}

	got := takeWithBackfill(relevant, reserve, 4)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	wantIDs := []uint{2, 1, 4, 5} // relevant desc, then reserve desc, tie keeps order
	for i, want := range wantIDs {
		if got[i].Course.ID != want {
			t.Errorf("pos %d: id = %d, want %d", i, got[i].Course.ID, want)
		}
	}

	// Source exhaustion: never invents items.
	got = takeWithBackfill([]RankedCourse{mk(1, 40)}, nil, 10)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1 on exhausted reserve", len(got))
	}
}

func TestRankCoursesNeverExceedsGatePassingSize(t *testing.T) {
	p := Profile{Countries: []string{"Germany"}, Degree: "Masters", Program: "computer science"}
	catalog := []model.Course{
		course("MS Computer Science", "", "Germany", model.StudyLevelPostgraduate),
		course("MS Computer Science", "", "Spain", model.StudyLevelPostgraduate),
	}
	got, err := RankCourses(catalog, p, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want min(quota, gate-passing) = 1", len(got))
	}
}
