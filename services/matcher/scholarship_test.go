package matcher

import (
	"testing"

	"github.com/sahilchouksey/study-abroad-api/model"
)

func scholarship(region, name, level, eligibility string) model.Scholarship {
	s := model.Scholarship{}
	if region != "" {
		s.CountryRegion = strPtr(region)
	}
	if name != "" {
		s.Name = strPtr(name)
	}
	if level != "" {
		s.DegreeLevel = strPtr(level)
	}
	if eligibility != "" {
		s.Eligibility = strPtr(eligibility)
	}
	return s
}

func TestScoreScholarshipSentinelAllAndBothLevels(t *testing.T) {
	// The "All" region matches any profile, and a level text naming both
	// undergraduate and postgraduate earns +30 even though the profile says
	// phd. 50 + 30, no keyword overlap.
	p := Profile{Countries: []string{"France"}, Degree: "phd", Program: "engineering"}
	s := scholarship("All", "Global Excellence Award", "Undergraduate and Postgraduate", "open to all nationalities")

	if got := ScoreScholarship(&s, p); got != 80 {
		t.Fatalf("score = %d, want 80", got)
	}
}

func TestScoreScholarshipLevelStacking(t *testing.T) {
	// A masters profile against text naming both levels: the group match
	// (+30 via "postgraduate") stacks with the both-levels clause (+30).
	p := Profile{Countries: []string{"France"}, Degree: "Masters", Program: "zzzz"}
	s := scholarship("France", "Award", "Undergraduate and Postgraduate students", "")

	if got := ScoreScholarship(&s, p); got != 110 {
		t.Fatalf("score = %d, want 110 (50 country + 30 group + 30 both-levels)", got)
	}
}

func TestScoreScholarshipDegreeGroups(t *testing.T) {
	tests := []struct {
		degree string
		level  string
		want   int
	}{
		{"Bachelors", "Bachelor degree applicants", 30},
		{"Bachelors", "Masters only", 0},
		{"Masters", "Graduate scholarships", 30},
		{"phd", "PhD fellowships", 30},
		{"phd", "Masters only", 0},
	}
	for _, tt := range tests {
		p := Profile{Countries: []string{"Japan"}, Degree: tt.degree, Program: "zzzz"}
		s := scholarship("Nowhere", "Award", tt.level, "")
		// Region never matches, keywords never match: score isolates the
		// level component.
		if got := ScoreScholarship(&s, p); got != tt.want {
			t.Errorf("degree %q vs level %q: score = %d, want %d", tt.degree, tt.level, got, tt.want)
		}
	}
}

func TestScoreScholarshipKeywordBands(t *testing.T) {
	p := Profile{Countries: []string{"Japan"}, Degree: "Masters", Program: "renewable energy systems"}

	tests := []struct {
		name        string
		eligibility string
		want        int
	}{
		// 3/3 tokens -> >=0.5 -> 20
		{"Energy Award", "renewable energy and sustainable systems research", 20},
		// 1/3 tokens -> ~0.33 -> 15
		{"Energy Award", "energy studies", 15},
		// 0 tokens -> 0
		{"Arts Award", "painting and sculpture", 0},
	}
	for _, tt := range tests {
		s := scholarship("Nowhere", tt.name, "", tt.eligibility)
		if got := ScoreScholarship(&s, p); got != tt.want {
			t.Errorf("%q/%q: score = %d, want %d", tt.name, tt.eligibility, got, tt.want)
		}
	}
}

func TestRankScholarshipsGates(t *testing.T) {
	p := Profile{Countries: []string{"Germany"}, Degree: "Masters", Program: "computer science"}

	catalog := []model.Scholarship{
		scholarship("Germany", "DAAD Masters Grant", "Postgraduate", "computer science applicants"),
		scholarship("All", "Global Award", "Postgraduate", ""),
		scholarship("Spain", "Local Award", "Postgraduate", ""), // wrong country, no sentinel
		scholarship("Germany", "", "Postgraduate", ""),          // missing name
	}

	got, err := RankScholarships(catalog, p, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if *got[0].Scholarship.Name != "DAAD Masters Grant" {
		t.Errorf("best scholarship not first: %+v", got[0])
	}
}

func TestRankScholarshipsIncompleteProfile(t *testing.T) {
	if _, err := RankScholarships(nil, Profile{Countries: []string{"X"}}, 5); err != ErrProfileDegree {
		t.Fatalf("err = %v, want ErrProfileDegree", err)
	}
}
