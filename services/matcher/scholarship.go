package matcher

import (
	"sort"
	"strings"

	"github.com/sahilchouksey/study-abroad-api/model"
)

// Degree-level keyword sets for scholarship matching. A profile degree is
// classified into one group; the scholarship's free-text level field only
// needs to contain one of the group's keywords.
var (
	undergradKeywords = []string{"undergraduate", "bachelor"}
	postgradKeywords  = []string{"master", "postgraduate", "graduate"}
	phdKeywords       = []string{"phd"}
)

func degreeKeywords(degree string) []string {
	d := strings.ToLower(degree)
	switch {
	case strings.Contains(d, "bachelor"):
		return undergradKeywords
	case strings.Contains(d, "phd") || strings.Contains(d, "doctor"):
		return phdKeywords
	default:
		return postgradKeywords
	}
}

// ScoreScholarship computes the match score of a scholarship against a
// profile, capped by construction at 100:
//
//   - +50 when the scholarship's country/region is in the profile set or is
//     the sentinel "All";
//   - +30 when the scholarship's degree-level text contains a keyword of the
//     profile degree's group;
//   - +30, additively, when the text names both "undergraduate" and
//     "postgraduate"; open-to-all-levels text stacks with the group match;
//   - up to +20 from keyword overlap between the profile program and the
//     scholarship name + eligibility text.
func ScoreScholarship(sch *model.Scholarship, p Profile) int {
	score := 0

	if region := deref(sch.CountryRegion); region != "" {
		if region == model.CountryRegionAll || p.hasCountry(region) {
			score += 50
		}
	}

	levelText := strings.ToLower(deref(sch.DegreeLevel))
	if levelText != "" {
		for _, kw := range degreeKeywords(p.Degree) {
			if strings.Contains(levelText, kw) {
				score += 30
				break
			}
		}
		if strings.Contains(levelText, "undergraduate") && strings.Contains(levelText, "postgraduate") {
			score += 30
		}
	}

	haystack := deref(sch.Name) + " " + deref(sch.Eligibility)
	frac := overlapFraction(Tokenize(strings.ToLower(p.Program)), haystack)
	switch {
	case frac >= 0.5:
		score += 20
	case frac >= 0.3:
		score += 15
	case frac > 0:
		score += 10
	}

	return score
}

// RankedScholarship is a scholarship with its transient match score.
type RankedScholarship struct {
	Scholarship model.Scholarship `json:"scholarship"`
	Score       int               `json:"score"`
}

// RankScholarships mirrors RankCourses for the scholarship catalog. Hard
// gates: the scholarship must have a name, and its country/region must be in
// the profile set or the sentinel "All". There is no level gate; level text
// is free-form and only scored.
func RankScholarships(catalog []model.Scholarship, p Profile, quota int) ([]RankedScholarship, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if quota <= 0 {
		quota = DefaultQuota
	}

	var relevant, reserve []RankedScholarship
	for i := range catalog {
		s := &catalog[i]
		if deref(s.Name) == "" {
			continue
		}
		region := deref(s.CountryRegion)
		if region == "" || (region != model.CountryRegionAll && !p.hasCountry(region)) {
			continue
		}
		rs := RankedScholarship{Scholarship: *s, Score: ScoreScholarship(s, p)}
		if rs.Score > relevanceThreshold {
			relevant = append(relevant, rs)
		} else {
			reserve = append(reserve, rs)
		}
	}

	sortRankedScholarships(relevant)
	if len(relevant) >= quota {
		return relevant[:quota], nil
	}

	sortRankedScholarships(reserve)
	for _, rs := range reserve {
		if len(relevant) >= quota {
			break
		}
		relevant = append(relevant, rs)
	}
	return relevant, nil
}

func sortRankedScholarships(items []RankedScholarship) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}
