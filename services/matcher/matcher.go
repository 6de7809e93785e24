// Package matcher implements the profile-to-catalog match scoring and
// recommendation ranking used by the course and scholarship finders.
//
// Scores are unnormalized weighted signals, not percentages: the course
// policy can sum past 100. All functions here are pure and deterministic;
// fetching the catalog and profile is the caller's job.
package matcher

import (
	"errors"
	"sort"
	"strings"

	"github.com/sahilchouksey/study-abroad-api/model"
)

// DefaultQuota is the number of recommendations a ranking pass returns.
const DefaultQuota = 10

// relevanceThreshold separates "relevant" matches from gate-passing items
// that are only used for backfill.
const relevanceThreshold = 10

// Profile completeness errors, in the priority order the caller must check
// and surface them: countries first, then degree, then program.
var (
	ErrProfileCountries = errors.New("please complete your profile: add at least one target country")
	ErrProfileDegree    = errors.New("please complete your profile: set your target degree")
	ErrProfileProgram   = errors.New("please complete your profile: set your target program or field of study")
)

// Profile is the matcher's view of a student profile: just the stated
// preferences that drive scoring.
type Profile struct {
	Countries []string
	Degree    string
	Program   string
}

// Validate reports the first missing field that blocks recommendation mode.
// A profile failing Validate must short-circuit with the returned error, not
// silently score zero.
func (p Profile) Validate() error {
	if len(p.Countries) == 0 {
		return ErrProfileCountries
	}
	if strings.TrimSpace(p.Degree) == "" {
		return ErrProfileDegree
	}
	if strings.TrimSpace(p.Program) == "" {
		return ErrProfileProgram
	}
	return nil
}

// TargetLevel maps a stated degree to the catalog study level it targets:
// any flavor of "Bachelors" means Undergraduate, everything else Postgraduate.
func (p Profile) TargetLevel() string {
	if strings.Contains(strings.ToLower(p.Degree), "bachelor") {
		return model.StudyLevelUndergraduate
	}
	return model.StudyLevelPostgraduate
}

// hasCountry reports whether the profile's target-country set contains c.
func (p Profile) hasCountry(c string) bool {
	for _, want := range p.Countries {
		if want == c {
			return true
		}
	}
	return false
}

// Program-match component weights.
const (
	programExactScore   = 50 // profile program text appears in course text
	programReverseScore = 48 // first 3 words of course text appear in profile text
	clusterBonus        = 15
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ScoreCourse computes the match score of one catalog course against a
// profile. Components:
//
//   - program/field match over program name + concentration, strict priority:
//     exact substring (50/48), else banded keyword overlap, plus a one-shot
//     field-cluster bonus while the running score is below 30;
//   - +30 when the course country is in the profile's target set;
//   - +20 when the course study level equals the profile's derived target.
//
// Absent course fields contribute zero; the result is always >= 0.
func ScoreCourse(course *model.Course, p Profile) int {
	courseText := strings.ToLower(strings.TrimSpace(deref(course.ProgramName) + " " + deref(course.Concentration)))
	profileText := strings.ToLower(strings.TrimSpace(p.Program))

	score := programScore(profileText, courseText)

	if c := deref(course.Country); c != "" && p.hasCountry(c) {
		score += 30
	}
	if lvl := deref(course.StudyLevel); lvl != "" && lvl == p.TargetLevel() {
		score += 20
	}
	return score
}

// programScore evaluates the program/field tiers. First match wins; tiers do
// not accumulate. The cluster bonus is additive but only while the running
// score is still below 30, and fires at most once.
func programScore(profileText, courseText string) int {
	score := 0
	switch {
	case profileText == "" || courseText == "":
		// nothing to match on
	case strings.Contains(courseText, profileText):
		score = programExactScore
	case func() bool {
		head := firstNWords(courseText, 3)
		return head != "" && strings.Contains(profileText, head)
	}():
		score = programReverseScore
	default:
		frac := overlapFraction(TokenizeKeywords(profileText), courseText)
		switch {
		case frac >= 0.8:
			score = 45
		case frac >= 0.6:
			score = 38
		case frac >= 0.4:
			score = 30
		case frac >= 0.2:
			score = 20
		case frac > 0:
			score = 10
		}
	}

	if score < 30 && profileText != "" && courseText != "" {
		if _, ok := sharedCluster(profileText, courseText); ok {
			score += clusterBonus
		}
	}
	return score
}

// RankedCourse is a course with its transient match score for one ranking
// pass. Scores are never persisted.
type RankedCourse struct {
	Course model.Course `json:"course"`
	Score  int          `json:"score"`
}

// RankCourses filters the catalog through the hard gates (study level equals
// the derived target, country in the profile set, program name present),
// scores the survivors, and returns at most quota items: all scores above the
// relevance threshold first, sorted by score descending, then backfill from
// the remaining gate-passing items until quota or exhaustion. Sorting is
// stable, so ties keep original catalog order.
func RankCourses(catalog []model.Course, p Profile, quota int) ([]RankedCourse, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if quota <= 0 {
		quota = DefaultQuota
	}

	target := p.TargetLevel()
	var relevant, reserve []RankedCourse
	for i := range catalog {
		c := &catalog[i]
		if deref(c.ProgramName) == "" {
			continue
		}
		if country := deref(c.Country); country == "" || !p.hasCountry(country) {
			continue
		}
		if deref(c.StudyLevel) != target {
			continue
		}
		rc := RankedCourse{Course: *c, Score: ScoreCourse(c, p)}
		if rc.Score > relevanceThreshold {
			relevant = append(relevant, rc)
		} else {
			reserve = append(reserve, rc)
		}
	}

	return takeWithBackfill(relevant, reserve, quota), nil
}

// takeWithBackfill sorts the relevant set by score descending (stable, so
// ties keep catalog order), truncates to quota, and fills any deficit from
// the gate-passing reserve, again best first.
func takeWithBackfill(relevant, reserve []RankedCourse, quota int) []RankedCourse {
	sortRankedCourses(relevant)
	if len(relevant) >= quota {
		return relevant[:quota]
	}
	sortRankedCourses(reserve)
	for _, rc := range reserve {
		if len(relevant) >= quota {
			break
		}
		relevant = append(relevant, rc)
	}
	return relevant
}

func sortRankedCourses(items []RankedCourse) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}
