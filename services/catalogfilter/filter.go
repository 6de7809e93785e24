// Package catalogfilter is the client-side style filter engine for catalog
// listings: conjunctive facet filters over an already-fetched slice, plus the
// dependent dropdown-option computation every listing page needs.
//
// Filtering never re-sorts; output keeps the catalog order of the input.
package catalogfilter

import (
	"sort"
	"strings"

	"github.com/sahilchouksey/study-abroad-api/model"
)

// FilterState holds the independently optional facet predicates of one
// listing view. Zero values mean "facet inactive".
//
// ProgramText and ProgramExact are two modes of the same facet: free-text
// substring versus exact dropdown selection. The UI keeps them mutually
// exclusive (the setters below clear the sibling), but Apply accepts either.
type FilterState struct {
	Search       string `json:"search,omitempty"`
	Country      string `json:"country,omitempty"`
	StudyLevel   string `json:"study_level,omitempty"`
	University   string `json:"university,omitempty"`
	IntakeSeason string `json:"intake_season,omitempty"`
	ProgramText  string `json:"program_text,omitempty"`
	ProgramExact string `json:"program_exact,omitempty"`
}

// SetCountry activates (or clears) the country facet. University and program
// selections are computed from the country-narrowed item set, so they reset
// to avoid presenting a stale selection that no longer matches any item.
func (f *FilterState) SetCountry(country string) {
	f.Country = country
	f.resetDependents()
}

// SetStudyLevel activates (or clears) the study-level facet, resetting the
// dependent facets for the same reason as SetCountry.
func (f *FilterState) SetStudyLevel(level string) {
	f.StudyLevel = level
	f.resetDependents()
}

// SetProgramText switches the program facet to free-text mode.
func (f *FilterState) SetProgramText(text string) {
	f.ProgramText = text
	f.ProgramExact = ""
}

// SetProgramExact switches the program facet to dropdown-selection mode.
func (f *FilterState) SetProgramExact(name string) {
	f.ProgramExact = name
	f.ProgramText = ""
}

func (f *FilterState) resetDependents() {
	f.University = ""
	f.ProgramText = ""
	f.ProgramExact = ""
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Matches reports whether one course passes every active facet of f.
func (f FilterState) Matches(c *model.Course) bool {
	if f.Search != "" {
		// match if ANY of the three display fields contains the query
		if !containsFold(deref(c.ProgramName), f.Search) &&
			!containsFold(deref(c.InstitutionName), f.Search) &&
			!containsFold(deref(c.Campus), f.Search) {
			return false
		}
	}
	if f.Country != "" && deref(c.Country) != f.Country {
		return false
	}
	if f.StudyLevel != "" && deref(c.StudyLevel) != f.StudyLevel {
		return false
	}
	if f.University != "" && deref(c.InstitutionName) != f.University {
		return false
	}
	if f.IntakeSeason != "" {
		// Deliberately loose: the raw intake field concatenates season and
		// month ("Springjan"), so "spring" matches by containment.
		if !containsFold(deref(c.OpenIntakes), f.IntakeSeason) {
			return false
		}
	}
	if f.ProgramExact != "" {
		if deref(c.ProgramName) != f.ProgramExact {
			return false
		}
	} else if f.ProgramText != "" {
		if !containsFold(deref(c.ProgramName), f.ProgramText) {
			return false
		}
	}
	return true
}

// Apply returns the items passing all active facets, in their original order.
func Apply(items []model.Course, f FilterState) []model.Course {
	out := make([]model.Course, 0, len(items))
	for i := range items {
		if f.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// distinctSorted collects non-empty unique values and sorts them for display.
func distinctSorted(items []model.Course, pick func(*model.Course) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range items {
		v := pick(&items[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Countries returns the country options over the whole item set.
func Countries(items []model.Course) []string {
	return distinctSorted(items, func(c *model.Course) string { return deref(c.Country) })
}

// StudyLevels returns the study-level options over the whole item set.
func StudyLevels(items []model.Course) []string {
	return distinctSorted(items, func(c *model.Course) string { return deref(c.StudyLevel) })
}

// Universities returns the university options valid under the currently
// selected country and study level. Other facets are ignored on purpose: the
// dropdown must not be narrowed by its own or downstream selections.
func Universities(items []model.Course, f FilterState) []string {
	narrowed := Apply(items, FilterState{Country: f.Country, StudyLevel: f.StudyLevel})
	return distinctSorted(narrowed, func(c *model.Course) string { return deref(c.InstitutionName) })
}

// Programs returns the program-name options valid under country, study level,
// the selected university, and any partial program text already typed.
func Programs(items []model.Course, f FilterState) []string {
	narrowed := Apply(items, FilterState{
		Country:     f.Country,
		StudyLevel:  f.StudyLevel,
		University:  f.University,
		ProgramText: f.ProgramText,
	})
	return distinctSorted(narrowed, func(c *model.Course) string { return deref(c.ProgramName) })
}
