package matcher

import (
	"encoding/json"

	"github.com/sahilchouksey/study-abroad-api/model"
)

// ProfileFromModel projects a stored student profile onto the matcher's
// view. A nil profile or an unreadable countries column yields an empty
// Profile, which Validate then rejects with the same "please complete your
// profile" message as a genuinely empty profile.
func ProfileFromModel(sp *model.StudentProfile) Profile {
	if sp == nil {
		return Profile{}
	}
	p := Profile{
		Degree:  sp.TargetDegree,
		Program: sp.TargetProgram,
	}
	if len(sp.TargetCountries) > 0 {
		// best effort: a malformed column behaves like no countries
		_ = json.Unmarshal(sp.TargetCountries, &p.Countries)
	}
	return p
}
