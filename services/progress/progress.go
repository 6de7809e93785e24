// Package progress derives where a student stands in the application journey
// from facts about their account. The stage is never stored; it is recomputed
// from the underlying records on every request.
package progress

// Stage is one step of the application journey, in order.
type Stage string

const (
	StageSignedUp        Stage = "signed_up"
	StageProfileComplete Stage = "profile_complete"
	StageDocsUploaded    Stage = "documents_uploaded"
	StageDocsVerified    Stage = "documents_verified"
	StageFinalized       Stage = "finalized"
)

// Facts are the account observations the stage is derived from.
type Facts struct {
	ProfileComplete   bool
	DocumentsUploaded bool
	DocumentsVerified bool
	Finalized         bool
}

// ordered lists the stages for progress rendering.
var ordered = []Stage{
	StageSignedUp,
	StageProfileComplete,
	StageDocsUploaded,
	StageDocsVerified,
	StageFinalized,
}

// Derive returns the furthest stage whose prerequisites all hold. Each stage
// requires every earlier one, so a verified document without a complete
// profile still reads as signed-up.
func Derive(f Facts) Stage {
	stage := StageSignedUp
	if !f.ProfileComplete {
		return stage
	}
	stage = StageProfileComplete
	if !f.DocumentsUploaded {
		return stage
	}
	stage = StageDocsUploaded
	if !f.DocumentsVerified {
		return stage
	}
	stage = StageDocsVerified
	if !f.Finalized {
		return stage
	}
	return StageFinalized
}

// Index returns the zero-based position of the stage in the journey, for
// progress bars.
func Index(s Stage) int {
	for i, stage := range ordered {
		if stage == s {
			return i
		}
	}
	return 0
}

// Stages returns the journey in order.
func Stages() []Stage {
	out := make([]Stage, len(ordered))
	copy(out, ordered)
	return out
}
