package services

import "github.com/Davidkingreuben/Dreamcoach/internal/models"

// ClassificationInfo is presentation metadata for a feasibility verdict.
type ClassificationInfo struct {
	Subtitle    string `json:"subtitle"`
	Action      string `json:"action"` // pursue, defer, reshape, release
	Description string `json:"description"`
}

var classificationCatalog = map[string]ClassificationInfo{
	models.ClassViableAligned: {
		Subtitle:    "The path is clear. The block is internal.",
		Action:      "pursue",
		Description: "Your dream is real, it matters deeply, and the primary obstacle is psychological — not circumstantial. The work now is to move despite resistance, not to wait until it disappears.",
	},
	models.ClassViableMisaligned: {
		Subtitle:    "Right dream, wrong season.",
		Action:      "defer",
		Description: "This is real and achievable — but your current life doesn't have the structural conditions to support it. Deferring consciously is a form of respect for both the dream and your reality.",
	},
	models.ClassSymbolic: {
		Subtitle:    "The dream points to something real. The form needs reshaping.",
		Action:      "reshape",
		Description: "What you're chasing isn't the thing itself — it's what it represents: meaning, expression, identity, freedom. Those things are achievable. The specific version you're imagining may not be.",
	},
	models.ClassUnrealistic: {
		Subtitle:    "Honesty is freedom. Releasing isn't failure.",
		Action:      "release",
		Description: "The version of this dream you're holding cannot be reconciled with your actual life. Naming that clearly is not defeat — it's the beginning of redirecting your energy somewhere it can go.",
	},
}

// ClassificationCatalog returns the metadata entry for a classification.
func ClassificationCatalog(class string) (ClassificationInfo, bool) {
	info, ok := classificationCatalog[class]
	return info, ok
}

// ClassifyDream runs the ordered feasibility gates. Hard constraint gates
// come first, then symbolic signals, then deferral signals; order is the
// behavior, not an optimization.
func ClassifyDream(intake models.DreamIntake, resistance models.ResistanceAnswers, reality models.RealityAnswers) string {
	archetype := DetermineArchetype(resistance)

	switch {
	case reality.PhysicalConstraint == "impossible":
		return models.ClassUnrealistic
	case reality.PhysicalConstraint == "significant" && reality.TimeRealistic == "none" && !reality.WillingToCommit:
		return models.ClassUnrealistic
	case reality.TimeRealistic == "none" && !reality.WillingToCommit:
		return models.ClassUnrealistic

	case archetype == models.ArchetypeMisalignment:
		return models.ClassSymbolic
	case !reality.WithoutReward:
		return models.ClassSymbolic
	case intake.Importance <= 4 && intake.Pain <= 4:
		return models.ClassSymbolic

	case reality.TimeRealistic == "none" && reality.WillingToCommit:
		return models.ClassViableMisaligned
	case reality.TimeRealistic == "little" && intake.Importance < 7:
		return models.ClassViableMisaligned
	case reality.ResponsibilityConflict && intake.Importance < 7:
		return models.ClassViableMisaligned

	default:
		return models.ClassViableAligned
	}
}
