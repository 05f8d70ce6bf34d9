package services

import "github.com/Davidkingreuben/Dreamcoach/internal/models"

// ArchetypeInfo is presentation metadata for a resistance archetype.
type ArchetypeInfo struct {
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

var archetypeCatalog = map[string]ArchetypeInfo{
	models.ArchetypeFearOfVisibility: {
		Tagline:     "You can create. You can't be seen.",
		Description: "Your work exists — but sharing it triggers something primal. Visibility feels like exposure, not expression.",
	},
	models.ArchetypePerfectionistFreeze: {
		Tagline:     "Nothing is ever ready enough.",
		Description: "You raise the bar every time you get close. Perfection isn't a standard — it's a delay mechanism.",
	},
	models.ArchetypeOverwhelmFog: {
		Tagline:     "The scope swallows you before you begin.",
		Description: "You see the whole mountain, not the next step. The gap between where you are and where you want to be feels uncrossable.",
	},
	models.ArchetypeIdentityConflict: {
		Tagline:     "Who am I to do this?",
		Description: "This dream doesn't fit the self-concept you currently inhabit. Pursuing it means becoming someone different — and that's terrifying.",
	},
	models.ArchetypeFearOfSuccess: {
		Tagline:     "What changes if this actually works?",
		Description: "Failure is familiar. Success would reorganize your life, relationships, and identity in ways you haven't fully faced.",
	},
	models.ArchetypeShameLoop: {
		Tagline:     "Past attempts haunt this one.",
		Description: "You've tried before and it didn't work. Now shame sits at the entrance. The past is preventing the present.",
	},
	models.ArchetypeConsistencyCollapse: {
		Tagline:     "You start strong. You can't sustain.",
		Description: "Initial energy is real — but something breaks at the 2-week mark. This is about systems, not willpower.",
	},
	models.ArchetypeMisalignment: {
		Tagline:     "This may not actually be your dream.",
		Description: "Something about this draws you, but you're not sure it's really yours. It might be borrowed desire, or a symbol of something else entirely.",
	},
}

// ArchetypeCatalog returns the metadata entry for an archetype, if defined.
func ArchetypeCatalog(archetype string) (ArchetypeInfo, bool) {
	info, ok := archetypeCatalog[archetype]
	return info, ok
}

var stuckPhaseByPoint = map[string]string{
	"starting":    models.PhaseFirstStepResistance,
	"committing":  models.PhasePreparation,
	"consistency": models.PhaseMomentum,
	"finishing":   models.PhasePrePublishPanic,
	"publishing":  models.PhasePrePublishPanic,
	"promoting":   models.PhasePrePublishPanic,
}

// DetermineArchetype maps resistance answers to an archetype. The rule list
// is ordered; the first matching rule wins. Every input — including empty or
// unknown answer values — lands on a defined archetype.
func DetermineArchetype(a models.ResistanceAnswers) string {
	switch {
	case a.Protecting == "identity":
		return models.ArchetypeIdentityConflict
	case a.Emotion == "shame":
		return models.ArchetypeShameLoop
	case a.Emotion == "boredom" || a.Emotion == "numbness":
		return models.ArchetypeMisalignment
	case (a.StuckPoint == "publishing" || a.StuckPoint == "promoting") &&
		(a.Emotion == "fear" || a.FirstThought == "judgment"):
		return models.ArchetypeFearOfVisibility
	case a.FirstThought == "not_enough" || a.StuckPoint == "finishing":
		return models.ArchetypePerfectionistFreeze
	case a.FirstThought == "judgment":
		return models.ArchetypeFearOfVisibility
	case a.Emotion == "overwhelm" || a.FirstThought == "no_start" || a.StuckPoint == "starting":
		return models.ArchetypeOverwhelmFog
	case a.GuaranteedHesitate == "yes" && a.Protecting == "comfort":
		return models.ArchetypeFearOfSuccess
	case a.StuckPoint == "consistency":
		return models.ArchetypeConsistencyCollapse
	case a.FirstThought == "too_late":
		return models.ArchetypeShameLoop
	case a.FirstThought == "wont_matter":
		return models.ArchetypeMisalignment
	default:
		return models.ArchetypePerfectionistFreeze
	}
}

// DetermineStuckPhase maps a stuck point to its phase. Unmapped or empty
// input means the dream is dormant.
func DetermineStuckPhase(stuckPoint string) string {
	if phase, ok := stuckPhaseByPoint[stuckPoint]; ok {
		return phase
	}
	return models.PhaseDormancy
}
