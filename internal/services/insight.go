package services

import (
	"fmt"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

var philosophyLines = []string{
	"The reward for a good deed is the opportunity to do another good deed.",
	"Fail fast. Failure is fuel.",
	"One step at a time.",
	"Walk to the end of the road. Look left, right, or straight. If it's a dead end, turn around — then plan your next step.",
	"Faith is taking the next step before you can see the whole map.",
}

// pickPhilosophy selects a line deterministically from the dream id, using a
// 31-multiply hash with 32-bit wraparound. Same id, same line, always.
func pickPhilosophy(seed string) string {
	var hash int32
	for _, c := range seed {
		hash = hash*31 + int32(c)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return philosophyLines[h%int64(len(philosophyLines))]
}

var seenByArchetype = map[string]string{
	models.ArchetypeFearOfVisibility:    "You've been building this in your mind. What scares you isn't failing — it's being seen in the act of trying. Visibility feels like exposure, not expression. So you protect yourself by not starting. The work stays safe in the imagined version, where no one can judge it — and neither can you.",
	models.ArchetypePerfectionistFreeze: "The standard keeps moving. Every time you get close, the bar rises. That's not ambition — it's a delay mechanism wearing ambition's clothes. Perfectionism isn't about quality; it's about never having to find out. The bar can't be met because the bar isn't real.",
	models.ArchetypeOverwhelmFog:        "You're trying to solve a three-year problem in a single mental session. The whole mountain is visible from the bottom, and it's paralyzing. The scope isn't the problem — trying to hold all of it at once is. You don't need the full map. You need the next ten meters.",
	models.ArchetypeIdentityConflict:    "Part of you doesn't believe you're the kind of person who actually does this. You're waiting to become someone else before you start — but the identity comes after the action, not before. No one wakes up as a musician. They wake up and practice.",
	models.ArchetypeFearOfSuccess:       "Even with success guaranteed, you'd still hesitate. That's not fear of failing — that's fear of what would change if this worked. Who you'd have to become. What you'd have to give up. What people would expect. Failing is safe because it changes nothing.",
	models.ArchetypeShameLoop:           "Something happened before — a past attempt, early criticism, a comparison that stuck — and it became evidence. You've been treating one painful moment as a permanent verdict. It isn't. One data point is not a pattern. One chapter is not the book.",
	models.ArchetypeConsistencyCollapse: "You can start. That's not your problem. The problem is the system around starting — or the absence of one. Motivation gets you to the door. It doesn't keep you walking. You've been treating consistency as a character trait when it's actually a design problem.",
	models.ArchetypeMisalignment:        "Part of what you want isn't the dream itself — it's what the dream would say about you. That's not a flaw; most desires have this layer. But when the identity payoff is the main driver, the daily work feels hollow. Worth asking: what do you actually want to be doing on a Tuesday afternoon?",
}

const seenFallback = "You've been carrying this longer than you needed to. The resistance makes sense given everything it's protecting you from. Understanding what it's protecting is the first real step."

func insightSeen(dream *models.Dream) string {
	if text, ok := seenByArchetype[dream.Archetype]; ok {
		return text
	}
	return seenFallback
}

func insightHeld(dream *models.Dream) string {
	delayed := dream.YearsDelayed
	if delayed == "" {
		delayed = "a while"
	}
	if delayed == "< 1 year" {
		delayed = "less than a year"
	}

	switch {
	case dream.GuaranteedHesitate == "yes":
		return fmt.Sprintf("You've carried this for %s. That is not laziness — that is the weight of something that genuinely matters to you. And the fact that you'd still hesitate even if success were guaranteed? That honesty matters. It means the work itself, not just the outcome, is part of what you're working through. Most people never even get this honest about what's actually in the way.", delayed)
	case !dream.WillingToCommit:
		return fmt.Sprintf("You've carried this for %s, and you've been honest: the timeline feels too long to commit to right now. That's not giving up. That's clarity. Deferring consciously — knowing why — is completely different from avoiding unconsciously. You're here, which means you haven't let go of it either.", delayed)
	case dream.TimeRealistic == "none" || dream.TimeRealistic == "little":
		return fmt.Sprintf("You've carried this for %s and you're living a full life with real obligations. The time issue is real. The dream is also real. You don't have to choose one to honor the other right now — you just have to be honest about which one you're choosing, one day at a time.", delayed)
	default:
		return fmt.Sprintf("You've carried this for %s. That's not failure. That's the weight of something that still matters enough to be here. The fact that you're doing this assessment means some part of you hasn't let go — and that part deserves a fair hearing. Today isn't a verdict. It's just information.", delayed)
	}
}

type movedEntry struct {
	action  string
	doorway string
	mode    string
}

var movedByStuckPoint = map[string]movedEntry{
	"starting": {
		action:  "Open a blank document (or notebook page). Write the title of your dream at the top. Nothing else. Close it. That's the session. 3 minutes maximum.",
		doorway: "Physically touch the object most associated with your dream (instrument, notebook, sketchbook, running shoes). Just touch it. That's it.",
		mode:    models.ModeDo,
	},
	"consistency": {
		action:  "Identify the one specific time slot this week — not every day, just one — when you will do 10 minutes on this. Write it down as an appointment. Don't plan the work yet. Just schedule it.",
		doorway: "Set a recurring alarm on your phone labeled with your dream title. Just the alarm. Don't decide what to do with it yet.",
		mode:    models.ModePlan,
	},
	"finishing": {
		action:  "Open whatever you last worked on. Read it, look at it, listen to it — don't edit. Just observe where you actually are. Set a timer for 10 minutes. When it goes off, stop.",
		doorway: "List the three things that would need to happen for this to be 'done.' Just the list. No action required.",
		mode:    models.ModeDo,
	},
	"publishing": {
		action:  "Send your work to one trusted person and ask only: 'Does this make sense?' That's the whole brief. One person. One question.",
		doorway: "Write the title or subject line of the post/upload/send you're avoiding. Just the title. Nowhere to post it yet.",
		mode:    models.ModeAsk,
	},
	"promoting": {
		action:  "Find one person who has done something adjacent to your dream and read about how they started sharing. Just research — no action on your own work yet.",
		doorway: "Write one sentence about what you made and why it exists. Just the sentence. For your eyes only.",
		mode:    models.ModeLearn,
	},
	"committing": {
		action:  "Write this down: 'If I do this for 30 days and it goes nowhere, I will have learned ____.' Fill in the blank. That's the commitment framing — not 'will it succeed' but 'what will I learn.'",
		doorway: "Write the answer to: 'What would trying look like if I wasn't trying to succeed — just trying to find out?' One sentence.",
		mode:    models.ModePlan,
	},
}

var movedFallback = movedEntry{
	action:  "Take 10 minutes and do the first thing that comes to mind when you think about this dream. Not the right thing — just something. Fail fast.",
	doorway: "Write the name of the dream on a piece of paper. Put it somewhere you'll see it tomorrow morning.",
	mode:    models.ModeDo,
}

// insightMoved resolves the under-10-minute action. Combination overrides
// are checked before the stuck-point table; most specific rule wins, same as
// classification.
func insightMoved(dream *models.Dream) movedEntry {
	archetype, stuck := dream.Archetype, dream.StuckPoint

	if archetype == models.ArchetypeFearOfVisibility && stuck == "publishing" {
		return movedEntry{
			action:  "Write an honest caption for your work as if you were talking to one friend who already gets it — not the public. Don't post it. Just write it. 5 minutes.",
			doorway: "Name the specific fear underneath not posting. Write it in one sentence. Private. No action required.",
			mode:    models.ModeDo,
		}
	}
	if archetype == models.ArchetypePerfectionistFreeze && stuck == "finishing" {
		return movedEntry{
			action:  "Set a timer for 10 minutes. Work on your piece with the intention of making it 5% worse on purpose. Ship the imperfect version of one small part.",
			doorway: "Write down three things that are already good about it. Three. Not what's missing — what's there.",
			mode:    models.ModeDo,
		}
	}
	if archetype == models.ArchetypeOverwhelmFog && stuck == "starting" {
		return movedEntry{
			action:  "Write the single smallest action that would count as 'touching' this dream today. The embarrassingly small one. Now do just that one thing.",
			doorway: "Open a note and type: 'The next physical action on my dream is:' Fill in the blank with a verb + object. ('Write opening line.' 'Send email to X.' 'Tune the guitar.')",
			mode:    models.ModeDo,
		}
	}

	if entry, ok := movedByStuckPoint[stuck]; ok {
		return entry
	}
	return movedFallback
}

// GenerateInsight builds the full SEEN / HELD / MOVED summary for a
// classified dream. Pure: same dream, same insight.
func GenerateInsight(dream *models.Dream) models.InsightSummary {
	moved := insightMoved(dream)
	return models.InsightSummary{
		Seen:           insightSeen(dream),
		Held:           insightHeld(dream),
		Moved:          moved.action,
		MovedDoorway:   moved.doorway,
		MovedMode:      moved.mode,
		PhilosophyLine: pickPhilosophy(dream.ID.String()),
	}
}
