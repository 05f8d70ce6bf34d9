package services

import (
	"fmt"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

// MicroSteps returns the fixed per-archetype starter list with the dream's
// title and category substituted in. Unknown archetypes fall back to the
// Overwhelm Fog list.
func MicroSteps(archetype, title, category string) []string {
	d := title
	if d == "" {
		d = "your project"
	}

	steps := map[string][]string{
		models.ArchetypeFearOfVisibility: {
			fmt.Sprintf("Write about %s in a private document — no audience, no stakes, no performance", d),
			"Share one small piece of work with exactly one person you trust completely, with no expectation of feedback",
			"Make something deliberately imperfect. Finish it. Don't show it yet — just prove you can complete",
			"Write down the specific fear: what exactly do you imagine happening when people see this?",
		},
		models.ArchetypePerfectionistFreeze: {
			fmt.Sprintf("Set a 25-minute timer. Work on %s. Stop when it rings, complete or not", d),
			"Define \"good enough to proceed\" in one sentence before your next session",
			"Create a rough, unpolished version of one part. Call it your ugly draft — that's the goal",
			"List every standard you're trying to meet. Circle the ones that actually matter to the work",
		},
		models.ArchetypeOverwhelmFog: {
			"Write only the very next physical action — not the project, not the phase, just 15 minutes of work",
			"Spend 20 minutes listing everything you think you'd need to do, then circle only the first three",
			"Find one person who has started something similar and read or watch how they began",
			fmt.Sprintf("Break %s into exactly three phases. What is phase one, at its smallest?", d),
		},
		models.ArchetypeIdentityConflict: {
			fmt.Sprintf("Write: \"A person who does %s for real would...\" and complete the sentence without filtering", category),
			fmt.Sprintf("Do one private act related to %s that no one will see, judge, or know about", d),
			"Write about why this matters to you — not to prove it to anyone, just to understand it yourself",
			"Explore who you'd have to stop being (or pretending to be) if you pursued this",
		},
		models.ArchetypeFearOfSuccess: {
			fmt.Sprintf("Write the most realistic version of your life if %s works — including what changes and what gets harder", d),
			"Identify one specific thing you'd have to give up or renegotiate if this succeeded. Sit with it",
			"Take the smallest possible forward action — reversible, low-stakes, and private",
			"Write: \"If this succeeds, the thing I'm most afraid of is...\" Be specific",
		},
		models.ArchetypeShameLoop: {
			"Write a short letter to yourself about the last time you tried this and stopped — without judgment",
			"Name the specific story you carry about why you failed before. Write what was actually true",
			"Do one small thing that reclaims forward motion — not a big step, just proof you can move",
			"Separate what happened from what it means about you. Write both columns honestly",
		},
		models.ArchetypeConsistencyCollapse: {
			fmt.Sprintf("Commit to 15 minutes on %s at the same time for the next 7 days — nothing more", d),
			"Identify the exact moment you usually quit. Write down what you'll do instead at that moment",
			"Reduce friction: prepare everything you need the night before so starting costs you nothing",
			"Define what \"showing up\" means on a hard day — the minimum viable version",
		},
		models.ArchetypeMisalignment: {
			fmt.Sprintf("Write: \"What I actually want from %s is...\" and answer without using the dream itself", d),
			"Separate what you want (status, feeling, identity, output) from the specific form you've attached to it",
			"Explore one adjacent thing that gives you the same feeling — without the weight of this dream",
			"Write honestly: if no one ever knew you pursued this, would you still want to?",
		},
	}

	if list, ok := steps[archetype]; ok {
		return list
	}
	return steps[models.ArchetypeOverwhelmFog]
}
