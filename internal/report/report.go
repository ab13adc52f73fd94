// Package report renders a structured session result into the fixed-layout
// plain-text report offered to respondents as a downloadable file. The
// section order and labels are byte-significant: downstream tooling diffs and
// parses the rendered text, so they must not drift.
package report

import (
	"fmt"
	"strings"

	"github.com/talentgauge/assess-engine/internal/scoring"
)

const (
	ruleHeavy = "============================================================"
	ruleLight = "------------------------------------------------------------"

	timeLayout = "2006-01-02 15:04:05"
)

// Render builds the report text for a scored session. Pure string
// construction, no I/O. Sections appear in fixed order: header, logic
// summary, trait summary, overall evaluation, disclaimer; sub-result
// sections are omitted when the instrument did not produce them.
func Render(result *scoring.SessionResult) string {
	var b strings.Builder

	b.WriteString(ruleHeavy + "\n")
	b.WriteString("           Assessment Result Report\n")
	b.WriteString(ruleHeavy + "\n")
	fmt.Fprintf(&b, "Name:       %s\n", result.RespondentName)
	fmt.Fprintf(&b, "Completed:  %s\n", result.CompletedAt.Format(timeLayout))
	fmt.Fprintf(&b, "Duration:   %d minutes\n", result.DurationSeconds/60)
	fmt.Fprintf(&b, "Session:    %s\n", result.SessionID)
	b.WriteString(ruleLight + "\n")

	if result.Logic != nil {
		writeLogicSection(&b, result.Logic)
	}
	if result.Traits != nil {
		writeTraitSection(&b, result.Traits)
	}

	b.WriteString("\nIII. Overall Evaluation\n\n")
	b.WriteString(result.OverallSummary + "\n")
	b.WriteString("\n" + ruleLight + "\n")

	b.WriteString("\nImportant notice:\n")
	b.WriteString("This report is generated from the answers given during the session and\n")
	b.WriteString("is intended as a reference only. The results are not a final judgement\n")
	b.WriteString("of personal ability; they should be weighed together with practical\n")
	b.WriteString("experience, professional skills and day-to-day performance.\n")
	b.WriteString("\n" + ruleHeavy + "\n")
	b.WriteString("                  --- End of Report ---\n")
	b.WriteString(ruleHeavy + "\n")

	return b.String()
}

func writeLogicSection(b *strings.Builder, logic *scoring.LogicResult) {
	b.WriteString("\nI. Logical Reasoning Results\n\n")
	fmt.Fprintf(b, "Total questions: %d\n", logic.Total)
	fmt.Fprintf(b, "Correct:         %d\n", logic.Correct)
	fmt.Fprintf(b, "Wrong:           %d\n", logic.Wrong)
	fmt.Fprintf(b, "Accuracy:        %.1f%%\n", logic.Accuracy)
	fmt.Fprintf(b, "\nRating: %s\n", scoring.LogicTier(logic.Accuracy))
	b.WriteString("\n" + ruleLight + "\n")
}

func writeTraitSection(b *strings.Builder, traits *scoring.TraitResult) {
	b.WriteString("\nII. Personality Trait Results\n\n")

	b.WriteString("Score overview:\n")
	for _, t := range traits.Ranked {
		fmt.Fprintf(b, " - %s: %.0f\n", t.Name, t.Score)
	}

	b.WriteString("\nDominant traits:\n")
	if len(traits.Dominant) == 0 {
		b.WriteString(" (none reached the selection threshold)\n")
	}
	for i, t := range traits.Dominant {
		fmt.Fprintf(b, "%d. %s (%.1f%%)\n", i+1, t.Name, t.Percentage*100)
	}

	if len(traits.Characteristics) > 0 {
		b.WriteString("\nKey characteristics:\n")
		for _, c := range traits.Characteristics {
			fmt.Fprintf(b, " * %s\n", c)
		}
	}

	if len(traits.Occupations) > 0 {
		b.WriteString("\nRecommended occupations:\n")
		for _, occ := range traits.Occupations {
			fmt.Fprintf(b, " - %s\n", occ)
		}
	}

	b.WriteString("\nTrait analysis:\n")
	b.WriteString(traits.Summary + "\n")
	b.WriteString("\n" + ruleLight + "\n")
}
