// Package explain renders classifier output as a tiered narrative for
// parents and educators. Purely deterministic text assembly; it never
// recomputes anything from the attempt log.
package explain

import (
	"strings"

	"github.com/abhisek/numsense/internal/analysis"
)

// Narrative builds the three-section explanation: strengths first, then
// the main findings, then recommendations. Sections are separated by
// blank lines.
func Narrative(res analysis.Result) string {
	sections := []string{
		strengthSection(res.SubScores),
		mainSection(res.Pattern, res.SubScores),
		nextStepsSection(res.Pattern),
	}
	return strings.Join(sections, "\n\n")
}

func strengthSection(subScores map[string]float64) string {
	var strengths []string

	if subScores["improvement"] > 0.15 {
		strengths = append(strengths, "showed quick learning when given repeated chances")
	}
	if subScores["quantity"] > 60 {
		strengths = append(strengths, "demonstrated solid understanding of small quantities")
	}
	if subScores["comparison"] > 60 {
		strengths = append(strengths, "could reliably tell which groups were larger")
	}
	if subScores["symbol"] > 50 {
		strengths = append(strengths, "made connections between objects and symbols")
	}

	if len(strengths) == 0 {
		return "The child engaged calmly with the number activities and showed willingness to participate."
	}
	return "The child " + strings.Join(strengths, ", ") + "."
}

func mainSection(pattern analysis.Pattern, subScores map[string]float64) string {
	switch pattern {
	case analysis.PatternExposureRelated:
		section := "The child needed some time to become familiar with number activities, "
		if subScores["improvement"] > 0.2 {
			section += "and once they had a few chances to explore, their understanding improved quickly. "
		} else {
			section += "which is common at this age when children are still building their number experiences. "
		}
		section += "This suggests that their number skills are still developing through experience. "
		if subScores["symbol"] < 50 {
			section += "Symbols appeared to be less familiar than physical objects, which is typical for younger children. "
		}
		return section

	case analysis.PatternPossibleSignal:
		section := "The child was comfortable with some number activities but began to struggle in specific areas. "
		switch {
		case subScores["symbol"] < 40:
			section += "Difficulties with number symbols remained even after repeated practice, which suggests that numbers may not feel intuitive yet. "
		case subScores["quantity"] < 40:
			section += "Even small quantities were challenging to recognize consistently, which may indicate that number sense needs additional support. "
		case subScores["comparison"] < 40:
			section += "Comparing groups of objects remained difficult even with large differences between them. "
		}
		section += "These patterns suggest the child may benefit from learning approaches that use more visual, hands-on support. "
		return section

	default:
		section := "The child showed a mix of strengths and challenges during the activities. "
		if subScores["improvement"] < 0.1 {
			section += "Practice helped, but improvements were gradual. "
		}
		section += "More playful exposure to numbers in everyday situations would help build confidence and familiarity. "
		return section
	}
}

func nextStepsSection(pattern analysis.Pattern) string {
	var b strings.Builder
	b.WriteString("Suggestions for supporting number development:\n")
	b.WriteString("- Play counting games with everyday objects like toys, stairs, or snacks\n")

	switch pattern {
	case analysis.PatternExposureRelated:
		b.WriteString("- Point out numbers in books, signs, and around the home\n")
		b.WriteString("- Use hands-on activities like sorting, stacking, and building\n")
		b.WriteString("- Keep activities short, playful, and pressure-free\n")
	case analysis.PatternPossibleSignal:
		b.WriteString("- Use visual representations like dot patterns and number lines\n")
		b.WriteString("- Break number activities into very small, manageable steps\n")
		b.WriteString("- Allow extra time and provide reassurance during number activities\n")
		b.WriteString("- Consider speaking with a learning specialist for additional guidance\n")
	default:
		b.WriteString("- Continue with playful, low-pressure number activities\n")
		b.WriteString("- Follow the child's interest and pace\n")
		b.WriteString("- Celebrate small successes and keep things fun\n")
	}

	return b.String()
}
