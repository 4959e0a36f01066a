package explain

import (
	"strings"
	"testing"

	"github.com/abhisek/numsense/internal/analysis"
)

func TestNarrativeHasThreeSections(t *testing.T) {
	res := analysis.Result{
		Pattern: analysis.PatternUnclear,
		SubScores: map[string]float64{
			"quantity": 50, "comparison": 50, "symbol": 40, "improvement": 0.05,
		},
	}

	got := Narrative(res)
	if n := len(strings.Split(got, "\n\n")); n != 3 {
		t.Fatalf("expected 3 sections, got %d:\n%s", n, got)
	}
}

func TestNarrativeDefaultStrength(t *testing.T) {
	// Nothing crosses a strength threshold: the fixed fallback opener.
	res := analysis.Result{
		Pattern: analysis.PatternUnclear,
		SubScores: map[string]float64{
			"quantity": 30, "comparison": 30, "symbol": 30, "improvement": 0,
		},
	}

	got := Narrative(res)
	if !strings.HasPrefix(got, "The child engaged calmly with the number activities") {
		t.Fatalf("missing fallback strength opener:\n%s", got)
	}
}

func TestNarrativeListsStrengths(t *testing.T) {
	res := analysis.Result{
		Pattern: analysis.PatternExposureRelated,
		SubScores: map[string]float64{
			"quantity": 75, "comparison": 70, "symbol": 60, "improvement": 0.3,
		},
	}

	got := Narrative(res)
	for _, want := range []string{
		"showed quick learning when given repeated chances",
		"demonstrated solid understanding of small quantities",
		"could reliably tell which groups were larger",
		"made connections between objects and symbols",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing strength %q", want)
		}
	}
}

func TestNarrativeExposurePattern(t *testing.T) {
	res := analysis.Result{
		Pattern: analysis.PatternExposureRelated,
		SubScores: map[string]float64{
			"quantity": 70, "comparison": 70, "symbol": 45, "improvement": 0.4,
		},
	}

	got := Narrative(res)
	if !strings.Contains(got, "their understanding improved quickly") {
		t.Errorf("missing quick-improvement clause:\n%s", got)
	}
	// Low symbol score triggers the familiarity note.
	if !strings.Contains(got, "Symbols appeared to be less familiar than physical objects") {
		t.Errorf("missing symbol familiarity clause:\n%s", got)
	}
	if !strings.Contains(got, "Point out numbers in books, signs, and around the home") {
		t.Errorf("missing exposure next step:\n%s", got)
	}
}

func TestNarrativePossibleSignalPattern(t *testing.T) {
	res := analysis.Result{
		Pattern: analysis.PatternPossibleSignal,
		SubScores: map[string]float64{
			"quantity": 55, "comparison": 55, "symbol": 35, "improvement": 0,
		},
	}

	got := Narrative(res)
	if !strings.Contains(got, "Difficulties with number symbols remained even after repeated practice") {
		t.Errorf("missing symbol difficulty clause:\n%s", got)
	}
	// The recommendations escalate to a specialist for this pattern only.
	if !strings.Contains(got, "Consider speaking with a learning specialist") {
		t.Errorf("missing specialist suggestion:\n%s", got)
	}
}

func TestNarrativeSignalPrefersQuantityClauseWhenSymbolOK(t *testing.T) {
	res := analysis.Result{
		Pattern: analysis.PatternPossibleSignal,
		SubScores: map[string]float64{
			"quantity": 35, "comparison": 55, "symbol": 55, "improvement": 0,
		},
	}

	got := Narrative(res)
	if !strings.Contains(got, "Even small quantities were challenging to recognize consistently") {
		t.Errorf("missing quantity clause:\n%s", got)
	}
	if strings.Contains(got, "Difficulties with number symbols") {
		t.Errorf("symbol clause should not fire at symbol=55:\n%s", got)
	}
}

func TestNarrativeUnclearPattern(t *testing.T) {
	res := analysis.Result{
		Pattern: analysis.PatternUnclear,
		SubScores: map[string]float64{
			"quantity": 50, "comparison": 50, "symbol": 45, "improvement": 0.05,
		},
	}

	got := Narrative(res)
	if !strings.Contains(got, "a mix of strengths and challenges") {
		t.Errorf("missing unclear opener:\n%s", got)
	}
	if !strings.Contains(got, "Practice helped, but improvements were gradual.") {
		t.Errorf("missing gradual-improvement clause:\n%s", got)
	}
	if !strings.Contains(got, "Follow the child's interest and pace") {
		t.Errorf("missing default next step:\n%s", got)
	}
}

func TestNarrativeInsufficientDataUsesDefaults(t *testing.T) {
	// The insufficient_data pattern renders through the default branches
	// without panicking on the empty sub-score map.
	got := Narrative(analysis.Result{
		Pattern:   analysis.PatternInsufficientData,
		SubScores: map[string]float64{},
	})
	if !strings.Contains(got, "Suggestions for supporting number development:") {
		t.Fatalf("missing suggestions header:\n%s", got)
	}
}
