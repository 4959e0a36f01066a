package features

import "testing"

func TestShouldExtendTesting(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		confidence  float64
		count       int
		want        Decision
	}{
		{
			name:        "high probability asks for the full extension",
			probability: 0.65, confidence: 0.8, count: 0,
			want: Decision{ShouldContinue: true, AdditionalTests: 9},
		},
		{
			name:        "high probability respects remaining room",
			probability: 0.65, confidence: 0.8, count: 15,
			want: Decision{ShouldContinue: true, AdditionalTests: 5},
		},
		{
			name:        "moderate probability with low confidence",
			probability: 0.45, confidence: 0.3, count: 0,
			want: Decision{ShouldContinue: true, AdditionalTests: 5},
		},
		{
			name:        "moderate probability with settled confidence",
			probability: 0.45, confidence: 0.9, count: 0,
			want: Decision{ShouldContinue: true, AdditionalTests: 3},
		},
		{
			name:        "low probability but undecided",
			probability: 0.2, confidence: 0.3, count: 0,
			want: Decision{ShouldContinue: true, AdditionalTests: 4},
		},
		{
			name:        "low probability and confident: stop",
			probability: 0.2, confidence: 0.9, count: 0,
			want: Decision{},
		},
		{
			name:        "ceiling reached: never continue",
			probability: 0.9, confidence: 1, count: MaxTests,
			want: Decision{},
		},
		{
			name:        "one slot left",
			probability: 0.9, confidence: 1, count: MaxTests - 1,
			want: Decision{ShouldContinue: true, AdditionalTests: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ShouldExtendTesting(tc.probability, tc.confidence, tc.count)
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
