package propagation

import (
	"strings"
	"testing"
)

func TestFragmentsPartition(t *testing.T) {
	tests := []struct {
		name       string
		highlights []string
		text       string
		wantRuns   int
	}{
		{
			name:       "no highlights fast path",
			highlights: nil,
			text:       "Users can log in.",
			wantRuns:   1,
		},
		{
			name:       "single match mid-text",
			highlights: []string{"reset passwords"},
			text:       "Users can log in and reset passwords.",
			wantRuns:   3,
		},
		{
			name:       "match at start",
			highlights: []string{"Users"},
			text:       "Users can log in.",
			wantRuns:   2,
		},
		{
			name:       "match at end",
			highlights: []string{"log in."},
			text:       "Users can log in.",
			wantRuns:   2,
		},
		{
			name:       "vanished highlight skipped",
			highlights: []string{"no longer present"},
			text:       "Users can log in.",
			wantRuns:   1,
		},
		{
			name:       "empty text",
			highlights: []string{"anything"},
			text:       "",
			wantRuns:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			if len(tt.highlights) > 0 {
				s.AddHighlight(StageActionPlan, "functional_requirements", tt.highlights)
			}

			frags := s.Fragments(StageActionPlan, "functional_requirements", tt.text)

			if len(frags) != tt.wantRuns {
				t.Errorf("runs = %d, want %d (%v)", len(frags), tt.wantRuns, frags)
			}

			var rebuilt strings.Builder
			for _, f := range frags {
				rebuilt.WriteString(f.Text)
			}
			if rebuilt.String() != tt.text {
				t.Errorf("partition broken: %q != %q", rebuilt.String(), tt.text)
			}
		})
	}
}

func TestFragmentsColors(t *testing.T) {
	s := NewState()
	s.AddHighlight(StageActionPlan, "functional_requirements", []string{"reset passwords"})

	frags := s.Fragments(StageActionPlan, "functional_requirements", "Users can log in and reset passwords.")

	want := []Fragment{
		{Text: "Users can log in and ", Color: ColorNone},
		{Text: "reset passwords", Color: ColorGreen},
		{Text: ".", Color: ColorNone},
	}
	if len(frags) != len(want) {
		t.Fatalf("fragments = %v, want %v", frags, want)
	}
	for i := range want {
		if frags[i] != want[i] {
			t.Errorf("fragment %d = %+v, want %+v", i, frags[i], want[i])
		}
	}
}

func TestFragmentsLongestMatchFirst(t *testing.T) {
	s := NewState()
	// The short item is registered first but must not pre-empt the longer one.
	s.AddHighlight(StageIdeation, "scope", []string{"offline"})
	s.AddHighlight(StageIdeation, "scope", []string{"offline mode with sync"})

	frags := s.Fragments(StageIdeation, "scope", "supports offline mode with sync today")

	found := false
	for _, f := range frags {
		if f.Text == "offline mode with sync" {
			found = true
			if f.Color != ColorGreen {
				t.Errorf("long match color = %s, want green", f.Color)
			}
		}
		if f.Text == "offline" {
			t.Errorf("short item pre-empted the longer overlapping match")
		}
	}
	if !found {
		t.Fatalf("longest match not emitted: %v", frags)
	}
}

func TestFragmentsMultipleGenerations(t *testing.T) {
	s := NewState()
	s.AddHighlight(StageArchitecture, "tech_stack", []string{"PostgreSQL"})
	s.AddHighlight(StageArchitecture, "tech_stack", []string{"Redis"})

	frags := s.Fragments(StageArchitecture, "tech_stack", "PostgreSQL plus Redis for caching")

	colors := map[string]Color{}
	for _, f := range frags {
		colors[f.Text] = f.Color
	}
	if colors["Redis"] != ColorGreen {
		t.Errorf("Redis color = %s, want green", colors["Redis"])
	}
	if colors["PostgreSQL"] != ColorYellow {
		t.Errorf("PostgreSQL color = %s, want yellow", colors["PostgreSQL"])
	}
}
