package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationMonotonicity(t *testing.T) {
	s := NewState()
	assert.Equal(t, 0, s.Generation())

	for i := 1; i <= 5; i++ {
		s.AddHighlight(StageIdeation, "scope", []string{"fragment"})
		assert.Equal(t, i, s.Generation())
	}
}

func TestHighlightColorRecency(t *testing.T) {
	s := NewState()
	s.AddHighlight(StageIdeation, "scope", []string{"supports offline mode"})

	// Fuzzy containment: the registered item is a substring of the query.
	query := "the app supports offline mode now"
	assert.Equal(t, ColorGreen, s.GetHighlightColor(StageIdeation, "scope", query))

	// A second unrelated registration ages the first to yellow.
	s.AddHighlight(StageActionPlan, "functional_requirements", []string{"RF-001"})
	assert.Equal(t, ColorYellow, s.GetHighlightColor(StageIdeation, "scope", query))

	// A third pushes it past the recency window.
	s.AddHighlight(StageArchitecture, "tech_stack", []string{"PostgreSQL"})
	assert.Equal(t, ColorNone, s.GetHighlightColor(StageIdeation, "scope", query))
}

func TestHighlightColorNoMatch(t *testing.T) {
	s := NewState()
	s.AddHighlight(StageIdeation, "scope", []string{"offline mode"})

	assert.Equal(t, ColorNone, s.GetHighlightColor(StageIdeation, "scope", "completely unrelated"))
	assert.Equal(t, ColorNone, s.GetHighlightColor(StageIdeation, "objective", "offline mode"))
	assert.Equal(t, ColorNone, s.GetHighlightColor(StageActionPlan, "scope", "offline mode"))
}

func TestReverseContainmentMatch(t *testing.T) {
	s := NewState()
	s.AddHighlight(StageIdeation, "problem", []string{"students struggle to find affordable design tools"})

	// Query is a substring of the registered item.
	assert.Equal(t, ColorGreen, s.GetHighlightColor(StageIdeation, "problem", "affordable design tools"))
}

func TestModuleUpdateIdempotence(t *testing.T) {
	s := NewState()

	s.AddModuleUpdate(StageActionPlan)
	s.AddModuleUpdate(StageActionPlan)
	snap := s.Snapshot()
	assert.Equal(t, []Stage{StageActionPlan}, snap.ModulesWithUpdates)

	// Clearing an absent stage is a no-op.
	s.ClearModuleUpdate(StageArchitecture)
	assert.True(t, s.HasModuleUpdate(StageActionPlan))

	s.ClearModuleUpdate(StageActionPlan)
	s.ClearModuleUpdate(StageActionPlan)
	assert.False(t, s.HasModuleUpdate(StageActionPlan))
	assert.Empty(t, s.Snapshot().ModulesWithUpdates)
}

func TestIncrementGenerationAgesHighlights(t *testing.T) {
	s := NewState()
	s.AddHighlight(StageIdeation, "title", []string{"Idea Forge"})
	assert.Equal(t, ColorGreen, s.GetHighlightColor(StageIdeation, "title", "Idea Forge"))

	s.IncrementGeneration()
	assert.Equal(t, ColorYellow, s.GetHighlightColor(StageIdeation, "title", "Idea Forge"))
}

func TestSubscribeNotifiesOnMutation(t *testing.T) {
	s := NewState()

	var got []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	s.AddModuleUpdate(StageIdeation)
	s.AddHighlight(StageIdeation, "scope", []string{"x"})
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[1].CurrentGeneration)

	unsubscribe()
	s.IncrementGeneration()
	assert.Len(t, got, 2)
}

func TestReset(t *testing.T) {
	s := NewState()
	s.AddModuleUpdate(StageArchitecture)
	s.AddHighlight(StageIdeation, "scope", []string{"x"})

	s.Reset()

	assert.Equal(t, 0, s.Generation())
	assert.Empty(t, s.Snapshot().ModulesWithUpdates)
	assert.Empty(t, s.SectionHighlights(StageIdeation, "scope"))
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewState()
	s.AddHighlight(StageIdeation, "scope", []string{"original"})

	snap := s.Snapshot()
	snap.Highlights["ideation"]["scope"][0].Text = "mutated"

	assert.Equal(t, "original", s.SectionHighlights(StageIdeation, "scope")[0].Text)
}
