package service

import (
	"testing"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/repository/memory"
	"idea-forge-be/pkg/propagation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotColorsAgeAcrossGenerations(t *testing.T) {
	repo := memory.NewPropagationRepository()
	svc := NewPropagationService(repo)
	userId := uuid.New()

	state := repo.GetOrCreate(userId.String())
	state.AddHighlight(propagation.StageActionPlan, "functional_requirements", []string{"RF-004 Suggest family meals."})
	state.AddHighlight(propagation.StageActionPlan, "functional_requirements", []string{"RF-005 Exclude allergens."})
	state.AddModuleUpdate(propagation.StageActionPlan)

	resp := svc.Snapshot(userId)

	require.Contains(t, resp.Highlights, 2)
	items := resp.Highlights[2]["functional_requirements"]
	require.Len(t, items, 2)

	byText := map[string]dto.SectionHighlightResponse{}
	for _, it := range items {
		byText[it.Text] = it
	}
	assert.Equal(t, string(propagation.ColorYellow), byText["RF-004 Suggest family meals."].Color)
	assert.Equal(t, string(propagation.ColorGreen), byText["RF-005 Exclude allergens."].Color)
	assert.Equal(t, []int{2}, resp.ModulesWithUpdates)
}

func TestVisitStageClearsUnreadMarker(t *testing.T) {
	repo := memory.NewPropagationRepository()
	svc := NewPropagationService(repo)
	userId := uuid.New()

	state := repo.GetOrCreate(userId.String())
	state.AddModuleUpdate(propagation.StageActionPlan)
	state.AddModuleUpdate(propagation.StageArchitecture)

	resp := svc.VisitStage(userId, 2)

	assert.Equal(t, []int{3}, resp.ModulesWithUpdates)
	assert.False(t, state.HasModuleUpdate(propagation.StageActionPlan))
}

func TestRenderSplitsHighlightedFragments(t *testing.T) {
	repo := memory.NewPropagationRepository()
	svc := NewPropagationService(repo)
	userId := uuid.New()

	state := repo.GetOrCreate(userId.String())
	state.AddHighlight(propagation.StageIdeation, "objective", []string{"busy families"})

	resp, err := svc.Render(userId, &dto.RenderRequest{
		Stage:   1,
		Section: "objective",
		Text:    "Plan meals for busy families every week.",
	})
	require.NoError(t, err)

	require.Len(t, resp.Fragments, 3)
	assert.Equal(t, "Plan meals for ", resp.Fragments[0].Text)
	assert.Equal(t, string(propagation.ColorNone), resp.Fragments[0].Color)
	assert.Equal(t, "busy families", resp.Fragments[1].Text)
	assert.Equal(t, string(propagation.ColorGreen), resp.Fragments[1].Color)
	assert.Equal(t, " every week.", resp.Fragments[2].Text)
}

func TestRenderRejectsUnknownSection(t *testing.T) {
	svc := NewPropagationService(memory.NewPropagationRepository())

	_, err := svc.Render(uuid.New(), &dto.RenderRequest{Stage: 1, Section: "tech_stack", Text: "x"})
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestResetSessionDropsState(t *testing.T) {
	repo := memory.NewPropagationRepository()
	svc := NewPropagationService(repo)
	userId := uuid.New()

	state := repo.GetOrCreate(userId.String())
	state.IncrementGeneration()
	svc.ResetSession(userId)

	fresh := repo.GetOrCreate(userId.String())
	assert.Equal(t, 0, fresh.Generation())
}
