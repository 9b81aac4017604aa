package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/repository/contract"
	"idea-forge-be/internal/repository/memory"
	"idea-forge-be/internal/repository/specification"
	"idea-forge-be/internal/repository/unitofwork"
	"idea-forge-be/pkg/agent"
	"idea-forge-be/pkg/llm"
	"idea-forge-be/pkg/propagation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider returns canned responses in order and counts calls.
type scriptedProvider struct {
	responses []string
	err       error
	calls     int
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	if len(p.responses) == 0 {
		return "", errors.New("scriptedProvider: no responses left")
	}
	res := p.responses[0]
	p.responses = p.responses[1:]
	return res, nil
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.Generate(ctx, "", options...)
}

// fakeUnitOfWork keeps one project's records in memory and records writes.
type fakeUnitOfWork struct {
	idea *entity.Idea
	plan *entity.ActionPlan
	arch *entity.Architecture

	stageMessages []*entity.StageMessage

	planUpdates int
	archUpdates int
	ideaUpdates int

	failPlanUpdate bool
}

func (f *fakeUnitOfWork) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f }

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository { return nil }
func (f *fakeUnitOfWork) DevelopmentModuleRepository() contract.DevelopmentModuleRepository {
	return nil
}
func (f *fakeUnitOfWork) GlobalChatRepository() contract.GlobalChatRepository     { return nil }
func (f *fakeUnitOfWork) IdeaEmbeddingRepository() contract.IdeaEmbeddingRepository { return nil }

func (f *fakeUnitOfWork) IdeaRepository() contract.IdeaRepository {
	return &fakeIdeaRepo{uow: f}
}
func (f *fakeUnitOfWork) ActionPlanRepository() contract.ActionPlanRepository {
	return &fakePlanRepo{uow: f}
}
func (f *fakeUnitOfWork) ArchitectureRepository() contract.ArchitectureRepository {
	return &fakeArchRepo{uow: f}
}
func (f *fakeUnitOfWork) StageMessageRepository() contract.StageMessageRepository {
	return &fakeStageMessageRepo{uow: f}
}

type fakeIdeaRepo struct{ uow *fakeUnitOfWork }

func (r *fakeIdeaRepo) Create(ctx context.Context, idea *entity.Idea) error { return nil }
func (r *fakeIdeaRepo) Update(ctx context.Context, idea *entity.Idea) error {
	r.uow.ideaUpdates++
	r.uow.idea = idea
	return nil
}
func (r *fakeIdeaRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeIdeaRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Idea, error) {
	return r.uow.idea, nil
}
func (r *fakeIdeaRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Idea, error) {
	return nil, nil
}
func (r *fakeIdeaRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakePlanRepo struct{ uow *fakeUnitOfWork }

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.ActionPlan) error { return nil }
func (r *fakePlanRepo) Update(ctx context.Context, plan *entity.ActionPlan) error {
	if r.uow.failPlanUpdate {
		return errors.New("forced plan write failure")
	}
	r.uow.planUpdates++
	r.uow.plan = plan
	return nil
}
func (r *fakePlanRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakePlanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionPlan, error) {
	return r.uow.plan, nil
}
func (r *fakePlanRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionPlan, error) {
	return nil, nil
}
func (r *fakePlanRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.uow.plan != nil {
		return 1, nil
	}
	return 0, nil
}

type fakeArchRepo struct{ uow *fakeUnitOfWork }

func (r *fakeArchRepo) Create(ctx context.Context, arch *entity.Architecture) error { return nil }
func (r *fakeArchRepo) Update(ctx context.Context, arch *entity.Architecture) error {
	r.uow.archUpdates++
	r.uow.arch = arch
	return nil
}
func (r *fakeArchRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeArchRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Architecture, error) {
	return r.uow.arch, nil
}
func (r *fakeArchRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Architecture, error) {
	return nil, nil
}
func (r *fakeArchRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.uow.arch != nil {
		return 1, nil
	}
	return 0, nil
}

type fakeStageMessageRepo struct{ uow *fakeUnitOfWork }

func (r *fakeStageMessageRepo) Create(ctx context.Context, msg *entity.StageMessage) error {
	r.uow.stageMessages = append(r.uow.stageMessages, msg)
	return nil
}
func (r *fakeStageMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StageMessage, error) {
	return r.uow.stageMessages, nil
}
func (r *fakeStageMessageRepo) DeleteByIdeaId(ctx context.Context, ideaId uuid.UUID) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, msg string, details map[string]interface{}) {}
func (nopLogger) Info(module, msg string, details map[string]interface{})  {}
func (nopLogger) Warn(module, msg string, details map[string]interface{})  {}
func (nopLogger) Error(module, msg string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                              { return nil }

func fullProject(userId uuid.UUID) *fakeUnitOfWork {
	ideaId := uuid.New()
	planId := uuid.New()
	return &fakeUnitOfWork{
		idea: &entity.Idea{
			Id:        ideaId,
			UserId:    userId,
			Title:     "Meal planner",
			Objective: "Help families plan weekly meals.",
			Problem:   "Planning takes too long.",
			Scope:     "Web app MVP.",
			Completed: true,
			CreatedAt: time.Now(),
		},
		plan: &entity.ActionPlan{
			Id:                        planId,
			IdeaId:                    ideaId,
			UserId:                    userId,
			Status:                    entity.ActionPlanStatusReady,
			FunctionalRequirements:    "RF-001 Plan meals per week.",
			NonFunctionalRequirements: "RNF-001 Load under 2 seconds.",
			BusinessLogicFlow:         "User plans, system lists.",
			Completed:                 true,
			CreatedAt:                 time.Now(),
		},
		arch: &entity.Architecture{
			Id:           uuid.New(),
			ActionPlanId: planId,
			UserId:       userId,
			Status:       entity.ArchitectureStatusReady,
			UserStories:  "As a parent, I want weekly plans.",
			TechStack:    "Go backend, Postgres.",
			CreatedAt:    time.Now(),
		},
	}
}

func newEditorServiceForTest(uow *fakeUnitOfWork, provider llm.LLMProvider) (IEditorService, *memory.PropagationRepository) {
	propRepo := memory.NewPropagationRepository()
	svc := NewEditorService(uow, agent.NewEditor(provider), propRepo, nil, nopLogger{})
	return svc, propRepo
}

func TestEditSectionCrossStagePropagation(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)

	provider := &scriptedProvider{responses: []string{`{
		"reply": "Updated the tech stack and adjusted the requirements.",
		"updatedSection": "Go backend, Postgres, Redis for caching.",
		"addedText": ["Redis for caching"],
		"propagation": {
			"action_plan": {
				"functional_requirements": {"content": "RF-001 Plan meals per week.\nRF-002 Cache hot data.", "addedText": ["RF-002 Cache hot data."]},
				"non_functional_requirements": {"content": null, "addedText": []}
			}
		}
	}`}}

	svc, propRepo := newEditorServiceForTest(uow, provider)

	res, err := svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   3,
		Section: "tech_stack",
		Message: "Add Redis caching",
	})
	require.NoError(t, err)

	assert.Equal(t, "Go backend, Postgres, Redis for caching.", res.UpdatedSection)
	assert.False(t, res.Degraded)
	assert.Equal(t, []int{2}, res.AffectedStages)
	assert.Len(t, res.Changes, 2)

	// Both stage records were written.
	assert.Equal(t, "Go backend, Postgres, Redis for caching.", uow.arch.TechStack)
	assert.Equal(t, "RF-001 Plan meals per week.\nRF-002 Cache hot data.", uow.plan.FunctionalRequirements)
	assert.Equal(t, 1, uow.archUpdates)
	assert.Equal(t, 1, uow.planUpdates)

	// Session state: unread badge on the plan stage, highlights registered.
	state, ok := propRepo.Get(userId.String())
	require.True(t, ok)
	assert.True(t, state.HasModuleUpdate(propagation.StageActionPlan))
	assert.False(t, state.HasModuleUpdate(propagation.StageArchitecture))
	assert.Equal(t, propagation.ColorGreen,
		state.GetHighlightColor(propagation.StageActionPlan, "functional_requirements", "RF-002 Cache hot data."))

	// User question and assistant reply were both persisted.
	require.Len(t, uow.stageMessages, 2)
	assert.Equal(t, entity.MessageRoleUser, uow.stageMessages[0].Role)
	assert.Equal(t, entity.MessageRoleAssistant, uow.stageMessages[1].Role)
}

func TestEditSectionLockedStageSkipsModel(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)
	provider := &scriptedProvider{}

	svc, _ := newEditorServiceForTest(uow, provider)

	// Ideation is locked because the action plan exists.
	_, err := svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   1,
		Section: "objective",
		Message: "Change the objective",
	})
	assert.ErrorIs(t, err, ErrStageLocked)
	assert.Equal(t, 0, provider.calls)
	assert.Empty(t, uow.stageMessages)

	// The action plan is locked because the architecture exists.
	_, err = svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   2,
		Section: "functional_requirements",
		Message: "Change a requirement",
	})
	assert.ErrorIs(t, err, ErrStageLocked)
	assert.Equal(t, 0, provider.calls)
}

func TestEditSectionStageMissing(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)
	uow.plan = nil
	uow.arch = nil
	provider := &scriptedProvider{}

	svc, _ := newEditorServiceForTest(uow, provider)

	_, err := svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   2,
		Section: "functional_requirements",
		Message: "Edit a plan that does not exist",
	})
	assert.ErrorIs(t, err, ErrStageMissing)
	assert.Equal(t, 0, provider.calls)
}

func TestEditSectionUnknownSection(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)
	provider := &scriptedProvider{}

	svc, _ := newEditorServiceForTest(uow, provider)

	_, err := svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   3,
		Section: "not_a_section",
		Message: "Edit",
	})
	assert.ErrorIs(t, err, ErrUnknownSection)
	assert.Equal(t, 0, provider.calls)
}

func TestEditSectionDegradedResponse(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)
	provider := &scriptedProvider{responses: []string{
		"I think adding Redis here is a good idea, but let me explain the tradeoffs first...",
	}}

	svc, propRepo := newEditorServiceForTest(uow, provider)

	originalTechStack := uow.arch.TechStack
	res, err := svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   3,
		Section: "tech_stack",
		Message: "Add Redis caching",
	})
	require.NoError(t, err)

	assert.True(t, res.Degraded)
	assert.NotEmpty(t, res.Reply)
	assert.Empty(t, res.Changes)
	assert.Equal(t, originalTechStack, uow.arch.TechStack)
	assert.Equal(t, 0, uow.archUpdates)

	// A degraded turn never advances the session generation.
	state, _ := propRepo.Get(userId.String())
	assert.Equal(t, 0, state.Generation())
}

func TestEditSectionContentOnlyTurnKeepsHighlightsFresh(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)

	// A rewording pass: content changes, but nothing new is added anywhere.
	provider := &scriptedProvider{responses: []string{`{
		"reply": "Tightened the wording.",
		"updatedSection": "Go backend with Postgres.",
		"addedText": [],
		"propagation": {
			"action_plan": {
				"functional_requirements": {"content": "RF-001 The user plans meals per week.", "addedText": []}
			}
		}
	}`}}

	svc, propRepo := newEditorServiceForTest(uow, provider)

	state := propRepo.GetOrCreate(userId.String())
	state.AddHighlight(propagation.StageArchitecture, "tech_stack", []string{"Redis for caching"})
	genBefore := state.Generation()

	res, err := svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   3,
		Section: "tech_stack",
		Message: "Reword the tech stack",
	})
	require.NoError(t, err)

	// Content landed on both stages, but the earlier green highlight did not
	// age: no added text means no generation movement.
	assert.Equal(t, "Go backend with Postgres.", uow.arch.TechStack)
	assert.Equal(t, "RF-001 The user plans meals per week.", uow.plan.FunctionalRequirements)
	assert.Equal(t, genBefore, state.Generation())
	assert.Equal(t, genBefore, res.Generation)
	assert.Equal(t, propagation.ColorGreen,
		state.GetHighlightColor(propagation.StageArchitecture, "tech_stack", "Redis for caching"))
}

func TestEditSectionPropagationOrderIsDeterministic(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)

	provider := &scriptedProvider{responses: []string{`{
		"reply": "Done.",
		"updatedSection": "Go backend, Postgres, Redis for caching.",
		"addedText": ["Redis for caching"],
		"propagation": {
			"action_plan": {
				"business_logic_flow": {"content": "User plans, cache warms.", "addedText": ["cache warms"]},
				"functional_requirements": {"content": "RF-002 Cache hot data.", "addedText": ["RF-002 Cache hot data."]}
			}
		}
	}`}}

	svc, propRepo := newEditorServiceForTest(uow, provider)

	_, err := svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   3,
		Section: "tech_stack",
		Message: "Add Redis caching",
	})
	require.NoError(t, err)

	// Sections are processed in schema order regardless of how the model's
	// JSON object deserialized, so functional_requirements always registers
	// before business_logic_flow and the relative aging is stable.
	state, ok := propRepo.Get(userId.String())
	require.True(t, ok)
	assert.Equal(t, propagation.ColorYellow,
		state.GetHighlightColor(propagation.StageActionPlan, "functional_requirements", "RF-002 Cache hot data."))
	assert.Equal(t, propagation.ColorGreen,
		state.GetHighlightColor(propagation.StageActionPlan, "business_logic_flow", "cache warms"))
}

func TestEditSectionPartialWriteFailureKeepsOwnEdit(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)
	uow.failPlanUpdate = true

	provider := &scriptedProvider{responses: []string{`{
		"reply": "Done.",
		"updatedSection": "Go backend, Postgres, Redis for caching.",
		"addedText": ["Redis for caching"],
		"propagation": {
			"action_plan": {
				"functional_requirements": {"content": "RF-002 Cache hot data.", "addedText": ["RF-002 Cache hot data."]}
			}
		}
	}`}}

	svc, propRepo := newEditorServiceForTest(uow, provider)

	res, err := svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   3,
		Section: "tech_stack",
		Message: "Add Redis caching",
	})
	require.NoError(t, err)

	// The direct edit survives; the failed downstream write is skipped and
	// the stage is not marked unread.
	assert.Equal(t, "Go backend, Postgres, Redis for caching.", uow.arch.TechStack)
	assert.Empty(t, res.AffectedStages)

	state, _ := propRepo.Get(userId.String())
	assert.False(t, state.HasModuleUpdate(propagation.StageActionPlan))
}

func TestEditSectionModelError(t *testing.T) {
	userId := uuid.New()
	uow := fullProject(userId)
	provider := &scriptedProvider{err: llm.ErrRateLimited}

	svc, _ := newEditorServiceForTest(uow, provider)

	_, err := svc.EditSection(context.Background(), userId, &dto.EditSectionRequest{
		IdeaId:  uow.idea.Id,
		Stage:   3,
		Section: "tech_stack",
		Message: "Add Redis caching",
	})
	assert.ErrorIs(t, err, llm.ErrRateLimited)
}
