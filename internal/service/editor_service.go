package service

import (
	"context"
	"errors"
	"time"

	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/entity"
	"idea-forge-be/internal/pkg/logger"
	"idea-forge-be/internal/repository/memory"
	"idea-forge-be/internal/repository/specification"
	"idea-forge-be/internal/repository/unitofwork"
	"idea-forge-be/pkg/agent"
	"idea-forge-be/pkg/events"
	pktNats "idea-forge-be/pkg/nats"
	"idea-forge-be/pkg/propagation"

	"github.com/google/uuid"
)

var (
	ErrUnknownSection = errors.New("unknown section for this stage")
	ErrStageMissing   = errors.New("stage record does not exist yet")
)

type IEditorService interface {
	EditSection(ctx context.Context, userId uuid.UUID, req *dto.EditSectionRequest) (*dto.EditSectionResponse, error)
	StageHistory(ctx context.Context, userId, ideaId uuid.UUID, stage int, section string) ([]*dto.ChatMessageResponse, error)
}

// editorService runs one conversational edit turn end to end: lock check,
// model round trip, persisting the rewritten sections, and registering
// highlights and unread markers in the session propagation state.
type editorService struct {
	uowFactory      unitofwork.RepositoryFactory
	editor          *agent.Editor
	propagationRepo *memory.PropagationRepository
	eventPublisher  *pktNats.Publisher
	logger          logger.ILogger
}

func NewEditorService(
	uowFactory unitofwork.RepositoryFactory,
	editor *agent.Editor,
	propagationRepo *memory.PropagationRepository,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IEditorService {
	return &editorService{
		uowFactory:      uowFactory,
		editor:          editor,
		propagationRepo: propagationRepo,
		eventPublisher:  eventPublisher,
		logger:          log,
	}
}

// projectRecords bundles the three stage rows of one project. Nil pointers
// mean the stage has not been generated yet.
type projectRecords struct {
	idea *entity.Idea
	plan *entity.ActionPlan
	arch *entity.Architecture
}

func (s *editorService) EditSection(ctx context.Context, userId uuid.UUID, req *dto.EditSectionRequest) (*dto.EditSectionResponse, error) {
	stage := propagation.Stage(req.Stage)
	schema, ok := propagation.SchemaFor(stage)
	if !ok || !schema.HasSection(req.Section) {
		return nil, ErrUnknownSection
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := s.loadProject(ctx, uow, userId, req.IdeaId)
	if err != nil {
		return nil, err
	}

	// A stage becomes read-only the moment its downstream record exists. The
	// check runs before the model call so a locked edit costs nothing.
	switch stage {
	case propagation.StageIdeation:
		if records.plan != nil {
			return nil, ErrStageLocked
		}
	case propagation.StageActionPlan:
		if records.plan == nil {
			return nil, ErrStageMissing
		}
		if records.arch != nil {
			return nil, ErrStageLocked
		}
	case propagation.StageArchitecture:
		if records.arch == nil {
			return nil, ErrStageMissing
		}
	}

	if err := uow.StageMessageRepository().Create(ctx, &entity.StageMessage{
		Id:        uuid.New(),
		IdeaId:    req.IdeaId,
		Stage:     req.Stage,
		Section:   req.Section,
		Role:      entity.MessageRoleUser,
		Content:   req.Message,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	result, err := s.editor.EditSection(ctx, records.context(), stage, req.Section, req.Message)
	if err != nil {
		return nil, err
	}

	state := s.propagationRepo.GetOrCreate(userId.String())

	if result.Degraded {
		// Free-text answer: nothing to persist or highlight beyond the reply.
		s.saveReply(ctx, uow, req.IdeaId, req.Stage, req.Section, result.Reply)
		return &dto.EditSectionResponse{
			Reply:      result.Reply,
			Generation: state.Generation(),
			Degraded:   true,
		}, nil
	}

	var changes []dto.SectionChange

	// The direct edit ages out earlier highlights before the propagation
	// batch registers new ones. A rewording turn that adds no new text must
	// not touch the generation counter at all.
	if result.UpdatedSection != "" {
		if err := s.applySection(ctx, uow, records, stage, req.Section, result.UpdatedSection); err != nil {
			return nil, err
		}
		if len(result.AddedText) > 0 {
			state.IncrementGeneration()
			state.AddHighlight(stage, req.Section, result.AddedText)
		}
		changes = append(changes, dto.SectionChange{
			Stage:     req.Stage,
			Section:   req.Section,
			Content:   result.UpdatedSection,
			AddedText: result.AddedText,
		})
	}

	affected := s.applyPropagation(ctx, uow, records, state, stage, req.Section, result.Propagation, &changes)

	s.saveReply(ctx, uow, req.IdeaId, req.Stage, req.Section, result.Reply)

	if len(affected) > 0 && s.eventPublisher != nil {
		ints := make([]int, len(affected))
		for i, a := range affected {
			ints[i] = int(a)
		}
		if err := s.eventPublisher.Publish(ctx, events.NewStagePropagated(userId.String(), req.Stage, ints)); err != nil {
			s.logger.Warn("EditorService", "Failed to publish propagation event", map[string]interface{}{"error": err.Error()})
		}
	}

	resp := &dto.EditSectionResponse{
		Reply:          result.Reply,
		UpdatedSection: result.UpdatedSection,
		Changes:        changes,
		AffectedStages: make([]int, 0, len(affected)),
		Generation:     state.Generation(),
	}
	for _, a := range affected {
		resp.AffectedStages = append(resp.AffectedStages, int(a))
	}
	return resp, nil
}

// applyPropagation walks the model's propagation map: every touched stage
// record gets its section updates applied and written once; stages other
// than the edited one are marked unread on a successful write. A failed
// write is logged and skipped, it never rolls back the sections already
// applied. The model's answer is advisory, not transactional. Sections are
// processed in schema order so highlight generations land deterministically.
func (s *editorService) applyPropagation(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	records *projectRecords,
	state *propagation.State,
	editedStage propagation.Stage,
	editedSection string,
	propMap map[string]map[string]agent.SectionUpdate,
	changes *[]dto.SectionChange,
) []propagation.Stage {
	var affected []propagation.Stage

	for _, targetStage := range []propagation.Stage{propagation.StageIdeation, propagation.StageActionPlan, propagation.StageArchitecture} {
		sections, ok := propMap[targetStage.Key()]
		if !ok || len(sections) == 0 {
			continue
		}

		schema, _ := propagation.SchemaFor(targetStage)
		dirty := false

		for section := range sections {
			if !schema.HasSection(section) {
				s.logger.Warn("EditorService", "Model proposed an unknown section, skipping", map[string]interface{}{"stage": targetStage.Key(), "section": section})
			}
		}

		for _, section := range schema.Sections {
			update, ok := sections[section]
			if !ok || update.Content == nil {
				continue
			}
			if targetStage == editedStage && section == editedSection {
				continue // already handled as the direct edit
			}
			if !records.setSection(targetStage, section, *update.Content) {
				// Target stage record does not exist; nothing to update.
				continue
			}
			dirty = true
			if len(update.AddedText) > 0 {
				state.AddHighlight(targetStage, section, update.AddedText)
			}
			*changes = append(*changes, dto.SectionChange{
				Stage:     int(targetStage),
				Section:   section,
				Content:   *update.Content,
				AddedText: update.AddedText,
			})
		}

		if !dirty {
			continue
		}

		if err := records.save(ctx, uow, targetStage); err != nil {
			s.logger.Error("EditorService", "Failed to persist propagated sections", map[string]interface{}{"error": err.Error(), "stage": targetStage.Key()})
			continue
		}
		if targetStage != editedStage {
			state.AddModuleUpdate(targetStage)
			affected = append(affected, targetStage)
		}
	}

	return affected
}

func (s *editorService) applySection(ctx context.Context, uow unitofwork.UnitOfWork, records *projectRecords, stage propagation.Stage, section, content string) error {
	if !records.setSection(stage, section, content) {
		return ErrStageMissing
	}
	return records.save(ctx, uow, stage)
}

func (s *editorService) saveReply(ctx context.Context, uow unitofwork.UnitOfWork, ideaId uuid.UUID, stage int, section, reply string) {
	if reply == "" {
		return
	}
	if err := uow.StageMessageRepository().Create(ctx, &entity.StageMessage{
		Id:        uuid.New(),
		IdeaId:    ideaId,
		Stage:     stage,
		Section:   section,
		Role:      entity.MessageRoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}); err != nil {
		s.logger.Error("EditorService", "Failed to save assistant message", map[string]interface{}{"error": err.Error(), "idea_id": ideaId})
	}
}

func (s *editorService) StageHistory(ctx context.Context, userId, ideaId uuid.UUID, stage int, section string) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	idea, err := uow.IdeaRepository().FindOne(ctx,
		specification.ByID{ID: ideaId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}

	specs := []specification.Specification{
		specification.ByIdeaId{IdeaId: ideaId},
		specification.ByStage{Stage: stage},
		specification.OrderBy{Field: "created_at"},
	}
	if section != "" {
		specs = append(specs, specification.FilterBy{Field: "section", Value: section})
	}

	msgs, err := uow.StageMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ChatMessageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = &dto.ChatMessageResponse{
			Id:        m.Id,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return out, nil
}

func (s *editorService) loadProject(ctx context.Context, uow unitofwork.UnitOfWork, userId, ideaId uuid.UUID) (*projectRecords, error) {
	idea, err := uow.IdeaRepository().FindOne(ctx,
		specification.ByID{ID: ideaId},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrNotFound
	}

	records := &projectRecords{idea: idea}

	records.plan, err = uow.ActionPlanRepository().FindOne(ctx, specification.ByIdeaId{IdeaId: ideaId})
	if err != nil {
		return nil, err
	}
	if records.plan != nil {
		records.arch, err = uow.ArchitectureRepository().FindOne(ctx, specification.ByActionPlanId{ActionPlanId: records.plan.Id})
		if err != nil {
			return nil, err
		}
	}

	return records, nil
}

func (r *projectRecords) context() *agent.ProjectContext {
	pc := &agent.ProjectContext{
		Idea: &agent.IdeaContext{
			Title:     r.idea.Title,
			Objective: r.idea.Objective,
			Problem:   r.idea.Problem,
			Scope:     r.idea.Scope,
		},
	}
	if r.plan != nil {
		pc.ActionPlan = &agent.ActionPlanContext{
			FunctionalRequirements:    r.plan.FunctionalRequirements,
			NonFunctionalRequirements: r.plan.NonFunctionalRequirements,
			BusinessLogicFlow:         r.plan.BusinessLogicFlow,
		}
	}
	if r.arch != nil {
		pc.Architecture = &agent.ArchitectureContext{
			UserStories:           r.arch.UserStories,
			DatabaseType:          r.arch.DatabaseType,
			DatabaseSchema:        r.arch.DatabaseSchema,
			EntitiesRelationships: r.arch.EntitiesRelationships,
			TechStack:             r.arch.TechStack,
			ArchitecturePattern:   r.arch.ArchitecturePattern,
			SystemArchitecture:    r.arch.SystemArchitecture,
		}
	}
	return pc
}

func (r *projectRecords) setSection(stage propagation.Stage, section, content string) bool {
	switch stage {
	case propagation.StageIdeation:
		return r.idea.SetSection(section, content)
	case propagation.StageActionPlan:
		if r.plan == nil {
			return false
		}
		return r.plan.SetSection(section, content)
	case propagation.StageArchitecture:
		if r.arch == nil {
			return false
		}
		return r.arch.SetSection(section, content)
	}
	return false
}

func (r *projectRecords) save(ctx context.Context, uow unitofwork.UnitOfWork, stage propagation.Stage) error {
	switch stage {
	case propagation.StageIdeation:
		return uow.IdeaRepository().Update(ctx, r.idea)
	case propagation.StageActionPlan:
		return uow.ActionPlanRepository().Update(ctx, r.plan)
	case propagation.StageArchitecture:
		return uow.ArchitectureRepository().Update(ctx, r.arch)
	}
	return ErrStageMissing
}
