package service

import (
	"idea-forge-be/internal/dto"
	"idea-forge-be/internal/repository/memory"
	"idea-forge-be/pkg/propagation"

	"github.com/google/uuid"
)

type IPropagationService interface {
	Snapshot(userId uuid.UUID) *dto.PropagationStateResponse
	VisitStage(userId uuid.UUID, stage int) *dto.PropagationStateResponse
	Render(userId uuid.UUID, req *dto.RenderRequest) (*dto.RenderResponse, error)
	ResetSession(userId uuid.UUID)
	State(userId uuid.UUID) *propagation.State
}

// propagationService exposes the per-user session propagation state to the
// HTTP and WebSocket layers.
type propagationService struct {
	repo *memory.PropagationRepository
}

func NewPropagationService(repo *memory.PropagationRepository) IPropagationService {
	return &propagationService{repo: repo}
}

func (s *propagationService) Snapshot(userId uuid.UUID) *dto.PropagationStateResponse {
	state := s.repo.GetOrCreate(userId.String())
	return snapshotToResponse(state.Snapshot(), state)
}

// VisitStage clears the unread marker for a stage and returns the fresh
// snapshot, so the stepper can repaint in one round trip.
func (s *propagationService) VisitStage(userId uuid.UUID, stage int) *dto.PropagationStateResponse {
	state := s.repo.GetOrCreate(userId.String())
	state.ClearModuleUpdate(propagation.Stage(stage))
	return snapshotToResponse(state.Snapshot(), state)
}

func (s *propagationService) Render(userId uuid.UUID, req *dto.RenderRequest) (*dto.RenderResponse, error) {
	stage := propagation.Stage(req.Stage)
	schema, ok := propagation.SchemaFor(stage)
	if !ok || !schema.HasSection(req.Section) {
		return nil, ErrUnknownSection
	}

	state := s.repo.GetOrCreate(userId.String())
	fragments := state.Fragments(stage, req.Section, req.Text)

	resp := &dto.RenderResponse{Fragments: make([]dto.FragmentResponse, len(fragments))}
	for i, f := range fragments {
		resp.Fragments[i] = dto.FragmentResponse{
			Text:  f.Text,
			Color: string(f.Color),
		}
	}
	return resp, nil
}

func (s *propagationService) ResetSession(userId uuid.UUID) {
	s.repo.Delete(userId.String())
}

// State exposes the raw store, used by the WebSocket layer to subscribe to
// mutations.
func (s *propagationService) State(userId uuid.UUID) *propagation.State {
	return s.repo.GetOrCreate(userId.String())
}

func snapshotToResponse(snap propagation.Snapshot, state *propagation.State) *dto.PropagationStateResponse {
	resp := &dto.PropagationStateResponse{
		ModulesWithUpdates: make([]int, len(snap.ModulesWithUpdates)),
		Generation:         snap.CurrentGeneration,
		Highlights:         make(map[int]map[string][]dto.SectionHighlightResponse, len(snap.Highlights)),
	}
	for i, st := range snap.ModulesWithUpdates {
		resp.ModulesWithUpdates[i] = int(st)
	}

	for key, sections := range snap.Highlights {
		stage, ok := propagation.StageFromKey(key)
		if !ok {
			continue
		}
		out := make(map[string][]dto.SectionHighlightResponse, len(sections))
		for section, items := range sections {
			list := make([]dto.SectionHighlightResponse, len(items))
			for i, item := range items {
				list[i] = dto.SectionHighlightResponse{
					Text:       item.Text,
					Generation: item.Generation,
					Color:      string(state.GetHighlightColor(stage, section, item.Text)),
				}
			}
			out[section] = list
		}
		resp.Highlights[int(stage)] = out
	}
	return resp
}
