package agent

// ProjectContext carries the full cross-stage content handed to the model on
// every edit turn, so that propagation decisions can consider upstream and
// downstream stages together. Nil stage pointers mean the stage does not
// exist yet for this project.
type ProjectContext struct {
	Idea         *IdeaContext
	ActionPlan   *ActionPlanContext
	Architecture *ArchitectureContext
}

type IdeaContext struct {
	Title     string
	Objective string
	Problem   string
	Scope     string
}

type ActionPlanContext struct {
	FunctionalRequirements    string
	NonFunctionalRequirements string
	BusinessLogicFlow         string
}

type ArchitectureContext struct {
	UserStories           string
	DatabaseType          string
	DatabaseSchema        string
	EntitiesRelationships string
	TechStack             string
	ArchitecturePattern   string
	SystemArchitecture    string
}

// SectionUpdate is the per-section payload inside the propagation map.
// A nil Content means "no change needed for this section"; a non-nil string
// is the complete replacement content, never a diff.
type SectionUpdate struct {
	Content   *string  `json:"content"`
	AddedText []string `json:"addedText"`
}

// EditResult is the parsed model response for one edit-section turn.
type EditResult struct {
	Reply          string                              `json:"reply"`
	UpdatedSection string                              `json:"updatedSection"`
	AddedText      []string                            `json:"addedText"`
	Propagation    map[string]map[string]SectionUpdate `json:"propagation"`

	// Degraded marks responses the model returned as free text instead of
	// the requested JSON shape. Only Reply is populated then; the edited
	// section must be left unchanged and no propagation attempted.
	Degraded bool `json:"-"`
}
