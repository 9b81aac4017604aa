package propagation

// Stage identifies one of the three sequential planning phases.
// The numeric values are the vocabulary used by the stepper UI for
// unread-update tracking and must stay stable.
type Stage int

const (
	StageIdeation     Stage = 1
	StageActionPlan   Stage = 2
	StageArchitecture Stage = 3
)

const (
	KeyIdeation     = "ideation"
	KeyActionPlan   = "action_plan"
	KeyArchitecture = "architecture"
)

func (s Stage) Key() string {
	switch s {
	case StageIdeation:
		return KeyIdeation
	case StageActionPlan:
		return KeyActionPlan
	case StageArchitecture:
		return KeyArchitecture
	}
	return ""
}

func (s Stage) DisplayName() string {
	switch s {
	case StageIdeation:
		return "Ideation"
	case StageActionPlan:
		return "Action Plan"
	case StageArchitecture:
		return "Architecture"
	}
	return "Unknown"
}

// StageFromKey resolves a stage by its string key ("ideation", "action_plan",
// "architecture"). The bool reports whether the key was recognized.
func StageFromKey(key string) (Stage, bool) {
	switch key {
	case KeyIdeation:
		return StageIdeation, true
	case KeyActionPlan:
		return StageActionPlan, true
	case KeyArchitecture:
		return StageArchitecture, true
	}
	return 0, false
}

// Schema describes the editable surface of a stage: its section keys in
// display order. The editor orchestration is generic over this descriptor
// instead of duplicating one flow per stage.
type Schema struct {
	Stage    Stage
	Sections []string
}

var schemas = map[Stage]Schema{
	StageIdeation: {
		Stage:    StageIdeation,
		Sections: []string{"title", "objective", "problem", "scope"},
	},
	StageActionPlan: {
		Stage:    StageActionPlan,
		Sections: []string{"functional_requirements", "non_functional_requirements", "business_logic_flow"},
	},
	StageArchitecture: {
		Stage:    StageArchitecture,
		Sections: []string{"user_stories", "database_type", "database_schema", "entities_relationships", "tech_stack", "architecture_pattern", "system_architecture"},
	},
}

func SchemaFor(s Stage) (Schema, bool) {
	sc, ok := schemas[s]
	return sc, ok
}

// HasSection reports whether section is a valid key for this schema.
func (sc Schema) HasSection(section string) bool {
	for _, s := range sc.Sections {
		if s == section {
			return true
		}
	}
	return false
}
