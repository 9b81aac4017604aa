package propagation

import (
	"strings"
	"sync"
)

// Color is the recency class of a highlighted fragment.
type Color string

const (
	ColorGreen  Color = "green"  // most recent generation
	ColorYellow Color = "yellow" // one generation behind
	ColorNone   Color = "none"
)

// HighlightedItem is a verbatim substring added to a section's content at a
// specific edit generation. Items live only for the duration of the session.
type HighlightedItem struct {
	Text       string `json:"text"`
	Generation int    `json:"generation"`
}

// Snapshot is an immutable copy of the store state handed to subscribers and
// to the HTTP layer.
type Snapshot struct {
	ModulesWithUpdates []Stage                          `json:"modules_with_updates"`
	Highlights         map[string]map[string][]HighlightedItem `json:"highlights"`
	CurrentGeneration  int                              `json:"current_generation"`
}

// Listener receives a snapshot after every mutation.
type Listener func(Snapshot)

// State is the session-scoped propagation store: which stages carry unseen
// cross-stage edits, which text fragments are newly added per section, and a
// monotonic generation counter marking recency.
//
// All mutations go through the exposed operations. The mutex makes the
// container safe under concurrent request handlers; logically the store still
// assumes a single active editor session (last write wins across racing edit
// turns).
type State struct {
	mu sync.RWMutex

	modulesWithUpdates map[Stage]struct{}
	highlights         map[Stage]map[string][]HighlightedItem
	currentGeneration  int

	listeners map[int]Listener
	nextSub   int
}

func NewState() *State {
	return &State{
		modulesWithUpdates: make(map[Stage]struct{}),
		highlights: map[Stage]map[string][]HighlightedItem{
			StageIdeation:     {},
			StageActionPlan:   {},
			StageArchitecture: {},
		},
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers a listener notified after each mutation. The returned
// function removes the listener.
func (s *State) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// AddModuleUpdate marks a stage as carrying pending, unseen edits. Idempotent.
func (s *State) AddModuleUpdate(stage Stage) {
	s.mu.Lock()
	if _, ok := s.modulesWithUpdates[stage]; ok {
		s.mu.Unlock()
		return
	}
	s.modulesWithUpdates[stage] = struct{}{}
	s.notifyLocked()
	s.mu.Unlock()
}

// ClearModuleUpdate removes the unread marker for a stage, typically when the
// user navigates to it. No-op when the stage is not marked.
func (s *State) ClearModuleUpdate(stage Stage) {
	s.mu.Lock()
	if _, ok := s.modulesWithUpdates[stage]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.modulesWithUpdates, stage)
	s.notifyLocked()
	s.mu.Unlock()
}

// AddHighlight increments the generation counter by one and appends one item
// per text, tagged with the new generation, to the (stage, section) bucket.
//
// The increment is unconditional per call, even for an empty texts slice:
// recency is a property of the registration batch, not of individual strings.
// Callers that have nothing to register should simply not call AddHighlight.
func (s *State) AddHighlight(stage Stage, section string, texts []string) {
	s.mu.Lock()
	s.currentGeneration++
	bucket := s.highlights[stage]
	if bucket == nil {
		bucket = make(map[string][]HighlightedItem)
		s.highlights[stage] = bucket
	}
	for _, t := range texts {
		bucket[section] = append(bucket[section], HighlightedItem{Text: t, Generation: s.currentGeneration})
	}
	s.notifyLocked()
	s.mu.Unlock()
}

// IncrementGeneration bumps the counter without registering highlights. Used
// when a section's own direct edit must age out earlier highlights before the
// propagation batch for other sections is registered.
func (s *State) IncrementGeneration() {
	s.mu.Lock()
	s.currentGeneration++
	s.notifyLocked()
	s.mu.Unlock()
}

// GetHighlightColor returns the recency color for a piece of text in a
// section. Matching is fuzzy containment: an item matches when its text
// contains the query or the query contains the item's text. The first
// registered match wins; renderers that need longest-match-first resolve the
// ambiguity before calling in (see Fragments).
func (s *State) GetHighlightColor(stage Stage, section, text string) Color {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.highlights[stage][section]
	for _, item := range items {
		if strings.Contains(text, item.Text) || strings.Contains(item.Text, text) {
			return colorForDiff(s.currentGeneration - item.Generation)
		}
	}
	return ColorNone
}

func colorForDiff(diff int) Color {
	switch diff {
	case 0:
		return ColorGreen
	case 1:
		return ColorYellow
	default:
		return ColorNone
	}
}

// SectionHighlights returns a copy of the registered items for one section.
func (s *State) SectionHighlights(stage Stage, section string) []HighlightedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.highlights[stage][section]
	out := make([]HighlightedItem, len(items))
	copy(out, items)
	return out
}

// HasModuleUpdate reports whether a stage is currently marked unread.
func (s *State) HasModuleUpdate(stage Stage) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.modulesWithUpdates[stage]
	return ok
}

// Generation returns the current generation counter.
func (s *State) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentGeneration
}

// Snapshot returns a deep copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Reset discards all highlights, unread markers and the generation counter.
func (s *State) Reset() {
	s.mu.Lock()
	s.modulesWithUpdates = make(map[Stage]struct{})
	s.highlights = map[Stage]map[string][]HighlightedItem{
		StageIdeation:     {},
		StageActionPlan:   {},
		StageArchitecture: {},
	}
	s.currentGeneration = 0
	s.notifyLocked()
	s.mu.Unlock()
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		ModulesWithUpdates: make([]Stage, 0, len(s.modulesWithUpdates)),
		Highlights:         make(map[string]map[string][]HighlightedItem, len(s.highlights)),
		CurrentGeneration:  s.currentGeneration,
	}
	for _, stage := range []Stage{StageIdeation, StageActionPlan, StageArchitecture} {
		if _, ok := s.modulesWithUpdates[stage]; ok {
			snap.ModulesWithUpdates = append(snap.ModulesWithUpdates, stage)
		}
		sections := make(map[string][]HighlightedItem, len(s.highlights[stage]))
		for section, items := range s.highlights[stage] {
			cp := make([]HighlightedItem, len(items))
			copy(cp, items)
			sections[section] = cp
		}
		snap.Highlights[stage.Key()] = sections
	}
	return snap
}

func (s *State) notifyLocked() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, fn := range s.listeners {
		fn(snap)
	}
}
