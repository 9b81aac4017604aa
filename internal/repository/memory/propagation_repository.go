package memory

import (
	"time"

	"idea-forge-be/pkg/propagation"

	"github.com/patrickmn/go-cache"
)

// PropagationRepository keeps per-user propagation state in memory. The
// state is an editing-session artifact, not durable data: an idle hour means
// the session is over and its highlights no longer matter.
type PropagationRepository struct {
	cache *cache.Cache
}

func NewPropagationRepository() *PropagationRepository {
	// Default expiration 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &PropagationRepository{
		cache: c,
	}
}

// GetOrCreate returns the propagation state for a user, creating a fresh one
// when none exists or the previous session expired. Each access refreshes
// the TTL so active editors never lose highlights mid-session.
func (r *PropagationRepository) GetOrCreate(userID string) *propagation.State {
	if x, found := r.cache.Get(userID); found {
		state := x.(*propagation.State)
		r.cache.Set(userID, state, cache.DefaultExpiration)
		return state
	}
	state := propagation.NewState()
	r.cache.Set(userID, state, cache.DefaultExpiration)
	return state
}

// Get returns the state without creating one.
func (r *PropagationRepository) Get(userID string) (*propagation.State, bool) {
	if x, found := r.cache.Get(userID); found {
		return x.(*propagation.State), true
	}
	return nil, false
}

func (r *PropagationRepository) Delete(userID string) {
	r.cache.Delete(userID)
}
