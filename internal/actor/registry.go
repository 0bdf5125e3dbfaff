package actor

import "github.com/osse101/WhineTime/internal/domain"

// Registry owns every actor in a game, keyed by ID and kept in insertion
// order for stable iteration
type Registry struct {
	order  []string
	actors map[string]Actor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{actors: make(map[string]Actor)}
}

// Add registers a. Fails on a duplicate or empty ID.
func (r *Registry) Add(a Actor) bool {
	if a == nil || a.ID() == "" {
		return false
	}
	if _, exists := r.actors[a.ID()]; exists {
		return false
	}
	r.actors[a.ID()] = a
	r.order = append(r.order, a.ID())
	return true
}

// Remove deletes the actor with id
func (r *Registry) Remove(id string) bool {
	if _, ok := r.actors[id]; !ok {
		return false
	}
	delete(r.actors, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the actor with id
func (r *Registry) Get(id string) (Actor, bool) {
	a, ok := r.actors[id]
	return a, ok
}

// Baby returns the baby with id
func (r *Registry) Baby(id string) (*Baby, bool) {
	b, ok := r.actors[id].(*Baby)
	return b, ok
}

// Caregiver returns the caregiver with id
func (r *Registry) Caregiver(id string) (*Caregiver, bool) {
	c, ok := r.actors[id].(*Caregiver)
	return c, ok
}

// Station returns the feeding station with id
func (r *Registry) Station(id string) (*FeedingStation, bool) {
	s, ok := r.actors[id].(*FeedingStation)
	return s, ok
}

// All returns every actor in insertion order
func (r *Registry) All() []Actor {
	out := make([]Actor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.actors[id])
	}
	return out
}

// Babies returns every baby in insertion order
func (r *Registry) Babies() []*Baby {
	var out []*Baby
	for _, id := range r.order {
		if b, ok := r.actors[id].(*Baby); ok {
			out = append(out, b)
		}
	}
	return out
}

// Caregivers returns every caregiver in insertion order
func (r *Registry) Caregivers() []*Caregiver {
	var out []*Caregiver
	for _, id := range r.order {
		if c, ok := r.actors[id].(*Caregiver); ok {
			out = append(out, c)
		}
	}
	return out
}

// Stations returns every feeding station in insertion order
func (r *Registry) Stations() []*FeedingStation {
	var out []*FeedingStation
	for _, id := range r.order {
		if s, ok := r.actors[id].(*FeedingStation); ok {
			out = append(out, s)
		}
	}
	return out
}

// Count returns how many actors of kind are registered
func (r *Registry) Count(kind domain.ActorKind) int {
	n := 0
	for _, a := range r.actors {
		if a.Kind() == kind {
			n++
		}
	}
	return n
}

// Len returns the number of actors
func (r *Registry) Len() int {
	return len(r.order)
}
