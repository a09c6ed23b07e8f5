package social

import (
	"fmt"
	"sort"
)

// Population is the ordered collection of actors taking part in a run.
// Insertion order is signup order and is preserved for scans and reports.
type Population struct {
	actors []*Actor
	byName map[string]*Actor
}

// NewPopulation creates an empty population
func NewPopulation() *Population {
	return &Population{
		byName: make(map[string]*Actor),
	}
}

// Add appends an actor to the population. Names must be unique since actor
// identity is decided by name.
func (p *Population) Add(a *Actor) error {
	if _, exists := p.byName[a.Name]; exists {
		return fmt.Errorf("duplicate actor name: %s", a.Name)
	}
	p.actors = append(p.actors, a)
	p.byName[a.Name] = a
	return nil
}

// Len returns the number of actors
func (p *Population) Len() int {
	return len(p.actors)
}

// Actors returns the actors in signup order. The slice is shared; callers
// must not mutate it.
func (p *Population) Actors() []*Actor {
	return p.actors
}

// Get looks up an actor by name
func (p *Population) Get(name string) (*Actor, bool) {
	a, ok := p.byName[name]
	return a, ok
}

// PostsRemain reports whether any post anywhere still has zero likes
func (p *Population) PostsRemain() bool {
	for _, a := range p.actors {
		if a.IsLikeableBy(nil) {
			return true
		}
	}
	return false
}

// ActorsRemain reports whether liking can still happen at all: at least two
// actors exist and at least one has not reached its like budget.
func (p *Population) ActorsRemain(maxLikesPerActor int) bool {
	if len(p.actors) < 2 {
		return false
	}
	for _, a := range p.actors {
		if a.LikedCount() < maxLikesPerActor {
			return true
		}
	}
	return false
}

// QueueByPostCount returns the actors sorted by descending post count, with
// signup order breaking ties. This is the fixed processing order of the
// like-allocation loop: heavier posters act first.
func (p *Population) QueueByPostCount() []*Actor {
	queue := make([]*Actor, len(p.actors))
	copy(queue, p.actors)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].PostCount() > queue[j].PostCount()
	})
	return queue
}
