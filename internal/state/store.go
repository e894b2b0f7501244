package state

import (
	"sync"

	"github.com/kterry/ladle/internal/recipes"
)

// Store holds the in-memory recipe collection for the current session.
// It is the single source of truth for the UI: the list is replaced
// wholesale on load and mutated only after a remote call succeeds.
// Order is preserved; new recipes are appended.
type Store struct {
	mu      sync.RWMutex
	recipes []recipes.Recipe
}

// Recipes returns a copy of the current collection in order.
func (s *Store) Recipes() []recipes.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecipes(s.recipes)
}

// Len returns the number of recipes held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// Get returns the recipe with the given id, if present.
func (s *Store) Get(id int64) (recipes.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return recipes.Recipe{}, false
}

// ReplaceAll swaps the whole collection, keeping the given order.
func (s *Store) ReplaceAll(list []recipes.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = cloneRecipes(list)
}

// Upsert replaces the recipe with a matching id in place, or appends when
// no entry matches. Positions of existing entries never change.
func (s *Store) Upsert(r recipes.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recipes {
		if s.recipes[i].ID == r.ID {
			s.recipes[i] = r
			return
		}
	}
	s.recipes = append(s.recipes, r)
}

// Remove deletes the recipe with the given id, reporting whether an entry
// was removed.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			return true
		}
	}
	return false
}

func cloneRecipes(list []recipes.Recipe) []recipes.Recipe {
	if len(list) == 0 {
		return nil
	}
	dup := make([]recipes.Recipe, len(list))
	copy(dup, list)
	return dup
}
