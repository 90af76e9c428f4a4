package convention

import "github.com/nao1215/fancyindex/internal/model"

// Set is an insertion-ordered collection of convention instances keyed by
// ConventionInstance.Key.
type Set struct {
	items []model.ConventionInstance
	index map[model.ConventionKey]int
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{index: make(map[model.ConventionKey]int)}
}

// Add inserts c. An instance with the same key is merged instead: the
// stored instance keeps its fields and only gains a location if it had
// none. Add reports whether c was new.
func (s *Set) Add(c model.ConventionInstance) bool {
	key := c.Key()
	if i, ok := s.index[key]; ok {
		if s.items[i].Location == "" && c.Location != "" {
			s.items[i].Location = c.Location
		}
		return false
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, c)
	return true
}

// Len returns the number of distinct instances.
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the instances in insertion order. The slice is shared with
// the set.
func (s *Set) Items() []model.ConventionInstance {
	return s.items
}
