package bones

// Skeleton is the set of bone names exposed by a loaded character model.
// Iteration order is the order the names were supplied in; the substring
// heuristics depend on it, so callers must pass bones in the order their
// scene graph enumerates them.
type Skeleton struct {
	names []string
	index map[string]struct{}
}

// NewSkeleton builds a skeleton from bone names. Duplicates keep their first
// position.
func NewSkeleton(names []string) *Skeleton {
	s := &Skeleton{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		if _, dup := s.index[n]; dup {
			continue
		}
		s.index[n] = struct{}{}
		s.names = append(s.names, n)
	}
	return s
}

// Has reports whether the skeleton has a bone with exactly this name.
func (s *Skeleton) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Names returns the bone names in iteration order.
func (s *Skeleton) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

// Len returns the number of bones.
func (s *Skeleton) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}
