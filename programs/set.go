package programs

// Set owns at most one Program per kind.
type Set struct {
	programs [numKinds]*Program
}

// NewSet creates a program for each of kinds, or for every kind when none
// are given. If a construction panics, the programs already created are
// destroyed before the panic continues.
func NewSet(ctx Context, kinds ...Kind) (s *Set) {
	if len(kinds) == 0 {
		kinds = Kinds()
	}

	s = &Set{}
	defer func() {
		if v := recover(); v != nil {
			s.Close(ctx)
			panic(v)
		}
	}()

	for _, kind := range kinds {
		if kind.Valid() && s.programs[kind] != nil {
			continue
		}
		p := New(ctx, kind)
		s.programs[kind] = p
	}

	return s
}

// Get returns the program for kind, or nil if the set has none.
func (s *Set) Get(kind Kind) *Program {
	if !kind.Valid() {
		return nil
	}
	return s.programs[kind]
}

// Paint draws kind with in. Kinds missing from the set are skipped.
func (s *Set) Paint(ctx Context, kind Kind, in Input) {
	p := s.Get(kind)
	if p == nil {
		Logger().Warn("paint of kind missing from set", "kind", kind)
		return
	}
	p.paint(ctx, in)
}

// Close destroys every program in the set. Closing twice is a no-op.
func (s *Set) Close(ctx Context) {
	for i, p := range s.programs {
		if p == nil {
			continue
		}
		p.Destroy(ctx)
		s.programs[i] = nil
	}
}

// With creates the program for kind, passes it to f and destroys it when f
// returns or panics.
func With(ctx Context, kind Kind, f func(*Program)) {
	p := New(ctx, kind)
	defer p.Destroy(ctx)
	f(p)
}
