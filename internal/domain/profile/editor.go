package profile

// Editor provides two-phase editing of a profile: changes are staged on
// a copy and only become current on Commit. Hosts use this to back a
// preferences dialog with apply/cancel semantics without letting staged
// values leak into live computations.
type Editor struct {
	committed Profile
	pending   *Profile
}

// NewEditor starts from the given committed profile.
func NewEditor(p Profile) *Editor {
	return &Editor{committed: p}
}

// Current returns the committed profile; staged changes are not visible.
func (e *Editor) Current() Profile {
	return e.committed
}

// Stage applies mutate to the pending copy, creating it from the
// committed profile on first use.
func (e *Editor) Stage(mutate func(*Profile)) {
	if e.pending == nil {
		copy := e.committed
		e.pending = &copy
	}
	mutate(e.pending)
}

// Dirty reports whether uncommitted changes exist.
func (e *Editor) Dirty() bool {
	return e.pending != nil && *e.pending != e.committed
}

// Commit validates and promotes staged changes, returning the new
// current profile. On validation failure the staging is kept so the
// host can correct it or Discard.
func (e *Editor) Commit() (Profile, error) {
	if e.pending == nil {
		return e.committed, nil
	}
	if err := e.pending.Validate(); err != nil {
		return e.committed, err
	}
	e.committed = *e.pending
	e.pending = nil
	return e.committed, nil
}

// Discard drops staged changes.
func (e *Editor) Discard() {
	e.pending = nil
}
