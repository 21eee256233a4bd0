package form

// Store holds the in-memory form state for one registration page view. It is
// owned by a single goroutine and mutated only in response to discrete user
// events, so it carries no locking.
type Store struct {
	reg  Registration
	errs ErrorMap
}

// NewStore creates a store with defaults: empty fields, director is
// playwright, no files selected.
func NewStore() *Store {
	return &Store{
		reg:  Registration{Authorship: DirectorAsPlaywright()},
		errs: ErrorMap{},
	}
}

// Registration returns a snapshot of the current form data
func (s *Store) Registration() Registration {
	return s.reg
}

// Errors returns a copy of the current field errors
func (s *Store) Errors() ErrorMap {
	return s.errs.Copy()
}

// SetDirectorName updates the field and clears its error
func (s *Store) SetDirectorName(v string) {
	s.reg.DirectorName = v
	delete(s.errs, FieldDirectorName)
}

// SetPlaywrightName updates the field and clears its error
func (s *Store) SetPlaywrightName(v string) {
	s.reg.PlaywrightName = v
	delete(s.errs, FieldPlaywrightName)
}

// SetDirectorPhone updates the field and clears its error
func (s *Store) SetDirectorPhone(v string) {
	s.reg.DirectorPhone = v
	delete(s.errs, FieldDirectorPhone)
}

// SetPlayTitle updates the field and clears its error
func (s *Store) SetPlayTitle(v string) {
	s.reg.PlayTitle = v
	delete(s.errs, FieldPlayTitle)
}

// SetDirectorIsPlaywright toggles the authorship flag. Toggling to true
// clears the now-inapplicable permission file and its error; toggling to
// false keeps a previously selected permission file if one exists.
func (s *Store) SetDirectorIsPlaywright(v bool) {
	if v {
		s.reg.Authorship = DirectorAsPlaywright()
		delete(s.errs, FieldAuthorPermissionFile)
		return
	}
	s.reg.Authorship = SeparateAuthor(s.reg.Authorship.PermissionFile())
}

// SelectScriptFile runs the script guard on the selected file. A rejection
// records the field error and leaves the previously selected script
// untouched; acceptance stores the file and clears the error.
func (s *Store) SelectScriptFile(f *File) bool {
	if err := GuardScriptFile(f); err != nil {
		s.errs[FieldScriptFile] = err.Error()
		return false
	}
	accepted := *f
	accepted.ContentType = NormalizeContentType(f.ContentType)
	s.reg.ScriptFile = &accepted
	delete(s.errs, FieldScriptFile)
	return true
}

// SelectPermissionFile runs the permission guard on the selected file. The
// selection is ignored while the director is the playwright, since the field
// is not applicable. Rejection records the error and keeps the prior value.
func (s *Store) SelectPermissionFile(f *File) bool {
	if s.reg.Authorship.DirectorIsPlaywright() {
		return false
	}
	if err := GuardPermissionFile(f); err != nil {
		s.errs[FieldAuthorPermissionFile] = err.Error()
		return false
	}
	accepted := *f
	accepted.ContentType = NormalizeContentType(f.ContentType)
	s.reg.Authorship = SeparateAuthor(&accepted)
	delete(s.errs, FieldAuthorPermissionFile)
	return true
}

// Validate runs the pure validator over the current data and records the
// result. A pending file selection error (e.g. a rejected script) takes
// precedence over the plain required message for the same slot.
func (s *Store) Validate() ErrorMap {
	merged := Validate(s.reg)
	for field, msg := range s.errs {
		merged[field] = msg
	}
	s.errs = merged
	return s.errs.Copy()
}

// Reset returns the form to its defaults. Called after a successful
// submission.
func (s *Store) Reset() {
	s.reg = Registration{Authorship: DirectorAsPlaywright()}
	s.errs = ErrorMap{}
}
