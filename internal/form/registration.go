// Package form owns the play registration form domain: the form state store,
// the pure validator, and the file selection guards.
package form

// Field identifies a logical form field. Values match the JSON field names
// used by the registration page so errors can be rendered inline.
type Field string

const (
	FieldDirectorName         Field = "directorName"
	FieldPlaywrightName       Field = "playwrightName"
	FieldDirectorPhone        Field = "directorPhone"
	FieldPlayTitle            Field = "playTitle"
	FieldScriptFile           Field = "scriptFile"
	FieldAuthorPermissionFile Field = "authorPermissionFile"
)

// ErrorMap maps a field to a human-readable validation message. Absence of a
// key means the field is currently valid.
type ErrorMap map[Field]string

// Copy returns an independent copy of the map
func (e ErrorMap) Copy() ErrorMap {
	out := make(ErrorMap, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// File is a user-selected document reference. Only the declared content type
// is inspected; the payload is never parsed.
type File struct {
	Name        string
	ContentType string
	Data        string // base64 payload
}

// Authorship is the discriminated union over "the director wrote the play"
// and "a separate author wrote it, with a permission document". Constructing
// it through DirectorAsPlaywright/SeparateAuthor makes the invalid
// combination (director is playwright but a permission file is attached)
// unrepresentable.
type Authorship struct {
	separateAuthor bool
	permissionFile *File
}

// DirectorAsPlaywright is the default authorship: no permission file applies
func DirectorAsPlaywright() Authorship {
	return Authorship{}
}

// SeparateAuthor marks the play as written by someone other than the
// director; permission may be nil until a file is selected
func SeparateAuthor(permission *File) Authorship {
	return Authorship{separateAuthor: true, permissionFile: permission}
}

// DirectorIsPlaywright reports whether the director wrote the play
func (a Authorship) DirectorIsPlaywright() bool {
	return !a.separateAuthor
}

// PermissionFile returns the author permission document, always nil when the
// director is the playwright
func (a Authorship) PermissionFile() *File {
	if !a.separateAuthor {
		return nil
	}
	return a.permissionFile
}

// Registration is the form data for one play registration. It lives in
// memory for the lifetime of a submission and is never persisted.
type Registration struct {
	DirectorName   string
	PlaywrightName string
	DirectorPhone  string
	PlayTitle      string
	ScriptFile     *File
	Authorship     Authorship
}
