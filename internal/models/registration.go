package models

import (
	"github.com/arshitenyt-bit/kootaah-theater/internal/form"
)

// RegisterPlayRequest represents a play registration form submission.
// Requiredness and the conditional permission rule are enforced by the form
// validator so that all field errors accumulate in one response; binding
// tags only bound sizes and shape.
type RegisterPlayRequest struct {
	DirectorName   string `json:"directorName" binding:"max=150"`
	PlaywrightName string `json:"playwrightName" binding:"max=150"`
	DirectorPhone  string `json:"directorPhone" binding:"max=30"`
	PlayTitle      string `json:"playTitle" binding:"max=200"`

	ScriptFile *FileUpload `json:"scriptFile"`

	// Defaults to true when omitted
	IsDirectorPlaywright *bool       `json:"isDirectorPlaywright"`
	AuthorPermissionFile *FileUpload `json:"authorPermissionFile"`
}

// FileUpload represents an uploaded document reference
type FileUpload struct {
	Data        string `json:"data"` // base64 payload
	FileName    string `json:"fileName" binding:"max=255"`
	ContentType string `json:"contentType" binding:"max=100"`
}

// RegisterPlayResponse represents the outcome of a submission attempt
type RegisterPlayResponse struct {
	Success        bool              `json:"success"`
	Message        string            `json:"message,omitempty"`
	RegistrationID string            `json:"registrationId,omitempty"`
	Error          string            `json:"error,omitempty"`
	Errors         map[string]string `json:"errors,omitempty"` // field -> message
}

// ValidatePlayResponse represents a dry-run validation result
type ValidatePlayResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// ToForm replays the request through the form state store, exactly as the
// registration page would: text fields first, then the authorship toggle,
// then file selections through their guards. It returns the resulting form
// data together with any selection errors the guards recorded.
func (r *RegisterPlayRequest) ToForm() (form.Registration, form.ErrorMap) {
	store := form.NewStore()

	store.SetDirectorName(r.DirectorName)
	store.SetPlaywrightName(r.PlaywrightName)
	store.SetDirectorPhone(r.DirectorPhone)
	store.SetPlayTitle(r.PlayTitle)

	directorIsPlaywright := true
	if r.IsDirectorPlaywright != nil {
		directorIsPlaywright = *r.IsDirectorPlaywright
	}
	store.SetDirectorIsPlaywright(directorIsPlaywright)

	if r.ScriptFile != nil {
		store.SelectScriptFile(r.ScriptFile.toFile())
	}
	if !directorIsPlaywright && r.AuthorPermissionFile != nil {
		store.SelectPermissionFile(r.AuthorPermissionFile.toFile())
	}

	return store.Registration(), store.Validate()
}

func (u *FileUpload) toFile() *form.File {
	return &form.File{
		Name:        u.FileName,
		ContentType: u.ContentType,
		Data:        u.Data,
	}
}

// FieldErrors flattens a form.ErrorMap into the wire representation
func FieldErrors(errs form.ErrorMap) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for field, msg := range errs {
		out[string(field)] = msg
	}
	return out
}
