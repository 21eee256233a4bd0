package form

import "strings"

// requiredTextMessages are the inline messages for the four mandatory text
// fields
var requiredTextMessages = map[Field]string{
	FieldDirectorName:   "Director name is required",
	FieldPlaywrightName: "Playwright name is required",
	FieldDirectorPhone:  "Director phone number is required",
	FieldPlayTitle:      "Play title is required",
}

const (
	msgScriptRequired     = "A script file is required"
	msgPermissionRequired = "An author permission document is required when the director is not the playwright"
)

// Validate is the pure submission validator. Every rule runs on every call
// and errors accumulate; a non-empty result aborts submission.
func Validate(r Registration) ErrorMap {
	errs := ErrorMap{}

	requiredText := map[Field]string{
		FieldDirectorName:   r.DirectorName,
		FieldPlaywrightName: r.PlaywrightName,
		FieldDirectorPhone:  r.DirectorPhone,
		FieldPlayTitle:      r.PlayTitle,
	}
	for field, value := range requiredText {
		if strings.TrimSpace(value) == "" {
			errs[field] = requiredTextMessages[field]
		}
	}

	if r.ScriptFile == nil {
		errs[FieldScriptFile] = msgScriptRequired
	}

	if !r.Authorship.DirectorIsPlaywright() && r.Authorship.PermissionFile() == nil {
		errs[FieldAuthorPermissionFile] = msgPermissionRequired
	}

	return errs
}
