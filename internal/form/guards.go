package form

import (
	"encoding/base64"
	"strings"

	apperrors "github.com/arshitenyt-bit/kootaah-theater/pkg/errors"
)

const (
	mimePDF  = "application/pdf"
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"

	// MaxFileBytes is the decoded size ceiling for a selected file
	MaxFileBytes = 10 * 1024 * 1024
)

// permissionTypes is the accepted set for the author permission slot
var permissionTypes = map[string]bool{
	mimePDF:  true,
	mimeJPEG: true,
	mimePNG:  true,
}

// GuardError is a file selection rejection. Error() is the user-facing
// message; it unwraps to the matching sentinel for programmatic checks.
type GuardError struct {
	Message  string
	sentinel error
}

func (e *GuardError) Error() string { return e.Message }

func (e *GuardError) Unwrap() error { return e.sentinel }

// NormalizeContentType lowercases the declared type and folds the
// non-standard "image/jpg" some browsers report into "image/jpeg". No other
// aliases are folded.
func NormalizeContentType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if ct == "image/jpg" {
		return mimeJPEG
	}
	return ct
}

// GuardScriptFile accepts only PDF scripts. Runs at selection time, before
// the file ever reaches the store.
func GuardScriptFile(f *File) error {
	if NormalizeContentType(f.ContentType) != mimePDF {
		return &GuardError{
			Message:  "The script must be a PDF file",
			sentinel: apperrors.ErrFileTypeInvalid,
		}
	}
	return guardSize(f)
}

// GuardPermissionFile accepts PDF, JPEG (including the jpg alias), and PNG
// permission documents.
func GuardPermissionFile(f *File) error {
	if !permissionTypes[NormalizeContentType(f.ContentType)] {
		return &GuardError{
			Message:  "The permission document must be a PDF, JPEG, or PNG file",
			sentinel: apperrors.ErrFileTypeInvalid,
		}
	}
	return guardSize(f)
}

// guardSize rejects files whose decoded payload exceeds MaxFileBytes. Only
// the length is derived; the payload itself is never parsed.
func guardSize(f *File) error {
	if f.Data == "" {
		return nil
	}
	if base64.StdEncoding.DecodedLen(len(strippedPayload(f.Data))) > MaxFileBytes {
		return &GuardError{
			Message:  "The selected file exceeds the 10 MB limit",
			sentinel: apperrors.ErrFileTooLarge,
		}
	}
	return nil
}

// strippedPayload drops a data URI prefix (data:application/pdf;base64,...)
// if the client sent one
func strippedPayload(data string) string {
	if strings.HasPrefix(data, "data:") {
		if idx := strings.IndexByte(data, ','); idx >= 0 {
			return data[idx+1:]
		}
	}
	return data
}
