package documents

import "errors"

var (
	// ErrNotFound covers both a missing id and an owner/project mismatch;
	// callers cannot tell the two apart.
	ErrNotFound = errors.New("document not found")
	// ErrProjectNotFound signals the referenced project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput signals missing or malformed request data.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries a human-readable rejection reason for a single file.
type ValidationError struct {
	FileName string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.FileName == "" {
		return e.Reason
	}
	return e.FileName + ": " + e.Reason
}
