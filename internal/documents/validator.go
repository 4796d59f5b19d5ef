package documents

import "fmt"

// MIMEPDF is the only accepted content type.
const MIMEPDF = "application/pdf"

var allowedContentTypes = map[string]struct{}{
	MIMEPDF: {},
}

// Validator checks a candidate file's declared content type and size before
// any bytes are accepted. It has no side effects.
type Validator struct {
	MaxBytes int64
}

// NewValidator builds a Validator with the given size ceiling in bytes.
func NewValidator(maxBytes int64) Validator {
	return Validator{MaxBytes: maxBytes}
}

// Validate accepts only PDF files at or under the ceiling.
func (v Validator) Validate(fileName, contentType string, sizeBytes int64) error {
	if _, ok := allowedContentTypes[contentType]; !ok {
		return &ValidationError{FileName: fileName, Reason: "Only PDF files are allowed"}
	}
	if sizeBytes > v.MaxBytes {
		return &ValidationError{
			FileName: fileName,
			Reason:   fmt.Sprintf("File size should be less than %dMB", v.MaxBytes>>20),
		}
	}
	return nil
}
