package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
// The payload is never echoed back.
type DocumentResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID,
		FileName:   doc.FileName,
		SizeBytes:  doc.SizeBytes,
		UploadedAt: doc.UploadedAt,
	}
}
