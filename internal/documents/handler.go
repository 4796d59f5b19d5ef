package documents

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/shared/metrics"
	"portal-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	MaxBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc, MaxBytes: svc.Validator.MaxBytes}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.download)
	rg.DELETE("/documents/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	start := metrics.NowMillis()
	defer func() {
		metrics.ObserveUploadDurationMs(metrics.NowMillis() - start)
	}()

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid multipart form", nil)
		return
	}

	owner := formValue(form, "owner", "username")
	projectTitle := formValue(form, "projectTitle", "title")
	fileHeaders := form.File["documents"]
	if len(fileHeaders) == 0 {
		fileHeaders = form.File["file"]
	}

	if owner == "" || projectTitle == "" || len(fileHeaders) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields", nil)
		return
	}
	c.Set("owner", owner)
	c.Set("projectTitle", projectTitle)

	files := make([]UploadFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		data, err := readFile(fh, h.MaxBytes)
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				metrics.IncUploadsRejected()
				respond.Error(c, http.StatusBadRequest, "validation_error", vErr.Error(), nil)
				return
			}
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
			return
		}
		files = append(files, UploadFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			SizeBytes:   int64(len(data)),
			Data:        data,
		})
	}

	docs, err := h.Svc.Upload(c.Request.Context(), owner, projectTitle, files)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			metrics.IncUploadsRejected()
			respond.Error(c, http.StatusBadRequest, "validation_error", vErr.Error(), nil)
		case errors.Is(err, ErrProjectNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Error uploading files", nil)
		}
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc))
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Files uploaded successfully",
		"files":   resp,
	})
}

func (h *Handler) list(c *gin.Context) {
	owner := c.Query("owner")
	projectTitle := c.Query("projectTitle")
	if owner == "" || projectTitle == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "owner and projectTitle are required", nil)
		return
	}
	c.Set("owner", owner)
	c.Set("projectTitle", projectTitle)

	docs, err := h.Svc.List(c.Request.Context(), owner, projectTitle)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error fetching documents", nil)
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) download(c *gin.Context) {
	owner := c.Query("owner")
	projectTitle := c.Query("projectTitle")
	if owner == "" || projectTitle == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "owner and projectTitle are required", nil)
		return
	}
	id := c.Param("id")
	c.Set("owner", owner)
	c.Set("projectTitle", projectTitle)
	c.Set("documentId", id)

	doc, rc, err := h.Svc.Open(c.Request.Context(), id, owner, projectTitle)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Document not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error downloading document", nil)
		return
	}
	defer rc.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", doc.FileName),
	}
	c.DataFromReader(http.StatusOK, doc.SizeBytes, doc.ContentType, rc, extraHeaders)
}

func (h *Handler) remove(c *gin.Context) {
	owner := c.Query("owner")
	projectTitle := c.Query("projectTitle")
	if owner == "" || projectTitle == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "owner and projectTitle are required", nil)
		return
	}
	id := c.Param("id")
	c.Set("owner", owner)
	c.Set("projectTitle", projectTitle)
	c.Set("documentId", id)

	if err := h.Svc.Delete(c.Request.Context(), id, owner, projectTitle); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "File not found or unauthorized", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error deleting file", nil)
		return
	}
	respond.OK(c, gin.H{"message": "File deleted successfully"})
}

func formValue(form *multipart.Form, keys ...string) string {
	for _, key := range keys {
		if vals := form.Value[key]; len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return ""
}

// readFile materializes a multipart file, refusing to read past the ceiling.
func readFile(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, &ValidationError{
			FileName: fh.Filename,
			Reason:   fmt.Sprintf("File size should be less than %dMB", maxBytes>>20),
		}
	}
	return data, nil
}
