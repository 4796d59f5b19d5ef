package documents

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	localstore "portal-backend/internal/shared/storage/object/local"
)

type stubProjects struct {
	existing map[string]bool
}

func (s *stubProjects) Exists(ctx context.Context, owner, title string) (bool, error) {
	return s.existing[owner+"/"+title], nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Store:     localstore.New(t.TempDir()),
		Repo:      NewMemoryRepo(),
		Projects:  &stubProjects{existing: map[string]bool{"alice/Warehouse A": true}},
		Validator: NewValidator(5 << 20),
	}
}

func pdfUpload(name string, data []byte) UploadFile {
	return UploadFile{
		Name:        name,
		ContentType: MIMEPDF,
		SizeBytes:   int64(len(data)),
		Data:        data,
	}
}

func TestServiceUploadAndOpenRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	payload := []byte("%PDF-1.4 not really a full pdf")

	docs, err := svc.Upload(ctx, "alice", "Warehouse A", []UploadFile{pdfUpload("quote.pdf", payload)})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].FileName != "quote.pdf" || docs[0].ID == "" || docs[0].StorageKey == "" {
		t.Fatalf("unexpected document %+v", docs[0])
	}

	doc, rc, err := svc.Open(ctx, docs[0].ID, "alice", "Warehouse A")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// Unparseable input is stored unchanged, so the stored payload must be
	// byte-identical to the upload.
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: got %d bytes, want %d", len(got), len(payload))
	}
	if doc.SizeBytes != int64(len(payload)) {
		t.Fatalf("expected SizeBytes %d, got %d", len(payload), doc.SizeBytes)
	}
}

func TestServiceUploadBatchFailsFast(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	files := []UploadFile{
		pdfUpload("good.pdf", []byte("%PDF-1.4 ok")),
		{Name: "bad.png", ContentType: "image/png", SizeBytes: 4, Data: []byte("png!")},
	}
	_, err := svc.Upload(ctx, "alice", "Warehouse A", files)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	docs, err := svc.List(ctx, "alice", "Warehouse A")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents after rejected batch, got %d", len(docs))
	}
}

func TestServiceUploadUnknownProject(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upload(context.Background(), "alice", "No Such Project", []UploadFile{
		pdfUpload("quote.pdf", []byte("%PDF-1.4")),
	})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestServiceUploadRequiresOwnerAndProject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	file := pdfUpload("quote.pdf", []byte("%PDF-1.4"))

	if _, err := svc.Upload(ctx, "  ", "Warehouse A", []UploadFile{file}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank owner, got %v", err)
	}
	if _, err := svc.Upload(ctx, "alice", "", []UploadFile{file}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank project, got %v", err)
	}
	if _, err := svc.Upload(ctx, "alice", "Warehouse A", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty batch, got %v", err)
	}
}

func TestServiceDeleteRemovesPayload(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	docs, err := svc.Upload(ctx, "alice", "Warehouse A", []UploadFile{pdfUpload("quote.pdf", []byte("%PDF-1.4"))})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	id := docs[0].ID

	if err := svc.Delete(ctx, id, "alice", "Warehouse A"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := svc.Open(ctx, id, "alice", "Warehouse A"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, id, "alice", "Warehouse A"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestServiceDeleteWrongOwner(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	docs, err := svc.Upload(ctx, "alice", "Warehouse A", []UploadFile{pdfUpload("quote.pdf", []byte("%PDF-1.4"))})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.Delete(ctx, docs[0].ID, "bob", "Warehouse A"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	_, rc, err := svc.Open(ctx, docs[0].ID, "alice", "Warehouse A")
	if err != nil {
		t.Fatalf("document should survive foreign delete attempt: %v", err)
	}
	rc.Close()
}
