package compress

import (
	"bytes"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Result describes the outcome of a PDF re-serialization attempt.
// FallbackUsed reports that the original bytes were returned unchanged; the
// caller-facing contract never treats that as a failure.
type Result struct {
	Data           []byte
	FallbackUsed   bool
	OriginalSize   int64
	CompressedSize int64
}

// BytesSaved returns how many bytes re-serialization removed, zero on fallback.
func (r Result) BytesSaved() int64 {
	if r.FallbackUsed || r.CompressedSize >= r.OriginalSize {
		return 0
	}
	return r.OriginalSize - r.CompressedSize
}

// Compress re-serializes a PDF through pdfcpu's object-stream optimizer.
// Any load or save failure, and any output that can no longer be read back as
// a PDF, falls back to the original bytes. Compress never returns an error.
func Compress(data []byte) Result {
	fallback := Result{
		Data:           data,
		FallbackUsed:   true,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(data)),
	}
	if len(data) == 0 {
		return fallback
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, conf); err != nil {
		return fallback
	}

	out := buf.Bytes()
	if len(out) == 0 {
		return fallback
	}
	if _, err := PageCount(out); err != nil {
		return fallback
	}

	return Result{
		Data:           out,
		FallbackUsed:   false,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
	}
}

// PageCount reports the number of pages in a PDF payload.
func PageCount(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}
