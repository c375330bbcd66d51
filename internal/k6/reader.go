package k6

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// ErrDecodeSummary is returned when a summary document cannot be parsed.
var ErrDecodeSummary = errors.New("decode k6 summary")

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

type Reader struct {
	r io.Reader
}

// Read decodes a whole summary document.
func (r *Reader) Read(ctx context.Context) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	var summary Summary
	if err := json.NewDecoder(r.r).Decode(&summary); err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrDecodeSummary, err)
	}

	if summary.Metrics == nil {
		summary.Metrics = make(Metrics)
	}

	if summary.Thresholds == nil {
		summary.Thresholds = make(map[string]Threshold)
	}

	return summary, nil
}

// ReadFile opens name in fsys and decodes it.
func ReadFile(ctx context.Context, fsys fs.FS, name string) (Summary, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return Summary{}, fmt.Errorf("fs.Open: %w", err)
	}

	defer file.Close()

	summary, err := NewReader(file).Read(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("reader Read %s: %w", name, err)
	}

	return summary, nil
}
