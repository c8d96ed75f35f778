package fs

import (
	"context"

	"github.com/aretw0/notebot/pkg/core"
)

// DefaultExportFile is the name of the shared export document.
const DefaultExportFile = "notes_export.txt"

// Exporter writes numbered note listings to a single shared file.
// Every export overwrites the previous one regardless of the user.
type Exporter struct {
	Path string
}

// NewExporter creates an exporter writing to path.
func NewExporter(path string) *Exporter {
	return &Exporter{Path: path}
}

// Export writes the listing and returns the file path.
func (e *Exporter) Export(ctx context.Context, notes []string) (string, error) {
	if err := writeFileAtomic(e.Path, core.RenderExport(notes), 0644); err != nil {
		return "", err
	}
	return e.Path, nil
}

var _ core.Exporter = (*Exporter)(nil)
