package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	reportout "breathe/internal/modules/report/port/out"
)

type FileArtifactWriter struct {
	dir string
}

func NewFileArtifactWriter(exportPath string) reportout.ArtifactWriter {
	return &FileArtifactWriter{dir: exportPath}
}

func (w *FileArtifactWriter) WriteText(_ context.Context, name, content string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
