// Package export serializes link records to their file formats and merges
// previously exported record sets.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yohoo/startpage/internal/domain"
	"github.com/yohoo/startpage/internal/logger"
	"github.com/yohoo/startpage/internal/utils"
)

// Exporter writes record lists to disk.
type Exporter struct {
	log logger.Logger
}

// New builds an Exporter.
func New(log logger.Logger) *Exporter {
	return &Exporter{log: log}
}

// WriteJSON writes v as a pretty-printed UTF-8 JSON document with 2-space
// indentation and non-ASCII characters left unescaped. The document is
// written to a temporary file and renamed into place so a failure never
// leaves partial output at path.
func (e *Exporter) WriteJSON(path string, v any) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.json")
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrExportIO, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		utils.Close(tmp)
		return fmt.Errorf("%w: %s", domain.ErrExportIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrExportIO, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrExportIO, err)
	}

	e.log.Info("exported records", logger.String("path", path))
	return nil
}

// ReadLinks loads a previously exported history record set.
func ReadLinks(path string) ([]domain.ScoredLink, error) {
	var links []domain.ScoredLink
	if err := readJSON(path, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// ReadBookmarks loads a previously exported bookmark record set.
func ReadBookmarks(path string) ([]domain.BookmarkRecord, error) {
	var records []domain.BookmarkRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadMerged loads a previously merged record set.
func ReadMerged(path string) ([]domain.MergedRecord, error) {
	var records []domain.MergedRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
