package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yohoo/startpage/internal/domain"
	"github.com/yohoo/startpage/internal/logger"
)

// WriteByCategory splits records into one JSON file per category under
// dir, named <category>.json. Records without a category fall into
// DefaultCategory. The directory is created if missing; relative order
// within each file follows the input.
func (e *Exporter) WriteByCategory(dir string, records []domain.MergedRecord) error {
	byCategory := make(map[string][]domain.MergedRecord)
	var order []string
	for _, r := range records {
		category := r.Category
		if category == "" {
			category = domain.DefaultCategory
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], r)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrExportIO, err)
	}

	for _, category := range order {
		items := byCategory[category]
		path := filepath.Join(dir, category+".json")
		if err := e.WriteJSON(path, items); err != nil {
			return err
		}
		e.log.Info("exported category",
			logger.String("category", category),
			logger.Int("items", len(items)))
	}

	return nil
}
