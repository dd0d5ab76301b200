package domain

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// categoryFile is the on-disk shape of a category table override.
type categoryFile struct {
	Categories []Category `yaml:"categories"`
}

// LoadCategories returns the category table to use for a run. With an
// empty path, or a path that does not exist, the built-in table is used.
// An explicitly provided file that exists but cannot be parsed is an
// error; an existing file with no categories falls back to the default.
//
// Keywords are normalized to lowercase so matching semantics stay
// identical regardless of how the file is written.
func LoadCategories(path string) (CategoryTable, error) {
	if path == "" {
		return DefaultCategories(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCategories(), nil
		}
		return nil, fmt.Errorf("failed to read category file: %w", err)
	}

	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse category file: %w", err)
	}

	table := make(CategoryTable, 0, len(file.Categories))
	for _, category := range file.Categories {
		if category.Name == "" || len(category.Keywords) == 0 {
			continue
		}
		keywords := make([]string, 0, len(category.Keywords))
		for _, keyword := range category.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		if len(keywords) > 0 {
			table = append(table, Category{Name: category.Name, Keywords: keywords})
		}
	}

	if len(table) == 0 {
		return DefaultCategories(), nil
	}

	return table, nil
}
