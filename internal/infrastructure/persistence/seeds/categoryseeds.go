package seeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"marketplace/internal/domain/category"
	"marketplace/internal/infrastructure/persistence/models"
)

//go:embed categories.yaml
var categoriesYAML []byte

type CategoryFixture struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

type categoryFixtures struct {
	Categories []CategoryFixture `yaml:"categories"`
}

// DefaultCategories parses the embedded fixture file.
func DefaultCategories() ([]CategoryFixture, error) {
	var fixtures categoryFixtures
	if err := yaml.Unmarshal(categoriesYAML, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse category fixtures: %w", err)
	}
	for _, f := range fixtures.Categories {
		if _, err := category.ParseType(f.Type); err != nil {
			return nil, fmt.Errorf("category fixture %q: %w", f.Name, err)
		}
	}
	return fixtures.Categories, nil
}

// SeedCategories creates the default categories that do not exist yet.
// It returns the number of rows created.
func SeedCategories(db *gorm.DB) (int, error) {
	fixtures, err := DefaultCategories()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, f := range fixtures {
		typ, _ := category.ParseType(f.Type)
		model := models.CategoryModel{
			Name:        f.Name,
			Type:        string(typ),
			Description: f.Description,
		}
		var existing int64
		if err := db.Model(&models.CategoryModel{}).
			Where("name = ? AND type = ?", model.Name, model.Type).
			Count(&existing).Error; err != nil {
			return created, fmt.Errorf("failed to check category %q: %w", f.Name, err)
		}
		if existing > 0 {
			continue
		}
		if err := db.Create(&model).Error; err != nil {
			return created, fmt.Errorf("failed to seed category %q: %w", f.Name, err)
		}
		created++
	}
	return created, nil
}
