package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var TemplatesYAML []byte

// CatalogPhase is one phase of a catalog template
type CatalogPhase struct {
	Name  string   `yaml:"name"`
	Order int      `yaml:"order"`
	Tasks []string `yaml:"tasks"`
}

// CatalogTemplate is one template of the seed catalog
type CatalogTemplate struct {
	Name        string         `yaml:"name"`
	Category    string         `yaml:"category"`
	Description string         `yaml:"description"`
	Phases      []CatalogPhase `yaml:"phases"`
}

// Catalog is the document shape of templates.yaml
type Catalog struct {
	Templates []CatalogTemplate `yaml:"templates"`
}

// ParseCatalog decodes a template catalog document
func ParseCatalog(raw []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}
	for i, t := range catalog.Templates {
		if t.Name == "" {
			return nil, fmt.Errorf("template %d has no name", i)
		}
	}
	return &catalog, nil
}

// DefaultCatalog returns the embedded template catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(TemplatesYAML)
}
