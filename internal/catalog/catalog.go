package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Package describes a service tier offered by the studio.
type Package struct {
	Name        string   `json:"name" yaml:"name"`
	Price       string   `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
}

// Catalog holds the configured service tiers keyed by package type.
type Catalog struct {
	packages map[string]Package
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{packages: map[string]Package{
		"lite": {
			Name:        "Virtual Ad Lite",
			Price:       "$2,999",
			Description: "Perfect for social media campaigns and promotional content",
			Features: []string{
				"30-60 second video",
				"Basic virtual environment",
				"1 revision included",
				"3-5 day delivery",
				"HD 1080p output",
			},
		},
		"signature": {
			Name:        "Signature Scene",
			Price:       "$7,999",
			Description: "Full production with custom virtual environments and advanced effects",
			Features: []string{
				"2-5 minute video",
				"Custom virtual set design",
				"Motion capture integration",
				"3 revisions included",
				"5-7 day delivery",
				"4K output available",
			},
		},
		"immersive": {
			Name:        "Immersive Experience",
			Price:       "$15,999",
			Description: "Premium immersive content with VR/AR capabilities",
			Features: []string{
				"5-10 minute experience",
				"360° immersive environment",
				"VR/AR compatibility",
				"Unlimited revisions",
				"7-10 day delivery",
				"8K output available",
			},
		},
	}}
}

// LoadFile reads a catalog from a YAML file mapping package keys to packages.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var packages map[string]Package
	if err := yaml.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no packages", path)
	}

	return &Catalog{packages: packages}, nil
}

// Has reports whether the package type exists in the catalog.
func (c *Catalog) Has(packageType string) bool {
	_, ok := c.packages[packageType]
	return ok
}

// Get returns the package for a type, if configured.
func (c *Catalog) Get(packageType string) (Package, bool) {
	pkg, ok := c.packages[packageType]
	return pkg, ok
}

// Keys returns the configured package types in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.packages))
	for key := range c.packages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Packages returns the full catalog keyed by package type.
func (c *Catalog) Packages() map[string]Package {
	out := make(map[string]Package, len(c.packages))
	for key, pkg := range c.packages {
		out[key] = pkg
	}
	return out
}
