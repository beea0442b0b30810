package dashboard

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// TabManifestDocument models a YAML manifest overriding tab metadata, mainly
// for deployments that want to rename or annotate the built-in tabs.
type TabManifestDocument struct {
	Version string        `json:"version" yaml:"version"`
	Name    string        `json:"name,omitempty" yaml:"name,omitempty"`
	Tabs    []ManifestTab `json:"tabs" yaml:"tabs"`
	Source  string        `json:"-" yaml:"-"`
}

// ManifestTab describes a single tab entry within a manifest.
type ManifestTab struct {
	Code                 Tab               `json:"code" yaml:"code"`
	Name                 string            `json:"name,omitempty" yaml:"name,omitempty"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	NameLocalized        map[string]string `json:"name_localized,omitempty" yaml:"name_localized,omitempty"`
	DescriptionLocalized map[string]string `json:"description_localized,omitempty" yaml:"description_localized,omitempty"`
}

// LoadManifestFile reads a manifest from disk and registers it against the registry.
func (r *Registry) LoadManifestFile(path string) (*TabManifestDocument, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifestDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadManifestDocument registers tab metadata from a decoded manifest.
func (r *Registry) LoadManifestDocument(doc *TabManifestDocument) error {
	if doc == nil {
		return fmt.Errorf("dashboard: manifest document is nil")
	}
	for _, tab := range doc.Tabs {
		existing, ok := r.Definition(tab.Code)
		if !ok {
			return fmt.Errorf("dashboard: manifest %s references unknown tab %s", doc.Source, tab.Code)
		}
		if tab.Name != "" {
			existing.Name = tab.Name
		}
		if tab.Description != "" {
			existing.Description = tab.Description
		}
		if len(tab.NameLocalized) > 0 {
			existing.NameLocalized = tab.NameLocalized
		}
		if len(tab.DescriptionLocalized) > 0 {
			existing.DescriptionLocalized = tab.DescriptionLocalized
		}
		if err := r.RegisterDefinition(existing); err != nil {
			return fmt.Errorf("dashboard: register tab %s from %s: %w", tab.Code, doc.Source, err)
		}
	}
	return nil
}

// ReadManifest loads a manifest file from disk without registering it.
func ReadManifest(path string) (*TabManifestDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("dashboard: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest parses a manifest document from a reader.
func DecodeManifest(r io.Reader) (*TabManifestDocument, error) {
	var doc TabManifestDocument
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Version == "" {
		doc.Version = ManifestVersion
	}
	if doc.Version != manifestVersionV1 {
		return nil, fmt.Errorf("dashboard: unsupported manifest version %s", doc.Version)
	}
	return &doc, nil
}
