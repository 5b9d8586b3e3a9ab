package opf

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// projectTag is the YAML tag Datavyu puts on the project descriptor.
const projectTag = "!project"

// projectVersion is the descriptor version written for new archives.
const projectVersion = 5

// Project is the descriptor stored in the "project" member.
type Project struct {
	// Name is the spreadsheet name.
	Name string `yaml:"name"`
	// DatabaseFile names the member holding the db text.
	DatabaseFile string `yaml:"dbFile"`
	// OriginalPath is where the project was first saved, if known.
	OriginalPath string `yaml:"origpath,omitempty"`
	// Version is the descriptor format version.
	Version int `yaml:"version"`
	// ViewerSettings lists attached media viewers; always empty for new archives.
	ViewerSettings []interface{} `yaml:"viewerSettings"`
}

// NewProject returns a minimal descriptor for a new archive.
func NewProject(name, path string) Project {
	return Project{
		Name:           name,
		DatabaseFile:   DBMember,
		OriginalPath:   path,
		Version:        projectVersion,
		ViewerSettings: []interface{}{},
	}
}

// MarshalProject renders p as a "!project"-tagged YAML document.
func MarshalProject(p Project) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(p); err != nil {
		return nil, fmt.Errorf("encode project: %w", err)
	}
	node.Tag = projectTag
	return yaml.Marshal(&node)
}

// UnmarshalProject parses a project descriptor, tolerating the local tag.
func UnmarshalProject(data []byte) (Project, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Project{}, fmt.Errorf("parse project: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return Project{}, fmt.Errorf("parse project: expected a mapping, got kind %d", root.Kind)
	}
	root.Tag = "!!map"

	var p Project
	if err := root.Decode(&p); err != nil {
		return Project{}, fmt.Errorf("decode project: %w", err)
	}
	return p, nil
}
