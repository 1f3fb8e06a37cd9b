package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/sotd/internal/model"
)

// commentFile is the on-disk layout accepted by LoadFile
type commentFile struct {
	Thread   model.Thread    `yaml:"thread"`
	Comments []model.Comment `yaml:"comments"`
}

// LoadFile reads comments from a .json, .yaml/.yml or saved .html thread file.
// JSON and YAML files hold either a {thread, comments} document or a bare
// list of comments.
func LoadFile(path string) ([]model.Comment, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".html" || ext == ".htm" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return ParseThreadHTML(f, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}

	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	// YAML is a superset of JSON, so one decoder serves both
	var doc commentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var bare []model.Comment
		if errList := yaml.Unmarshal(data, &bare); errList != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
		doc.Comments = bare
	}

	for i := range doc.Comments {
		if doc.Comments[i].ThreadID == "" {
			doc.Comments[i].ThreadID = doc.Thread.ID
		}
	}
	return doc.Comments, nil
}
