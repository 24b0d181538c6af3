package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

//go:embed data/portfolio.json
var defaultDocument []byte

// Default returns the built-in portfolio. It panics if the embedded document
// is invalid, which is a build defect.
func Default() *Document {
	doc, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("content: embedded portfolio: %v", err))
	}
	return doc
}

// Load reads and validates the document at path. Both JSON and YAML are
// accepted; "~" is expanded to the home directory.
func Load(path string) (*Document, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand content path: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return doc, nil
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrMissingField)
		}
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// OrDefault loads path, or returns the built-in document when path is empty.
func OrDefault(path string) (*Document, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
