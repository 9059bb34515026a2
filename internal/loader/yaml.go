// internal/loader/yaml.go
package loader

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/javajoker/imi-inventory/internal/models"
)

// LoadCategories picks the decoder from the file extension: .yaml and .yml are
// read as YAML, anything else as JSON.
func LoadCategories(path string, counters *models.Counters) ([]*models.Category, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadCategoriesFromYAML(path, counters)
	default:
		return LoadCategoriesFromJSON(path, counters)
	}
}

func LoadCategoriesFromYAML(path string, counters *models.Counters) ([]*models.Category, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog %s", path)
	}
	defer f.Close()

	categories, err := DecodeCategoriesYAML(f, counters)
	if err != nil {
		return nil, errors.Wrapf(err, "load catalog %s", path)
	}
	return categories, nil
}

// DecodeCategoriesYAML accepts the same document shape as DecodeCategories written as YAML.
func DecodeCategoriesYAML(r io.Reader, counters *models.Counters) ([]*models.Category, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Wrap(structureError("empty document"), "decode catalog")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))

	var records []categoryRecord
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Wrap(structureError(err.Error()), "decode catalog")
	}

	var trailing yaml.Node
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(structureError("unexpected document after the category list"), "decode catalog")
	}
	return buildCategories(records, counters)
}
