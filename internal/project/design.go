package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eisla/eisla/internal/model"
)

// LoadDesign reads a design document from a JSON file. A design without a
// name is named after the file it came from.
func LoadDesign(path string) (model.Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Design{}, fmt.Errorf("reading design: %w", err)
	}
	var d model.Design
	if err := json.Unmarshal(data, &d); err != nil {
		return model.Design{}, fmt.Errorf("parsing design %s: %w", path, err)
	}
	if d.Name == "" {
		base := filepath.Base(path)
		d.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return d, nil
}

// SaveDesign writes a design document to a JSON file, creating parent
// directories as needed.
func SaveDesign(path string, d model.Design) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
