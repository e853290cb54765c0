package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"catalogbuilder/internal/model"
)

// Encode renders v as two-space indented JSON without HTML escaping and
// without a trailing newline.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func WriteCatalog(path string, items []model.CatalogItem) error {
	if items == nil {
		items = []model.CatalogItem{}
	}
	b, err := Encode(items)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return writeFile(path, b)
}

// WriteEmptyCatalog replaces the catalog with [] so the site still loads.
func WriteEmptyCatalog(path string) error {
	return writeFile(path, []byte("[]"))
}

func WriteSummary(path string, s model.RunSummary) error {
	b, err := Encode(s)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return writeFile(path, b)
}

// writeFile swaps the file in with a rename so readers never see a partial write.
func writeFile(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
