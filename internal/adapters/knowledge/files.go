package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chartwell/andy/internal/domain/entities"
)

// textExtensions are the plain-text formats loadable as corpus documents.
var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// LoadDocumentsDir reads every plain-text file in dir (non-recursive)
// into corpus documents: id and title from the file name, docType "file".
// This lets a deployment ship its knowledge base as a folder of markdown
// next to the binary.
func LoadDocumentsDir(dir string) ([]entities.Document, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge dir: %w", err)
	}

	var docs []entities.Document
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(f.Name()))
		if !textExtensions[ext] {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name(), err)
		}
		name := strings.TrimSuffix(f.Name(), ext)
		docs = append(docs, entities.Document{
			ID:      "file-" + name,
			Title:   name,
			DocType: "file",
			Content: string(content),
		})
	}
	return docs, nil
}
