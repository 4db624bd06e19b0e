package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentic-research/arbor/internal/tree"
)

// ScanDir builds a snapshot mirroring the folder/file layout under dir.
// The root takes the directory's base name. Dot-entries are skipped so
// .git and editor droppings don't pollute the model.
func ScanDir(dir string) (*tree.Snapshot, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %s: not a directory", dir)
	}

	s := tree.New(filepath.Base(filepath.Clean(dir)))
	return scanInto(s, s.RootID(), dir)
}

func scanInto(s *tree.Snapshot, parentID, dir string) (*tree.Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if name == "" || name[0] == '.' {
			continue
		}
		if e.IsDir() {
			var id string
			s, id = s.AddNode(tree.KindFolder, name, parentID)
			s, err = scanInto(s, id, filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
			continue
		}
		s, _ = s.AddNode(tree.KindFile, name, parentID)
	}
	return s, nil
}
