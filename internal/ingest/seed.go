package ingest

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/agentic-research/arbor/internal/tree"
)

// Seed files describe a tree layout declaratively:
//
//	name = "PROJECT"
//
//	folder "src" {
//	  file "main.go" {}
//	  folder "internal" {
//	    open = false
//	  }
//	}
//	file "README.md" {}
type seedRoot struct {
	Name    string        `hcl:"name,optional"`
	Folders []*seedFolder `hcl:"folder,block"`
	Files   []*seedFile   `hcl:"file,block"`
}

type seedFolder struct {
	Name    string        `hcl:"name,label"`
	Open    *bool         `hcl:"open,optional"`
	Folders []*seedFolder `hcl:"folder,block"`
	Files   []*seedFile   `hcl:"file,block"`
}

type seedFile struct {
	Name string `hcl:"name,label"`
}

// ParseSeed builds a snapshot from HCL seed source. filename is only used
// in diagnostics.
func ParseSeed(src []byte, filename string) (*tree.Snapshot, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse seed %s: %w", filename, diags)
	}

	var root seedRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decode seed %s: %w", filename, diags)
	}

	s := tree.New(root.Name)
	return seedChildren(s, s.RootID(), root.Folders, root.Files)
}

// LoadSeed reads and parses an HCL seed file.
func LoadSeed(path string) (*tree.Snapshot, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return ParseSeed(src, path)
}

func seedChildren(s *tree.Snapshot, parentID string, folders []*seedFolder, files []*seedFile) (*tree.Snapshot, error) {
	for _, f := range folders {
		next, id := s.AddNode(tree.KindFolder, f.Name, parentID)
		if next == s {
			return nil, fmt.Errorf("seed: folder %q rejected under %q", f.Name, parentID)
		}
		s = next
		var err error
		s, err = seedChildren(s, id, f.Folders, f.Files)
		if err != nil {
			return nil, err
		}
		if f.Open != nil && !*f.Open {
			s = s.ToggleOpen(id)
		}
	}
	for _, f := range files {
		next, _ := s.AddNode(tree.KindFile, f.Name, parentID)
		if next == s {
			return nil, fmt.Errorf("seed: file %q rejected under %q", f.Name, parentID)
		}
		s = next
	}
	return s, nil
}
