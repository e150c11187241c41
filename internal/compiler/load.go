package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/roach88/rdforder/internal/term"
)

// Graph is a compiled graph document.
type Graph struct {
	Name       string
	Statements []term.Statement
	FileCount  int // Number of CUE files found
}

// LoadDir loads the CUE instance in dir and compiles its graph field.
func LoadDir(dir string) (*Graph, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("graph directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	files, err := FindCUEFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CUE files found in %s", dir)
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances loaded from %s", dir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("loading CUE files: %w", inst.Err)
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	graphVal := value.LookupPath(cue.ParsePath("graph"))
	if !graphVal.Exists() {
		return nil, &CompileError{
			Field:   "graph",
			Message: "no graph found in " + dir,
			Pos:     value.Pos(),
		}
	}

	sts, err := CompileGraph(graphVal)
	if err != nil {
		return nil, err
	}
	name, err := GraphName(graphVal)
	if err != nil {
		return nil, err
	}
	return &Graph{Name: name, Statements: sts, FileCount: len(files)}, nil
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
