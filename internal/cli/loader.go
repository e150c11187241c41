package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"cuelang.org/go/cue/token"

	"github.com/roach88/rdforder/internal/compiler"
	"github.com/roach88/rdforder/internal/lexical"
	"github.com/roach88/rdforder/internal/term"
)

// Input sources.
const (
	SourceNTriples = "ntriples"
	SourceCUE      = "cue"
)

// LoadResult contains the statements read from one input.
type LoadResult struct {
	Statements []term.Statement
	Source     string // SourceNTriples or SourceCUE
	Graph      string // graph name declared by a CUE document, if any
	FileCount  int    // Number of files read
}

// LoadError represents an error that occurred while reading input.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadStatements reads statements from path. A directory is compiled as a
// CUE graph document; a file is read as N-Triples; "-" reads N-Triples
// from stdin. Errors are always *LoadError.
func LoadStatements(path string, stdin io.Reader) (*LoadResult, error) {
	if path == "-" {
		return readNTriples("stdin", stdin)
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("input not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing input: %v", err)}
	}

	if info.IsDir() {
		return loadCUE(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("opening %s: %v", path, err)}
	}
	defer f.Close()
	return readNTriples(path, f)
}

func readNTriples(name string, r io.Reader) (*LoadResult, error) {
	sts, err := lexical.ReadStatements(r)
	if err != nil {
		var syntaxErr *lexical.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, &LoadError{Code: ErrCodeSyntax, Message: fmt.Sprintf("%s: %v", name, syntaxErr)}
		}
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("reading %s: %v", name, err)}
	}
	return &LoadResult{Statements: sts, Source: SourceNTriples, FileCount: 1}, nil
}

func loadCUE(dir string) (*LoadResult, error) {
	files, err := compiler.FindCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(files) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	graph, err := compiler.LoadDir(dir)
	if err != nil {
		return nil, convertCompileError(err)
	}
	return &LoadResult{
		Statements: graph.Statements,
		Source:     SourceCUE,
		Graph:      graph.Name,
		FileCount:  graph.FileCount,
	}, nil
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    ErrCodeCompile,
			Message: fmt.Sprintf("%s: %s", compileErr.Field, compileErr.Message),
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{Code: ErrCodeLoadFailed, Message: err.Error()}
}

// loadOrFail loads statements, reporting failures through the formatter.
func loadOrFail(f *OutputFormatter, path string, stdin io.Reader) (*LoadResult, error) {
	result, err := LoadStatements(path, stdin)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			var details any
			if loadErr.Pos.IsValid() {
				details = map[string]any{
					"file":   loadErr.Pos.Filename(),
					"line":   loadErr.Pos.Line(),
					"column": loadErr.Pos.Column(),
				}
			}
			return nil, f.Fail(loadErr.Code, loadErr.Message, details)
		}
		return nil, f.Fail(ErrCodeGeneric, err.Error(), nil)
	}
	f.VerboseLog("Read %d statement(s) from %d %s file(s)", len(result.Statements), result.FileCount, result.Source)
	return result, nil
}
