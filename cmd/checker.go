package cmd

import (
	"fentc/ast"
	"fentc/mods"
	"fentc/report"
	"fentc/syntax"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sync"
)

// SourceFile is a single Fent source file being checked.
type SourceFile struct {
	// AbsPath is the absolute path to the file.
	AbsPath string

	// Src is the text of the file.
	Src *report.SourceText

	// Program is the parsed program.  It is nil until the file is parsed.
	Program *ast.Program

	// Diagnostics are the syntax errors found in the file.
	Diagnostics []*syntax.Diagnostic
}

// LoadSourceFile reads the source file at the given path.
func LoadSourceFile(path string) (*SourceFile, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid source path `%s`: %w", path, err)
	}

	return loadSourceFile(absPath, filepath.Base(absPath))
}

func loadSourceFile(absPath, reprPath string) (*SourceFile, error) {
	buff, err := ioutil.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read source file: %w", err)
	}

	return &SourceFile{
		AbsPath: absPath,
		Src:     report.NewSourceText(reprPath, string(buff)),
	}, nil
}

// Parse parses the source file and reports all of its syntax errors.
func (sf *SourceFile) Parse(maxDepth int) {
	result := syntax.Parse(sf.Src.Text, syntax.WithMaxDepth(maxDepth))
	sf.Program = result.Program
	sf.Diagnostics = result.Diagnostics

	for _, diag := range sf.Diagnostics {
		if diag.Context == syntax.ContextInternal {
			report.ReportICE("%s: %s", sf.Src.ReprPath, diag.Error())
		} else {
			report.ReportCompileError(sf.Src, diag.Span, "%s", diag.Error())
		}
	}
}

// -----------------------------------------------------------------------------

// Checker checks all the source files of a module for syntax errors.
type Checker struct {
	// Mod is the module being checked.
	Mod *mods.FentModule

	// Files is the list of source files in the module.
	Files []*SourceFile
}

// NewChecker loads the module at the given path for checking.
func NewChecker(modPath string) (*Checker, error) {
	modAbsPath, err := filepath.Abs(modPath)
	if err != nil {
		return nil, fmt.Errorf("invalid module path `%s`: %w", modPath, err)
	}

	mod, err := mods.LoadModule(modAbsPath)
	if err != nil {
		return nil, err
	}

	return &Checker{Mod: mod}, nil
}

// Check parses every source file in the module concurrently.  It returns
// whether all the files parsed without errors.
func (c *Checker) Check() bool {
	paths, err := c.Mod.SourceFiles()
	if err != nil {
		report.ReportFatal("failed to read source directory of module `%s`: %s", c.Mod.Name, err)
	}

	if len(paths) == 0 {
		report.ReportFatal("module `%s` contains no source files", c.Mod.Name)
	}

	c.Files = make([]*SourceFile, len(paths))

	wg := &sync.WaitGroup{}
	for i, path := range paths {
		wg.Add(1)

		go func(i int, path string) {
			defer wg.Done()

			reprPath := fmt.Sprintf("[%s] %s", c.Mod.Name, filepath.Base(path))
			defer report.CatchErrors(reprPath)

			sf, err := loadSourceFile(path, reprPath)
			if err != nil {
				report.ReportStdError(reprPath, err)
				return
			}

			c.Files[i] = sf
			sf.Parse(c.Mod.MaxNestingDepth)

			report.DisplayInfoMessage("Parsed", fmt.Sprintf("%s (%d functions)", reprPath, len(sf.Program.Funcs)))
		}(i, path)
	}

	wg.Wait()

	return !report.AnyErrors()
}
