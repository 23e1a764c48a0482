package mods

import (
	"fentc/common"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FentModule represents a Fent module: a directory of source files described
// by a module file.
type FentModule struct {
	// Name is the module name.
	Name string

	// AbsPath is the absolute path to the root of the module.
	AbsPath string

	// FentVersion is the version of Fent the module was written for.
	FentVersion string

	// SourceDir is the absolute path to the directory holding the module's
	// source files.
	SourceDir string

	// MaxNestingDepth is the parser nesting limit for this module's files.
	MaxNestingDepth int
}

// SourceFiles returns the absolute paths of all the Fent source files in the
// module's source directory sorted by name.  Subdirectories are not searched.
func (fm *FentModule) SourceFiles() ([]string, error) {
	entries, err := os.ReadDir(fm.SourceDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), common.FentFileExt) {
			files = append(files, filepath.Join(fm.SourceDir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsValidIdentifier returns whether or not a given string would be a valid
// module name.
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || c == '-' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
