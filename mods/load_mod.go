package mods

import (
	"errors"
	"fentc/common"
	"fentc/report"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// tomlModule represents a Fent module as it is encoded in TOML
type tomlModule struct {
	Name            string `toml:"name"`
	FentVersion     string `toml:"fent-version"`
	SourceDir       string `toml:"source-dir"`
	MaxNestingDepth int    `toml:"max-nesting-depth"`
}

// ErrInvalidModule is wrapped by all errors reporting a module file whose
// contents are wrong.
var ErrInvalidModule = errors.New("invalid module")

// LoadModule loads and validates a module.  `abspath` is the absolute path to
// the module directory.
func LoadModule(abspath string) (*FentModule, error) {
	// open file
	f, err := os.Open(filepath.Join(abspath, common.FentModuleFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to open module file at `%s`: %w", abspath, err)
	}
	defer f.Close()

	// unmarshal the contents
	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading module file at `%s`: %w", abspath, err)
	}

	tomlMod := &tomlModule{}
	if err := toml.Unmarshal(buff, tomlMod); err != nil {
		return nil, fmt.Errorf("error parsing module file at `%s`: %w", abspath, err)
	}

	fentMod := &FentModule{AbsPath: abspath}
	if err := validateModule(fentMod, tomlMod); err != nil {
		return nil, err
	}

	return fentMod, nil
}

// validateModule checks that the module contents are valid and moves them over
// to the Fent module.
func validateModule(fentMod *FentModule, tomlMod *tomlModule) error {
	if tomlMod.Name == "" {
		return fmt.Errorf("%w at `%s`: missing module name", ErrInvalidModule, fentMod.AbsPath)
	}

	if !IsValidIdentifier(tomlMod.Name) {
		return fmt.Errorf("%w at `%s`: module name `%s` must be a valid identifier", ErrInvalidModule, fentMod.AbsPath, tomlMod.Name)
	}

	if tomlMod.MaxNestingDepth < 0 {
		return fmt.Errorf("%w at `%s`: max-nesting-depth must not be negative", ErrInvalidModule, fentMod.AbsPath)
	}

	if tomlMod.FentVersion != common.FentVersion {
		report.ReportModuleWarning(tomlMod.Name, "version of module `%s` (v%s) does not match current fent version (v%s)",
			tomlMod.Name,
			tomlMod.FentVersion,
			common.FentVersion,
		)
	}

	fentMod.Name = tomlMod.Name
	fentMod.FentVersion = tomlMod.FentVersion

	// the source directory is relative to the module root
	if tomlMod.SourceDir == "" || tomlMod.SourceDir == "." {
		fentMod.SourceDir = fentMod.AbsPath
	} else if filepath.IsAbs(tomlMod.SourceDir) {
		return fmt.Errorf("%w at `%s`: source-dir must be relative to the module", ErrInvalidModule, fentMod.AbsPath)
	} else {
		fentMod.SourceDir = filepath.Join(fentMod.AbsPath, filepath.FromSlash(tomlMod.SourceDir))
	}

	if tomlMod.MaxNestingDepth == 0 {
		fentMod.MaxNestingDepth = common.DefaultMaxDepth
	} else {
		fentMod.MaxNestingDepth = tomlMod.MaxNestingDepth
	}

	return nil
}
