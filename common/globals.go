package common

// FentVersion is the current Fent version as a string.
const FentVersion string = "0.1.0"

// FentModuleFileName is the name for Fent module files.
const FentModuleFileName string = "fent-mod.toml"

// FentFileExt is the file extension for a Fent source file.
const FentFileExt string = ".fent"

// UnitTypeName is the name of the type of functions that declare no return
// type.
const UnitTypeName string = "unit"

// DefaultMaxDepth is the default limit on how deeply expressions and blocks may
// nest before the parser gives up on them.
const DefaultMaxDepth int = 256
