package report

import (
	"fmt"
	"os"
)

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The span may be nil in which case no position information will be printed.
func ReportCompileError(src *SourceText, span *TextSpan, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		rep.displayCompileMessage("error", src, span, fmt.Sprintf(message, args...))
	}
}

// ReportCompileWarning reports a compilation warning.  The arguments are of the
// same form as those to ReportCompileError.
func ReportCompileWarning(src *SourceText, span *TextSpan, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel > LogLevelError {
		rep.displayCompileMessage("warning", src, span, fmt.Sprintf(message, args...))
	}
}

// ReportModuleWarning reports a warning about a module's configuration.
func ReportModuleWarning(modName, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel > LogLevelError {
		rep.displayCompileMessage("warning", &SourceText{ReprPath: fmt.Sprintf("<module `%s`>", modName)}, nil, fmt.Sprintf(message, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		rep.displayStdError(reprPath, err)
	}
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: a missing module
// file, an unreadable source directory, etc.
func ReportFatal(message string, args ...interface{}) {
	rep.m.Lock()

	if rep.logLevel > LogLevelSilent {
		rep.displayFatal(fmt.Sprintf(message, args...))
	}

	rep.m.Unlock()
	os.Exit(1)
}

// ReportICE reports an internal compiler error.  These are errors that
// specifically result for a bug or unexpected condition occurring with the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()

	rep.displayICE(fmt.Sprintf(message, args...))

	rep.m.Unlock()
	os.Exit(-1)
}

// -----------------------------------------------------------------------------

// DisplayInfoMessage displays a tagged informational message.  Info messages
// are only shown at the verbose log level.
func DisplayInfoMessage(tag, message string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		rep.displayInfo(tag, message)
	}
}

// ReportParseFinished displays the concluding message of a check over the
// given number of source files.
func ReportParseFinished(fileCount int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		rep.displayFinished(fileCount)
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount > 0
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount
}

// WarningCount returns the number of warnings reported so far.
func WarningCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.warningCount
}

// -----------------------------------------------------------------------------

// CatchErrors catches any errors thrown by a `panic` while a single source file
// is being processed so that one bad file cannot take down the others being
// processed alongside it.
// NB: This function must ALWAYS be deferred.
func CatchErrors(reprPath string) {
	if x := recover(); x != nil {
		if err, ok := x.(error); ok {
			ReportStdError(reprPath, err)
		} else {
			ReportICE("%s: %v", reprPath, x)
		}
	}
}
