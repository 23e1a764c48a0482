package cmd

import (
	"fentc/common"
	"fentc/report"
	"os"
	"strconv"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `fentc` CLI utility
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("fentc", "fentc is the front end of the Fent compiler", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "parse a module and report syntax errors", true)
	checkCmd.AddPrimaryArg("module-path", "the path to the module to check", true)

	parseCmd := cli.AddSubcommand("parse", "parse a source file and print its syntax tree", true)
	parseCmd.AddPrimaryArg("file-path", "the path to the source file", true)
	formatArg := parseCmd.AddSelectorArg("format", "f", "the output format", false, []string{"json", "yaml", "pretty"})
	formatArg.SetDefaultValue("json")
	parseCmd.AddStringArg("max-depth", "md", "the maximum nesting depth", false)

	lexCmd := cli.AddSubcommand("lex", "print the tokens of a source file", true)
	lexCmd.AddPrimaryArg("file-path", "the path to the source file", true)

	cli.AddSubcommand("version", "print the Fent version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	// initialize the reporter
	report.InitReporter(report.LogLevelFromName(result.Arguments["loglevel"].(string)))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult)
	case "parse":
		execParseCommand(subResult)
	case "lex":
		execLexCommand(subResult)
	case "version":
		report.DisplayInfoMessage("Fent Version", common.FentVersion)
	}

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// execCheckCommand executes the check subcommand.
func execCheckCommand(result *olive.ArgParseResult) {
	modRelPath, _ := result.PrimaryArg()

	c, err := NewChecker(modRelPath)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	c.Check()
	report.ReportParseFinished(len(c.Files))
}

// execParseCommand executes the parse subcommand.
func execParseCommand(result *olive.ArgParseResult) {
	filePath, _ := result.PrimaryArg()

	maxDepth := common.DefaultMaxDepth
	if depthArg, ok := result.Arguments["max-depth"]; ok {
		n, err := strconv.Atoi(depthArg.(string))
		if err != nil || n <= 0 {
			report.ReportFatal("max depth must be a positive integer, not `%s`", depthArg)
		}

		maxDepth = n
	}

	sf, err := LoadSourceFile(filePath)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	sf.Parse(maxDepth)

	out, err := DumpProgram(sf.Program, result.Arguments["format"].(string))
	if err != nil {
		report.ReportFatal("failed to dump syntax tree of `%s`: %s", sf.Src.ReprPath, err)
	}

	os.Stdout.Write(out)
}

// execLexCommand executes the lex subcommand.
func execLexCommand(result *olive.ArgParseResult) {
	filePath, _ := result.PrimaryArg()

	sf, err := LoadSourceFile(filePath)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	os.Stdout.Write(DumpTokens(sf.Src.Text))
}
