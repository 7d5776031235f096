package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/toyz/flatgen/internal/cli"
	"github.com/toyz/flatgen/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the requested operation and returns the exit code
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("flatgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		headersFlag = flags.String("headers", cli.DefaultHeaderDir, "Directory holding the isteam*.h headers")
		outputFlag  = flags.String("output", cli.DefaultOutputDir, "Directory receiving the generated .cpp files")
		configFlag  = flags.String("config", "", "YAML file overriding the built-in tables")
		verboseFlag = flags.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flags.Bool("quiet", false, "Only show errors and final results")
		cleanFlag   = flags.Bool("clean", false, "Delete the generated .cpp files from the output directory")
		helpFlag    = flags.Bool("help", false, "Show help information")
	)

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: flatgen [options]\n\n")
		fmt.Fprintf(stderr, "Steamworks Flat API Generator\n")
		fmt.Fprintf(stderr, "Reads the pure virtual interfaces of the Steamworks headers and writes one flat\n")
		fmt.Fprintf(stderr, "C wrapper file per header, plus a unity build file including all of them.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  flatgen                                    # Read steam/, write wrapper/\n")
		fmt.Fprintf(stderr, "  flatgen -headers sdk/public/steam -output out\n")
		fmt.Fprintf(stderr, "  flatgen -config flatgen.yaml               # Override exclusions, aliases or type tables\n")
		fmt.Fprintf(stderr, "  flatgen -clean                             # Delete the generated files\n")
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	if *helpFlag {
		flags.Usage()
		return 0
	}

	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n\n", flags.Args())
		flags.Usage()
		return 1
	}

	// Create diagnostic system based on flags
	level := utils.DiagnosticInfo
	if *quietFlag {
		level = utils.DiagnosticError
	} else if *verboseFlag {
		level = utils.DiagnosticVerbose
	}
	diagnostics := utils.NewDiagnosticSystemWithWriters(level, stdout, stderr)
	reporter := cli.NewDiagnosticReporterWithWriter(*verboseFlag, stderr)

	diagnostics.Header("Steamworks Flat API Generator")

	if *cleanFlag {
		return clean(*outputFlag, *configFlag, diagnostics, reporter)
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Headers: %s", *headersFlag)
		diagnostics.List("Output: %s", *outputFlag)
		if *configFlag != "" {
			diagnostics.List("Config: %s", *configFlag)
		}
		diagnostics.List("Verbose mode: enabled")
	}

	generator := cli.NewGeneratorWithDiagnostics(diagnostics)

	diagnostics.Subsection("Code Generation")
	err := generator.Run(cli.Config{
		HeaderDir:  *headersFlag,
		OutputDir:  *outputFlag,
		ConfigFile: *configFlag,
		Verbose:    *verboseFlag,
	})
	if err != nil {
		reporter.ReportError(err)
		return 1
	}

	summary := generator.GetSummary()
	diagnostics.Summary("Generation Complete!", []utils.SummaryItem{
		{Label: "Documents processed", Value: summary.DocumentsProcessed},
		{Label: "Files generated", Value: len(summary.GeneratedFiles)},
		{Label: "Interfaces found", Value: summary.InterfacesFound},
		{Label: "Methods emitted", Value: summary.MethodsEmitted},
		{Label: "Warnings", Value: len(summary.Warnings)},
		{Label: "Dropped declarations", Value: len(summary.Abandoned)},
	})

	// Show generated files in verbose mode
	if diagnostics.Level() >= utils.DiagnosticVerbose && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
		if summary.UnityFile != "" {
			diagnostics.List("%s", summary.UnityFile)
		}
	}
	diagnostics.Verbose("Run ID: %s", summary.RunID)

	for _, name := range summary.UnresolvedCollisions {
		reporter.ReportWarning(
			fmt.Sprintf("%s was emitted more than once; the wrapper will not link", name),
			"Rename one of the overloads in a local copy of the header",
		)
	}

	diagnostics.GenerationComplete()
	return 0
}

// clean removes the generated files from outputDir
func clean(outputDir, configFile string, diagnostics *utils.DiagnosticSystem, reporter *cli.DiagnosticReporter) int {
	settings, err := cli.LoadSettings(configFile)
	if err != nil {
		reporter.ReportError(err)
		return 1
	}

	diagnostics.Info("Starting cleanup operation...")
	diagnostics.StartProgress("Cleaning generated files")

	removed, err := cli.NewCleaner().CleanGeneratedFiles(outputDir, settings.Banner)
	if err != nil {
		diagnostics.EndProgress(false, "")
		reporter.ReportError(err)
		return 1
	}

	diagnostics.EndProgress(true, fmt.Sprintf("%d files", len(removed)))
	for _, path := range removed {
		diagnostics.Verbose("removed %s", path)
	}
	diagnostics.Success("All generated files have been removed from %s", outputDir)
	return 0
}
