// Command borea generates a Go-native HTTP client SDK from an OpenAPI 3.x
// document.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/logscore/borea/internal/config"
	"github.com/logscore/borea/internal/openapi"
	"github.com/logscore/borea/internal/sdkgen"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("borea", pflag.ContinueOnError)
	fs.SortFlags = false

	input := fs.StringP("openapi-input", "i", "", "path to the OpenAPI JSON document (default \"openapi.json\")")
	output := fs.StringP("sdk-output", "o", "", "output directory for the generated SDK (default: sanitized info.title)")
	modelsOutput := fs.StringP("models-output", "m", "", "subdirectory (relative to sdk-output) for generated model files")
	tests := fs.BoolP("tests", "t", false, "emit empty test scaffolding for each operation")
	xCodeSamples := fs.BoolP("x-code-samples", "x", false, "annotate the copied openapi.json with x-codeSamples")
	configPath := fs.StringP("config", "c", "", "path to a borea.config.json file")
	watch := fs.BoolP("watch", "w", false, "re-run generation whenever the input document changes")
	showVersion := fs.BoolP("version", "V", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		return 1
	}

	if *showVersion {
		fmt.Println("borea", version)
		return 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		return 1
	}

	resolvedConfigPath := *configPath
	if resolvedConfigPath == "" {
		resolvedConfigPath = config.Discover(cwd)
	}

	var cfg *config.Config
	if resolvedConfigPath != "" {
		cfg, err = config.Load(resolvedConfigPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
			return 1
		}
	}

	resolvedInput := resolveString(*input, configField(cfg, func(c *config.Config) string { return c.Input.OpenAPI }), "openapi.json")
	resolvedOutput := resolveString(*output, configField(cfg, func(c *config.Config) string { return c.Output.ClientSDK }), "")
	resolvedModels := resolveString(*modelsOutput, configField(cfg, func(c *config.Config) string { return c.Output.Models }), "models")
	resolvedTests := *tests || (cfg != nil && cfg.Output.Tests)
	resolvedXCodeSamples := *xCodeSamples || (cfg != nil && cfg.Output.XCodeSamples)

	if resolvedOutput == "" {
		resolvedOutput = sanitizedTitleOutput(resolvedInput)
	}

	var ignores []string
	if cfg != nil {
		ignores = cfg.Ignores
	}

	opts := sdkgen.GenerateOptions{
		ModelsDir:    resolvedModels,
		Tests:        resolvedTests,
		XCodeSamples: resolvedXCodeSamples,
		Ignores:      ignores,
	}

	generate := func() int {
		if err := sdkgen.Generate(resolvedInput, resolvedOutput, opts); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
			return 1
		}
		absOutput, err := filepath.Abs(resolvedOutput)
		if err != nil {
			absOutput = resolvedOutput
		}
		fmt.Println(color.GreenString("Successfully generated SDK in: %s", absOutput))
		return 0
	}

	if code := generate(); code != 0 {
		return code
	}

	if *watch {
		return watchAndRegenerate(resolvedInput, generate)
	}

	return 0
}

// resolveString applies the CLI-flag > config-value > built-in-default
// precedence rule.
func resolveString(flagVal, configVal, def string) string {
	if flagVal != "" {
		return flagVal
	}
	if configVal != "" {
		return configVal
	}
	return def
}

func configField(cfg *config.Config, get func(*config.Config) string) string {
	if cfg == nil {
		return ""
	}
	return get(cfg)
}

// sanitizedTitleOutput computes the default -o/--sdk-output directory: the
// sanitized info.title of the input document. If the document can't be
// loaded here, generation is left to fail (and report) the same way it
// would have anyway; "sdk" is returned as a placeholder so the error
// surfaces from Generate itself rather than from this pre-flight peek.
func sanitizedTitleOutput(inputPath string) string {
	doc, err := openapi.LoadDocument(inputPath)
	if err != nil {
		return "sdk"
	}
	name := openapi.CleanFileName(doc.Info.Title)
	if name == "" {
		return "sdk"
	}
	return name
}
