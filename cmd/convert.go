// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// read/fetch → detect → look up converter → convert → write.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/knakagawa/docmd/core"
	"github.com/knakagawa/docmd/core/convert"
	"github.com/knakagawa/docmd/core/detect"
	"github.com/knakagawa/docmd/core/fetch"
	"github.com/knakagawa/docmd/core/output"
	"github.com/knakagawa/docmd/scan"
)

// Flag variables.
var (
	flagFormat      string
	flagOutputDir   string
	flagStdout      bool
	flagFrontmatter bool
	flagRecursive   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <path|url>...",
	Short: "Convert files or web pages to Markdown",
	Long: `Convert detects the format of each input, runs the matching converter,
and writes Markdown next to the input (or into --output-dir).

Inputs starting with http:// or https:// are fetched and converted as HTML.
Directories are converted with --recursive.

Examples:
  docmd convert report.xlsx
  docmd convert notes.docx data.csv --output-dir ./out
  docmd convert slides.pdf --frontmatter
  docmd convert https://example.com/docs --stdout
  docmd convert ./documents --recursive`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagFormat, "format", "", "Override format detection (e.g. csv, docx, html)")
	convertCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Write all outputs into this directory (default: next to each input)")
	convertCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Print Markdown to stdout instead of writing files")
	convertCmd.Flags().BoolVar(&flagFrontmatter, "frontmatter", false, "Prepend YAML frontmatter (source, format, converted_at)")
	convertCmd.Flags().BoolVar(&flagRecursive, "recursive", false, "Walk directory inputs and convert every supported file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	// Config file values back the flags when they are not set explicitly.
	if !cmd.Flags().Changed("output-dir") {
		flagOutputDir = viper.GetString("output_dir")
	}
	if !cmd.Flags().Changed("frontmatter") && viper.IsSet("frontmatter") {
		flagFrontmatter = viper.GetBool("frontmatter")
	}

	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no convertible inputs found")
	}

	registry := convert.NewDefaultRegistry()
	if flagOutputDir != "" {
		// Image links must resolve from the output directory, not the
		// input's directory.
		registry.Register(core.FormatImage, convert.NewImageConverter(flagOutputDir))
	}

	pipeline := core.NewPipeline(detect.New(), registry, log)
	fetcher := fetch.New()

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	var errCount int
	for i, input := range inputs {
		if len(inputs) > 1 {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", i+1, len(inputs), input)
		}
		if err := convertOne(ctx, pipeline, fetcher, writer, input); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
		}
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d inputs failed", errCount, len(inputs))
	}
	return nil
}

// convertOne runs a single input through the full pipeline.
func convertOne(ctx context.Context, pipeline *core.Pipeline, fetcher *fetch.Fetcher, writer *output.Writer, input string) error {
	req := core.Request{Path: input, Format: core.Format(flagFormat)}

	if fetch.IsURL(input) {
		data, err := fetcher.Fetch(ctx, input)
		if err != nil {
			return err
		}
		req.Data = data
		if req.Format == "" {
			req.Format = core.FormatHTML
		}
	}

	result, err := pipeline.Convert(ctx, req)
	if err != nil {
		return err
	}

	markdown := result.Markdown
	if flagFrontmatter {
		markdown, err = output.NewFrontmatter(input, string(result.Format)).Prepend(markdown)
		if err != nil {
			return err
		}
	}

	if flagStdout {
		fmt.Fprint(os.Stdout, markdown)
		return nil
	}

	path, err := writer.Write(input, markdown)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// expandInputs resolves directory arguments. Directories require
// --recursive; file and URL arguments pass through unchanged.
func expandInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		if fetch.IsURL(arg) {
			inputs = append(inputs, arg)
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}

		if !flagRecursive {
			return nil, fmt.Errorf("%s is a directory (use --recursive)", arg)
		}
		found, err := scan.Discover(arg)
		if err != nil {
			return nil, err
		}
		log.WithField("dir", arg).Debugf("discovered %d files", len(found))
		inputs = append(inputs, found...)
	}
	return inputs, nil
}
