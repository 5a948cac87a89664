// Package main provides the CLI entry point for ccurefix.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix"
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/output"
)

var (
	outputPath    string
	format        string
	pretty        bool
	preview       bool
	charset       string
	messageColumn int
	previewLimit  int
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ccurefix [input.xlsx]",
		Short: "Rebuild access-control events from C-CURE spreadsheet exports",
		Long: `ccurefix joins message rows that wrap across several spreadsheet rows,
carries the last seen date/time forward and extracts card number, name,
door and event type into a corrected workbook.`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: setupLogging,
		RunE:              run,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&charset, "charset", ccurefix.DefaultOptions().Charset, "Text encoding of .csv and .xls input")
	rootCmd.PersistentFlags().IntVar(&messageColumn, "message-column", -1, "Zero-based message column (-1 detects it from the header)")
	rootCmd.PersistentFlags().IntVar(&previewLimit, "preview-limit", ccurefix.DefaultPreviewLimit, "Maximum number of records shown in previews")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>_fixed.xlsx next to the input)")
	rootCmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx, json")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "Print a table of the first records")

	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// conversionOptions builds ccurefix options from the persistent flags.
func conversionOptions() ccurefix.Options {
	opts := ccurefix.DefaultOptions()
	opts.Charset = charset
	opts.PreviewLimit = previewLimit
	if messageColumn >= 0 {
		col := messageColumn
		opts.MessageColumn = &col
	}
	return opts
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if format != "xlsx" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be xlsx or json)", format)
	}

	opts := conversionOptions()
	report, err := ccurefix.Convert(inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	slog.Debug("file converted",
		"file", report.BookName,
		"sheet", report.SheetName,
		"message_column", report.MessageColumn,
		"rows", report.DataRows,
		"records", len(report.Records),
	)

	if preview {
		fmt.Fprint(cmd.OutOrStdout(), output.RenderTable(report.Records, opts.PreviewRows()))
	}

	dst := outputPath
	if dst == "" {
		dst = defaultOutputPath(inputPath)
	}
	if err := writeReport(report, dst); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	slog.Info("report written", "output", dst, "records", len(report.Records))
	return nil
}

func defaultOutputPath(inputPath string) string {
	name := ccurefix.FixedFileName(filepath.Base(inputPath))
	if format == "json" {
		name = name[:len(name)-len(filepath.Ext(name))] + ".json"
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}

func writeReport(report *models.Report, dst string) error {
	switch format {
	case "json":
		jsonData, err := output.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return os.WriteFile(dst, jsonData, 0644)
	default:
		return output.SaveXLSX(dst, report.Records)
	}
}
