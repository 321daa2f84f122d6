// Package main provides the CLI entry point for xlframe.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetkit/xlframe/pkg/xlframe"
	"github.com/sheetkit/xlframe/pkg/xlframe/output"
	"github.com/sheetkit/xlframe/pkg/xlframe/reader"
)

var (
	sheetName  string
	headerRows []int
	dataStart  int
	format     string
	outputPath string
	pretty     bool
	headRows   int
	workers    int
	inspect    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlframe [input.xlsx]",
		Short: "Build a typed frame from a worksheet",
		Long: `xlframe reads one worksheet from an Excel workbook, collapses its
header rows into unique column names, aligns ragged data rows to that
width and prints the resulting frame.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: first sheet)")
	rootCmd.Flags().IntSliceVar(&headerRows, "header-row", []int{0}, "Header row indices, zero-based, in merge order")
	rootCmd.Flags().IntVar(&dataStart, "data-start", -1, "First data row index (default: after the last header row)")
	rootCmd.Flags().StringVar(&format, "format", "table", "Output format: table, json, csv")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&headRows, "head", 10, "Rows to show in table output, 0 for all")
	rootCmd.Flags().IntVar(&workers, "workers", 1, "Column assembly workers")
	rootCmd.Flags().BoolVar(&inspect, "inspect", false, "List sheets and the detected table range, then exit")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	if inspect {
		return runInspect(cmd, inputPath)
	}

	sheet, err := reader.Open(inputPath, sheetName)
	if err != nil {
		return err
	}

	opts := xlframe.Options{
		HeaderRows: headerRows,
		Workers:    workers,
	}
	if dataStart >= 0 {
		opts.DataStart = &dataStart
	}

	frame, err := xlframe.BuildFrame(sheet, opts)
	if err != nil {
		return fmt.Errorf("build frame: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "table":
		return output.WriteTable(out, frame, headRows)
	case "json":
		data, err := output.JSON(frame, pretty)
		if err != nil {
			return fmt.Errorf("serialize frame: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "csv":
		return output.WriteCSV(out, frame)
	default:
		return fmt.Errorf("invalid format: %s (must be table, json, or csv)", format)
	}
}

func runInspect(cmd *cobra.Command, inputPath string) error {
	out := cmd.OutOrStdout()

	infos, err := reader.ListSheets(inputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Sheets: %d\n", len(infos))
	for _, info := range infos {
		fmt.Fprintf(out, "  - %s: %d rows\n", info.Name, info.Rows)
	}

	sheet, err := reader.Open(inputPath, sheetName)
	if err != nil {
		return err
	}
	if r, ok := reader.DetectTableRange(sheet, reader.DefaultDetectParams()); ok {
		fmt.Fprintf(out, "Table candidate in %s: %s (density %.2f)\n", sheet.Name, r, r.Density)
	} else {
		fmt.Fprintf(out, "No table candidate in %s\n", sheet.Name)
	}
	return nil
}
