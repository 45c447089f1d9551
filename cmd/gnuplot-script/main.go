// Package main provides the CLI entry point for gnuplot-script.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/matt-thomson/gnuplot/pkg/gnuplot"
	"github.com/matt-thomson/gnuplot/pkg/gnuplot/xlsxdata"
)

var (
	outputPath string
	sheetName  string
	xCol       string
	yCols      []string
	mode       string
	title      string
	xLabel     string
	yLabel     string
	color      string
	terminal   string
	logY       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gnuplot-script [input.xlsx]",
		Short: "Compile spreadsheet columns into a gnuplot script",
		Long: `gnuplot-script reads numeric columns from an Excel workbook and
compiles them into a gnuplot command script with inline binary data,
written to stdout or a file.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "Sheet1", "Sheet to read data from")
	rootCmd.Flags().StringVar(&xCol, "x-col", "A", "Column holding the X values")
	rootCmd.Flags().StringSliceVar(&yCols, "y-col", []string{"B"}, "Columns holding Y series (repeatable)")
	rootCmd.Flags().StringVar(&mode, "with", "lines", "Plot mode: lines, points, linespoints, boxes")
	rootCmd.Flags().StringVar(&title, "title", "", "Title of the plot")
	rootCmd.Flags().StringVar(&xLabel, "x-label", "", "Label of the X axis")
	rootCmd.Flags().StringVar(&yLabel, "y-label", "", "Label of the Y axis")
	rootCmd.Flags().StringVar(&color, "color", "", "Color of the plotted series")
	rootCmd.Flags().StringVar(&terminal, "terminal", "", "Renderer terminal, e.g. pngcairo or svg")
	rootCmd.Flags().BoolVar(&logY, "log-y", false, "Use a base-10 logarithmic Y axis")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	var plotType gnuplot.PlotType
	switch mode {
	case "lines":
		plotType = gnuplot.Lines
	case "points":
		plotType = gnuplot.Points
	case "linespoints":
		plotType = gnuplot.LinesPoints
	case "boxes":
		plotType = gnuplot.Boxes
	default:
		return fmt.Errorf("invalid mode: %s (must be lines, points, linespoints, or boxes)", mode)
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("opening workbook failed: %w", err)
	}
	defer f.Close()

	xs, err := xlsxdata.Column(f, sheetName, xCol)
	if err != nil {
		return fmt.Errorf("reading column %s failed: %w", xCol, err)
	}

	fig := gnuplot.NewFigure()
	if terminal != "" {
		fig.SetTerminal(terminal, "")
	}

	axes := fig.NewAxes2D()
	if title != "" {
		if err := axes.SetTitle(title); err != nil {
			return err
		}
	}
	if xLabel != "" {
		if err := axes.SetXLabel(xLabel); err != nil {
			return err
		}
	}
	if yLabel != "" {
		if err := axes.SetYLabel(yLabel); err != nil {
			return err
		}
	}
	if logY {
		axes.SetYLog(gnuplot.Fixed(10))
	}

	for _, col := range yCols {
		ys, err := xlsxdata.Column(f, sheetName, col)
		if err != nil {
			return fmt.Errorf("reading column %s failed: %w", col, err)
		}

		opts := []gnuplot.PlotOption{gnuplot.Caption(col)}
		if color != "" {
			opts = append(opts, gnuplot.Color(color))
		}
		if err := axes.Plot2(plotType, xs, ys, opts...); err != nil {
			return fmt.Errorf("plotting column %s failed: %w", col, err)
		}
	}

	if outputPath != "" {
		if err := fig.Save(outputPath); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	return fig.Render(os.Stdout)
}
