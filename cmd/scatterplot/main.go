// Package main provides the CLI entry point for scatterplot-go.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/config"
	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/output"
)

var (
	outputPath string
	jsonPath   string
	pretty     bool
	csvPath    string
	exportDir  string
	xlsxPath   string
	sheet      string
	source     string
	configPath string
	logLevel   string
	compress   string

	anchorOrigin bool
	lines        bool
	bestFit      bool
	coordinates  bool
	rSquared     bool
	integration  bool

	xName, xUnits string
	yName, yUnits string

	width, height, cushion float64
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "scatterplot [input.csv|input.xlsx]",
		Short: "Plot x/y data and compute best fit, R² and area",
		Long: `scatterplot-go reads x/y points from a CSV file or an Excel workbook,
draws a scatter chart (PNG or SVG) and reports the least-squares line,
the coefficient of determination and the area under the curve as JSON.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Chart image path (.png, .svg or .svgz)")
	flags.StringVar(&jsonPath, "json", "", `Statistics report path ("-" for stdout, the default when nothing else is written)`)
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&csvPath, "csv", "", "CSV export path")
	flags.StringVar(&exportDir, "export-dir", "", "Directory for a CSV export named after the chart title")
	flags.StringVar(&xlsxPath, "xlsx", "", "Workbook export path (points, statistics and a scatter chart)")
	flags.StringVar(&sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	flags.StringVar(&source, "source", string(scatterplot.SourceAuto), "Workbook point source: cells, chart, auto")
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&logLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")
	flags.StringVar(&compress, "compress", "none", "Compress written files: none, gzip, zstd, s2, lz4")

	flags.BoolVar(&anchorOrigin, "anchor-origin", defaults.Layout.AnchorOrigin, "Force both axis minimums to 1")
	flags.BoolVar(&lines, "lines", false, "Connect consecutive points")
	flags.BoolVar(&bestFit, "best-fit", false, "Draw the least-squares line")
	flags.BoolVar(&coordinates, "coordinates", false, "Label points with their coordinates")
	flags.BoolVar(&rSquared, "r-squared", false, "Show R²")
	flags.BoolVar(&integration, "integration", false, "Show the area under the curve")

	flags.StringVar(&xName, "x-name", "", "X axis name")
	flags.StringVar(&xUnits, "x-units", "", "X axis units")
	flags.StringVar(&yName, "y-name", "", "Y axis name")
	flags.StringVar(&yUnits, "y-units", "", "Y axis units")

	flags.Float64Var(&width, "width", defaults.Layout.Width, "Chart width in pixels")
	flags.Float64Var(&height, "height", defaults.Layout.Height, "Chart height in pixels")
	flags.Float64Var(&cushion, "cushion", defaults.Layout.Cushion, "Margin around the plot in pixels")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if err := setupLogging(cmd); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	src := scatterplot.Source(source)
	switch src {
	case scatterplot.SourceAuto, scatterplot.SourceCells, scatterplot.SourceChart:
	default:
		return fmt.Errorf("invalid source: %s (must be cells, chart, or auto)", source)
	}

	codec, err := output.ParseCodec(compress)
	if err != nil {
		return err
	}

	ds, err := scatterplot.Load(inputPath, scatterplot.LoadOptions{Sheet: sheet, Source: src})
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	labels := cfg.Labels
	if labels.XName == "" {
		labels.XName = ds.Labels.XName
	}
	if labels.YName == "" {
		labels.YName = ds.Labels.YName
	}

	res := scatterplot.Analyze(ds.Draft, scatterplot.Options{
		Toggles: cfg.Toggles,
		Labels:  labels,
	}, cfg.Layout)
	report := res.Report()

	logrus.WithFields(logrus.Fields{
		"input":  ds.Name,
		"drafts": len(ds.Draft),
		"points": len(res.Points),
	}).Debug("analyzed input")

	if outputPath != "" {
		if err := writeChart(cmd.Context(), res, outputPath, codec); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
	}

	if csvPath != "" {
		if err := writeArtifact(csvPath, codec, func(w io.Writer) error {
			return output.WriteCSV(w, res.Points)
		}); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	if exportDir != "" {
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return fmt.Errorf("failed to create export dir: %w", err)
		}
		path := filepath.Join(exportDir, output.ExportFileName(report.Title, ".csv"))
		if err := writeArtifact(path, codec, func(w io.Writer) error {
			return output.WriteCSV(w, res.Points)
		}); err != nil {
			return fmt.Errorf("failed to write csv export: %w", err)
		}
	}

	if xlsxPath != "" {
		if err := writeArtifact(xlsxPath, codec, func(w io.Writer) error {
			return output.WriteWorkbook(w, report)
		}); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	jsonData, err := output.ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	switch {
	case jsonPath == "-" || (jsonPath == "" && !wroteArtifacts()):
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	case jsonPath != "":
		if err := writeArtifact(jsonPath, codec, func(w io.Writer) error {
			_, err := w.Write(jsonData)
			return err
		}); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}

func wroteArtifacts() bool {
	return outputPath != "" || csvPath != "" || exportDir != "" || xlsxPath != ""
}

// setupLogging applies --log-level, falling back to $LOG_LEVEL.
func setupLogging(cmd *cobra.Command) error {
	level := logLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	logrus.SetLevel(parsed)
	logrus.SetOutput(cmd.ErrOrStderr())
	return nil
}

// loadConfig reads --config and lets explicitly set flags override it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	setBool := func(name string, dst *bool, v bool) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	setString := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	setFloat := func(name string, dst *float64, v float64) {
		if flags.Changed(name) {
			*dst = v
		}
	}

	setBool("anchor-origin", &cfg.Layout.AnchorOrigin, anchorOrigin)
	setBool("lines", &cfg.Toggles.ConnectingLines, lines)
	setBool("best-fit", &cfg.Toggles.BestFit, bestFit)
	setBool("coordinates", &cfg.Toggles.Coordinates, coordinates)
	setBool("r-squared", &cfg.Toggles.RSquared, rSquared)
	setBool("integration", &cfg.Toggles.Integration, integration)

	setString("x-name", &cfg.Labels.XName, xName)
	setString("x-units", &cfg.Labels.XUnits, xUnits)
	setString("y-name", &cfg.Labels.YName, yName)
	setString("y-units", &cfg.Labels.YUnits, yUnits)

	setFloat("width", &cfg.Layout.Width, width)
	setFloat("height", &cfg.Layout.Height, height)
	setFloat("cushion", &cfg.Layout.Cushion, cushion)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// writeChart renders the chart to path. ".svgz" is always gzipped; other
// paths use the selected codec.
func writeChart(ctx context.Context, res *scatterplot.Result, path string, codec output.Codec) error {
	format, err := scatterplot.FormatFromPath(path)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error { return res.Render(ctx, w, format) }
	if strings.HasSuffix(strings.ToLower(path), ".svgz") {
		return writeFile(path, output.CodecGzip, write)
	}
	return writeArtifact(path, codec, write)
}

// writeArtifact writes to path plus the codec's extension.
func writeArtifact(path string, codec output.Codec, write func(io.Writer) error) error {
	return writeFile(path+codec.Extension(), codec, write)
}

func writeFile(path string, codec output.Codec, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := output.NewCompressedWriter(f, codec)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"path": path, "codec": codec}).Info("wrote file")
	return nil
}
