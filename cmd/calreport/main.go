// Package main provides the CLI entry point for calreport-go.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/calreport-go/internal/config"
	"github.com/ukaji3/calreport-go/internal/logging"
	"github.com/ukaji3/calreport-go/pkg/calreport"
	"github.com/ukaji3/calreport-go/pkg/calreport/models"
	"github.com/ukaji3/calreport-go/pkg/calreport/opcua"
	"github.com/ukaji3/calreport-go/pkg/calreport/output"
)

var (
	configPath string
	outputPath string
	jsonPath   string
	pretty     bool
	xlsxPath   string
	format     string
	sheet      string
	encoding   string
	publish    bool
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calreport [input]",
		Short: "Extract calibration reports from instrument exports",
		Long: `calreport extracts the Zero Cell Volume and Volume Calibration reports
from a dual-column instrument export (CSV, text or xlsx), writes them to CSV,
and optionally to JSON, xlsx and an OPC UA server.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file (created with defaults if missing)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "CSV output path (default: <output folder>/<csv file> from config)")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Also write JSON to this path (- for stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write an xlsx workbook to this path")
	rootCmd.Flags().StringVar(&format, "format", string(calreport.FormatAuto), "Input format: auto, text, xlsx")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read from xlsx input (default: first sheet)")
	rootCmd.Flags().StringVar(&encoding, "encoding", "", "Text encoding of the input (default from config)")
	rootCmd.Flags().BoolVar(&publish, "publish", false, "Write the extracted values to the OPC UA server")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	opts, err := extractOptions(cfg, logger)
	if err != nil {
		return err
	}

	report, err := calreport.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := writeOutputs(cmd, cfg, report, logger); err != nil {
		return err
	}

	if publish {
		return publishReport(cmd.Context(), cfg, report, logger)
	}
	return nil
}

func extractOptions(cfg *config.Config, logger *slog.Logger) (calreport.Options, error) {
	opts := calreport.DefaultOptions()
	opts.Logger = logger
	opts.Sheet = cfg.Application.Sheet
	opts.Encoding = cfg.Application.Encoding

	switch calreport.Format(format) {
	case calreport.FormatAuto, calreport.FormatText, calreport.FormatXLSX:
		opts.Format = calreport.Format(format)
	default:
		return opts, fmt.Errorf("invalid format: %s (must be auto, text, or xlsx)", format)
	}
	if sheet != "" {
		opts.Sheet = sheet
	}
	if encoding != "" {
		opts.Encoding = encoding
	}
	return opts, nil
}

func writeOutputs(cmd *cobra.Command, cfg *config.Config, report *models.CalibrationReport, logger *slog.Logger) error {
	csvPath := outputPath
	if csvPath == "" {
		csvPath = cfg.Application.CSVPath()
	}
	if err := output.SaveCSV(csvPath, report); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	logger.Info("CSV written", slog.String("path", csvPath))

	switch jsonPath {
	case "":
	case "-":
		if err := output.WriteJSON(cmd.OutOrStdout(), report, pretty); err != nil {
			return err
		}
	default:
		if err := output.SaveJSON(jsonPath, report, pretty); err != nil {
			return err
		}
		logger.Info("JSON written", slog.String("path", jsonPath))
	}

	if xlsxPath != "" {
		if err := output.SaveXLSX(xlsxPath, report); err != nil {
			return fmt.Errorf("failed to write xlsx: %w", err)
		}
		logger.Info("xlsx written", slog.String("path", xlsxPath))
	}
	return nil
}

func publishReport(ctx context.Context, cfg *config.Config, report *models.CalibrationReport, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	items := opcua.MapReport(cfg.OPCUA.NodeMappings, report, cfg.Application.MaxMeasurementCycles)
	if len(items) == 0 {
		logger.Warn("no node mappings matched extracted values, nothing to publish")
		return nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.OPCUA.RequestTimeout)
	client, err := opcua.Dial(dialCtx, cfg.OPCUA, logger)
	cancel()
	if err != nil {
		return fmt.Errorf("OPC UA connection failed: %w", err)
	}
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("OPC UA disconnect failed", slog.String("error", err.Error()))
		}
	}()

	result, err := opcua.Publish(ctx, client, items, logger)
	if err != nil {
		return fmt.Errorf("OPC UA write failed: %w", err)
	}
	if !result.OK() {
		return fmt.Errorf("%d of %d OPC UA writes failed", len(result.Failed), len(items))
	}
	return nil
}
