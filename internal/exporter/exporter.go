// Package exporter writes analysis summaries to report files.
// Supported formats: JSON, CSV, and XLSX workbooks carrying both the
// summary and the cleaned measurements.
package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"voltlab/internal/analysis"
	"voltlab/internal/dataset"
)

// Writer exports analysis summaries to report files
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a new report writer
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WriteJSON writes the summary as an indented JSON document
func (w *Writer) WriteJSON(summary *analysis.Summary, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write summary JSON: %w", err)
	}

	w.logger.Info("wrote summary JSON", slog.String("path", path))
	return nil
}

// summaryRows returns the summary as ordered metric/value pairs
func summaryRows(summary *analysis.Summary) [][]string {
	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	fi := func(v int) string { return strconv.Itoa(v) }

	return [][]string{
		{"RunID", summary.RunID},
		{"GeneratedAt", summary.GeneratedAt.Format("2006-01-02T15:04:05Z07:00")},
		{"RawRows", fi(summary.RawRows)},
		{"CleanRows", fi(summary.CleanRows)},
		{"DroppedRows", fi(summary.DroppedRows)},
		{"CurrentMean_A", ff(summary.CurrentMean)},
		{"VoltageMean_V", ff(summary.VoltageMean)},
		{"VoltageVariance_V2", ff(summary.VoltageVariance)},
		{"VoltageStdDev_V", ff(summary.VoltageStdDev)},
		{"Correlation", ff(summary.Correlation)},
		{"FitSlope_Ohm", ff(summary.Fit.Slope)},
		{"FitIntercept_V", ff(summary.Fit.Intercept)},
	}
}

// WriteCSV writes the summary as Metric,Value rows
func (w *Writer) WriteCSV(summary *analysis.Summary, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary CSV: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"Metric", "Value"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range summaryRows(summary) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %q: %w", row[0], err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush summary CSV: %w", err)
	}

	w.logger.Info("wrote summary CSV", slog.String("path", path))
	return nil
}

// WriteXLSX writes an Excel workbook with a Summary sheet and a Data
// sheet holding the cleaned measurements.
func (w *Writer) WriteXLSX(summary *analysis.Summary, clean *dataset.Dataset, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	if err := f.SetCellValue(summarySheet, "A1", "Metric"); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	if err := f.SetCellValue(summarySheet, "B1", "Value"); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for i, row := range summaryRows(summary) {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		if err := f.SetCellValue(summarySheet, cellA, row[0]); err != nil {
			return fmt.Errorf("write summary row %d: %w", i, err)
		}
		if err := f.SetCellValue(summarySheet, cellB, row[1]); err != nil {
			return fmt.Errorf("write summary row %d: %w", i, err)
		}
	}

	const dataSheet = "Data"
	if _, err := f.NewSheet(dataSheet); err != nil {
		return fmt.Errorf("create data sheet: %w", err)
	}
	if err := f.SetCellValue(dataSheet, "A1", dataset.ColumnCurrent); err != nil {
		return fmt.Errorf("write data header: %w", err)
	}
	if err := f.SetCellValue(dataSheet, "B1", dataset.ColumnVoltage); err != nil {
		return fmt.Errorf("write data header: %w", err)
	}
	for i := 0; i < clean.Len(); i++ {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		if err := f.SetCellValue(dataSheet, cellA, clean.Current[i]); err != nil {
			return fmt.Errorf("write data row %d: %w", i, err)
		}
		if err := f.SetCellValue(dataSheet, cellB, clean.Voltage[i]); err != nil {
			return fmt.Errorf("write data row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	w.logger.Info("wrote summary workbook",
		slog.String("path", path),
		slog.Int("data_rows", clean.Len()))
	return nil
}

// ensureDir creates the parent directory of path
func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	return nil
}
