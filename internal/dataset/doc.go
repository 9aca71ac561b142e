// Package dataset provides the V-I measurement data model, the synthetic
// dataset generator, and CSV loading with missing-value cleaning.
//
// # Data Flow
//
// The typical flow through this package:
//
//	Generator → CSV file → Load → Dataset → DropMissing → clean Dataset
//
// A Dataset is two parallel []float64 columns with NaN marking missing
// readings. On disk the same dataset is a UTF-8 CSV with header
// Current_A,Voltage_V and an empty cell for each missing reading.
//
// Cleaning never mutates in place: DropMissing returns a filtered copy,
// so the raw dataset stays available for before/after row counts.
package dataset
