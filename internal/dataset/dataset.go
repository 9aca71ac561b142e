package dataset

import "math"

// Column headers of the experiment CSV file.
const (
	ColumnCurrent = "Current_A"
	ColumnVoltage = "Voltage_V"
)

// Dataset holds paired electrical measurements as parallel sequences.
// A missing reading is represented as NaN. Datasets are never mutated in
// place: cleaning returns a new filtered copy.
type Dataset struct {
	Current []float64
	Voltage []float64
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.Current)
}

// MissingCount returns the number of records with at least one missing field
func (d *Dataset) MissingCount() int {
	count := 0
	for i := range d.Current {
		if math.IsNaN(d.Current[i]) || math.IsNaN(d.Voltage[i]) {
			count++
		}
	}
	return count
}

// HasMissing reports whether any record has a missing field
func (d *Dataset) HasMissing() bool {
	return d.MissingCount() > 0
}

// DropMissing returns a new Dataset containing only complete records.
// Record order is preserved; the receiver is left untouched.
func (d *Dataset) DropMissing() *Dataset {
	clean := &Dataset{
		Current: make([]float64, 0, len(d.Current)),
		Voltage: make([]float64, 0, len(d.Voltage)),
	}
	for i := range d.Current {
		if math.IsNaN(d.Current[i]) || math.IsNaN(d.Voltage[i]) {
			continue
		}
		clean.Current = append(clean.Current, d.Current[i])
		clean.Voltage = append(clean.Voltage, d.Voltage[i])
	}
	return clean
}
