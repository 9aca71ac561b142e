package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_Len(t *testing.T) {
	ds := &Dataset{
		Current: []float64{1, 2, 3},
		Voltage: []float64{5, 10, 15},
	}
	assert.Equal(t, 3, ds.Len())
}

func TestDataset_MissingCount(t *testing.T) {
	tests := []struct {
		name string
		ds   *Dataset
		want int
	}{
		{
			name: "no missing",
			ds: &Dataset{
				Current: []float64{1, 2},
				Voltage: []float64{5, 10},
			},
			want: 0,
		},
		{
			name: "missing voltage",
			ds: &Dataset{
				Current: []float64{1, 2, 3},
				Voltage: []float64{5, math.NaN(), 15},
			},
			want: 1,
		},
		{
			name: "missing current",
			ds: &Dataset{
				Current: []float64{math.NaN(), 2},
				Voltage: []float64{5, 10},
			},
			want: 1,
		},
		{
			name: "both fields missing in one record",
			ds: &Dataset{
				Current: []float64{math.NaN(), 2},
				Voltage: []float64{math.NaN(), 10},
			},
			want: 1,
		},
		{
			name: "empty dataset",
			ds:   &Dataset{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ds.MissingCount())
			assert.Equal(t, tt.want > 0, tt.ds.HasMissing())
		})
	}
}

func TestDataset_DropMissing(t *testing.T) {
	raw := &Dataset{
		Current: []float64{0, 1, 2, 3, 4},
		Voltage: []float64{0, math.NaN(), 10, math.NaN(), 20},
	}

	clean := raw.DropMissing()

	assert.Equal(t, 3, clean.Len())
	assert.Equal(t, []float64{0, 2, 4}, clean.Current)
	assert.Equal(t, []float64{0, 10, 20}, clean.Voltage)

	// Original untouched
	assert.Equal(t, 5, raw.Len())
	assert.True(t, math.IsNaN(raw.Voltage[1]))
}

func TestDataset_DropMissing_AlreadyClean(t *testing.T) {
	raw := &Dataset{
		Current: []float64{1, 2, 3},
		Voltage: []float64{5, 10, 15},
	}

	clean := raw.DropMissing()
	assert.Equal(t, raw.Len(), clean.Len())
	assert.Equal(t, raw.Current, clean.Current)
	assert.Equal(t, raw.Voltage, clean.Voltage)
}
