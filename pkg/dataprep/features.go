package dataprep

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
)

// OverweightBMI is the BMI above which a patient counts as overweight.
const OverweightBMI = 25.0

// BMI computes weight / (height in metres)^2.
func BMI(heightCM, weightKG float64) float64 {
	m := heightCM / 100
	return weightKG / (m * m)
}

// IsOverweight returns 1 when BMI is strictly above OverweightBMI, else 0.
// A NaN BMI compares false and yields 0.
func IsOverweight(heightCM, weightKG float64) int {
	if BMI(heightCM, weightKG) > OverweightBMI {
		return 1
	}
	return 0
}

// NormalizeOrdinal maps the 1..3 ordinal scale to 0 (normal) or 1 (above normal).
func NormalizeOrdinal(v float64) int {
	if v == 1 {
		return 0
	}
	return 1
}

// DeriveFeatures adds the overweight column and rewrites cholesterol and gluc
// as binary flags. The input frame is not modified; no rows are dropped.
func DeriveFeatures(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	heights, err := data.Floats(df, data.ColHeight)
	if err != nil {
		return df, err
	}
	weights, err := data.Floats(df, data.ColWeight)
	if err != nil {
		return df, err
	}

	overweight := make([]int, len(heights))
	for i := range heights {
		overweight[i] = IsOverweight(heights[i], weights[i])
	}
	out := df.Mutate(series.New(overweight, series.Int, data.ColOverweight))

	for _, name := range []string{data.ColCholesterol, data.ColGluc} {
		vals, err := data.Floats(out, name)
		if err != nil {
			return df, err
		}
		norm := make([]int, len(vals))
		for i, v := range vals {
			norm[i] = NormalizeOrdinal(v)
		}
		out = out.Mutate(series.New(norm, series.Int, name))
	}
	if out.Err != nil {
		return df, fmt.Errorf("derive features: %w", out.Err)
	}
	return out, nil
}
