package data

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of the medical examination dataset.
const (
	ColID          = "id"
	ColAge         = "age"
	ColGender      = "gender"
	ColHeight      = "height"
	ColWeight      = "weight"
	ColAPHi        = "ap_hi"
	ColAPLo        = "ap_lo"
	ColCholesterol = "cholesterol"
	ColGluc        = "gluc"
	ColSmoke       = "smoke"
	ColAlco        = "alco"
	ColActive      = "active"
	ColCardio      = "cardio"
	ColOverweight  = "overweight"
)

// ErrMissingColumn is returned when a required column is absent from the input.
var ErrMissingColumn = errors.New("missing column")

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Types        []string // e.g., "float", "int"
}

// ExaminationSchema is the fixed layout of medical_examination.csv.
func ExaminationSchema() Schema {
	return Schema{
		FeatureNames: []string{
			ColID, ColAge, ColGender, ColHeight, ColWeight, ColAPHi, ColAPLo,
			ColCholesterol, ColGluc, ColSmoke, ColAlco, ColActive, ColCardio,
		},
		Types: []string{
			"int", "int", "int", "int", "float", "int", "int",
			"int", "int", "int", "int", "int", "int",
		},
	}
}

// SeriesTypes maps every column to the gota type it is parsed as.
func (s Schema) SeriesTypes() map[string]series.Type {
	out := make(map[string]series.Type, len(s.FeatureNames))
	for i, name := range s.FeatureNames {
		switch s.Types[i] {
		case "float":
			out[name] = series.Float
		case "int":
			out[name] = series.Int
		default:
			out[name] = series.String
		}
	}
	return out
}

// Validate checks that every schema column is present in df.
func (s Schema) Validate(df dataframe.DataFrame) error {
	present := make(map[string]struct{}, df.Ncol())
	for _, name := range df.Names() {
		present[name] = struct{}{}
	}
	for _, name := range s.FeatureNames {
		if _, ok := present[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return nil
}
