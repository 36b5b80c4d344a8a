package dataprep

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/stats"
)

// Percentile bounds used to trim height and weight outliers.
const (
	LowerPercentile = 2.5
	UpperPercentile = 97.5
)

// ErrNoRows is returned when no row passes the quality filters.
var ErrNoRows = errors.New("no rows passed the quality filters")

// QualityMask evaluates the data quality predicates against the full,
// unfiltered columns of df and combines them with a single AND:
//
//	ap_lo <= ap_hi
//	height within [P2.5, P97.5] of height
//	weight within [P2.5, P97.5] of weight
func QualityMask(df dataframe.DataFrame) (stats.Mask, error) {
	apHi, err := data.Floats(df, data.ColAPHi)
	if err != nil {
		return nil, err
	}
	apLo, err := data.Floats(df, data.ColAPLo)
	if err != nil {
		return nil, err
	}
	height, err := data.Floats(df, data.ColHeight)
	if err != nil {
		return nil, err
	}
	weight, err := data.Floats(df, data.ColWeight)
	if err != nil {
		return nil, err
	}

	return stats.And(
		stats.LessEq(apLo, apHi),
		stats.WithinBand(height, stats.PercentileBand(height, LowerPercentile, UpperPercentile)),
		stats.WithinBand(weight, stats.PercentileBand(weight, LowerPercentile, UpperPercentile)),
	), nil
}

// FilterQuality returns an independent copy of df holding only the rows that
// pass QualityMask. df itself is left untouched.
// ErrNoRows is returned when nothing survives.
func FilterQuality(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	mask, err := QualityMask(df)
	if err != nil {
		return df, err
	}
	if mask.Count() == 0 {
		return df, ErrNoRows
	}
	out := df.Subset([]bool(mask)).Copy()
	if out.Err != nil {
		return df, fmt.Errorf("filter rows: %w", out.Err)
	}
	return out, nil
}
