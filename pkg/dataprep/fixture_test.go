package dataprep

import (
	"strconv"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/require"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
)

// exam is one input row; zero-valued flags are fine for most tests.
type exam struct {
	height, weight      float64
	apHi, apLo          int
	cholesterol, gluc   int
	smoke, alco, active int
	cardio              int
}

func frame(t *testing.T, rows []exam) dataframe.DataFrame {
	t.Helper()
	schema := data.ExaminationSchema()
	records := [][]string{schema.FeatureNames}
	for i, r := range rows {
		records = append(records, []string{
			strconv.Itoa(i), "18000", "1",
			strconv.FormatFloat(r.height, 'f', -1, 64),
			strconv.FormatFloat(r.weight, 'f', 1, 64),
			strconv.Itoa(r.apHi), strconv.Itoa(r.apLo),
			strconv.Itoa(r.cholesterol), strconv.Itoa(r.gluc),
			strconv.Itoa(r.smoke), strconv.Itoa(r.alco), strconv.Itoa(r.active),
			strconv.Itoa(r.cardio),
		})
	}
	df := dataframe.LoadRecords(records, dataframe.WithTypes(schema.SeriesTypes()))
	require.NoError(t, df.Err)
	return df
}

// handExample has overweight and filter outcomes that are easy to verify by hand:
//
//	row 0: 160cm 70kg  BMI 27.3 -> overweight, passes every filter
//	row 1: 170cm 60kg  BMI 20.8 -> weight below P2.5 (60.75)
//	row 2: 200cm 100kg BMI 25.0 -> not overweight, height above P97.5 (197.75)
//	row 3: 150cm 90kg  BMI 40.0 -> ap_lo > ap_hi and height below P2.5 (150.75)
var handExample = []exam{
	{height: 160, weight: 70, apHi: 120, apLo: 80, cholesterol: 1, gluc: 1, cardio: 0},
	{height: 170, weight: 60, apHi: 130, apLo: 85, cholesterol: 2, gluc: 1, smoke: 1, cardio: 1},
	{height: 200, weight: 100, apHi: 140, apLo: 90, cholesterol: 3, gluc: 2, alco: 1, cardio: 1},
	{height: 150, weight: 90, apHi: 80, apLo: 120, cholesterol: 1, gluc: 3, active: 1, cardio: 0},
}
