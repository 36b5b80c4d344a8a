package viz

import (
	"strconv"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/require"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/dataprep"
)

// examinations builds n deterministic rows with every column varying and a
// few rows whose diastolic pressure exceeds the systolic one.
func examinations(t *testing.T, n int) dataframe.DataFrame {
	t.Helper()
	schema := data.ExaminationSchema()
	records := [][]string{schema.FeatureNames}
	for i := 0; i < n; i++ {
		apLo := 80 + i%5
		if i%13 == 0 {
			apLo = 200
		}
		records = append(records, []string{
			strconv.Itoa(i),
			strconv.Itoa(15000 + i*97),
			strconv.Itoa(1 + i%2),
			strconv.Itoa(150 + i),
			strconv.Itoa(50+(i*7)%40) + ".0",
			strconv.Itoa(120 + i%10),
			strconv.Itoa(apLo),
			strconv.Itoa(1 + i%3),
			strconv.Itoa(1 + (i/2)%3),
			strconv.Itoa(i % 2),
			strconv.Itoa((i / 3) % 2),
			strconv.Itoa((i / 4) % 2),
			strconv.Itoa((i / 5) % 2),
		})
	}
	raw := dataframe.LoadRecords(records, dataframe.WithTypes(schema.SeriesTypes()))
	require.NoError(t, raw.Err)

	df, err := dataprep.DeriveFeatures(raw)
	require.NoError(t, err)
	return df
}
