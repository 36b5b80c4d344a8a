package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/config"
)

func writeExaminations(t *testing.T, dir string, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("id,age,gender,height,weight,ap_hi,ap_lo,cholesterol,gluc,smoke,alco,active,cardio\n")
	for i := 0; i < n; i++ {
		apLo := 80 + i%5
		if i%11 == 0 {
			apLo = 190
		}
		fmt.Fprintf(&b, "%d,%d,%d,%d,%d.0,%d,%d,%d,%d,%d,%d,%d,%d\n",
			i, 16000+i*53, 1+i%2, 155+i%40, 55+(i*3)%45, 115+i%15, apLo,
			1+i%3, 1+(i/4)%3, i%2, (i/3)%2, (i/2)%2, (i/7)%2)
	}
	path := filepath.Join(dir, "medical_examination.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestPipelineStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	step := TransformFunc(func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
		calls++
		return df, nil
	})
	fail := TransformFunc(func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
		return df, boom
	})

	_, err := NewPipeline(step, fail, step).Transform(dataframe.DataFrame{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Input:   writeExaminations(t, dir, 80),
		CatPlot: filepath.Join(dir, "catplot.png"),
		HeatMap: filepath.Join(dir, "heatmap.png"),
	}

	res, err := Run(Options{Config: cfg, Logger: zap.NewNop()})
	require.NoError(t, err)

	for _, p := range []string{cfg.CatPlot, cfg.HeatMap} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	total := 0
	for _, g := range res.CatPlot.Groups {
		total += g.Count
	}
	assert.Equal(t, 6*80, total)
	assert.Contains(t, res.HeatMap.Columns, "overweight")
	assert.Greater(t, res.HeatMap.Rows, 0)
	assert.Less(t, res.HeatMap.Rows, 80)
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Input:   filepath.Join(dir, "absent.csv"),
		CatPlot: filepath.Join(dir, "catplot.png"),
		HeatMap: filepath.Join(dir, "heatmap.png"),
	}

	_, err := Run(Options{Config: cfg})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	_, statErr := os.Stat(cfg.CatPlot)
	assert.True(t, os.IsNotExist(statErr))
}
