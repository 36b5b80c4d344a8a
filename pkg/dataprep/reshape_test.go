package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
)

func TestMelt(t *testing.T) {
	df, err := DeriveFeatures(frame(t, handExample))
	require.NoError(t, err)

	long, err := Melt(df, data.ColCardio, Indicators)
	require.NoError(t, err)
	require.Len(t, long, 4*len(Indicators))

	assert.Equal(t, LongRow{Key: 0, Variable: data.ColCholesterol, Value: 0}, long[0])
	assert.Equal(t, LongRow{Key: 1, Variable: data.ColCholesterol, Value: 1}, long[1])
	assert.Equal(t, LongRow{Key: 0, Variable: data.ColOverweight, Value: 1}, long[len(long)-1])
}

func TestMeltUnknownColumn(t *testing.T) {
	_, err := Melt(frame(t, handExample), data.ColCardio, []string{"bmi"})
	assert.Error(t, err)
}

func TestCountGroups(t *testing.T) {
	df, err := DeriveFeatures(frame(t, handExample))
	require.NoError(t, err)
	long, err := Melt(df, data.ColCardio, Indicators)
	require.NoError(t, err)

	groups := CountGroups(long)

	totals := map[int]int{}
	for _, g := range groups {
		totals[g.Cardio] += g.Count
	}
	// Two source rows per cardio value, six indicators each.
	assert.Equal(t, map[int]int{0: 12, 1: 12}, totals)

	assert.Equal(t, GroupCount{Cardio: 0, Variable: data.ColActive, Value: 0, Count: 1}, groups[0])
	assert.Contains(t, groups, GroupCount{Cardio: 0, Variable: data.ColCholesterol, Value: 0, Count: 2})
	assert.Contains(t, groups, GroupCount{Cardio: 1, Variable: data.ColCholesterol, Value: 1, Count: 2})
	for _, g := range groups {
		assert.NotEqual(t, 0, g.Count, "absent combinations are omitted")
	}

	for i := 1; i < len(groups); i++ {
		a, b := groups[i-1], groups[i]
		ordered := a.Cardio < b.Cardio ||
			(a.Cardio == b.Cardio && a.Variable < b.Variable) ||
			(a.Cardio == b.Cardio && a.Variable == b.Variable && a.Value < b.Value)
		assert.True(t, ordered, "groups %d and %d out of order", i-1, i)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Healthy", ValueLabel(0))
	assert.Equal(t, "Not Healthy", ValueLabel(1))
	assert.Equal(t, "7", ValueLabel(7))
	assert.Equal(t, "without cardiovascular disease", CardioLabel(0))
	assert.Equal(t, "with cardiovascular disease", CardioLabel(1))
}

func TestVariables(t *testing.T) {
	groups := []GroupCount{
		{Cardio: 0, Variable: "smoke"},
		{Cardio: 0, Variable: "alco"},
		{Cardio: 1, Variable: "smoke"},
	}
	assert.Equal(t, []string{"alco", "smoke"}, Variables(groups))
}
