package dataprep

import (
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
)

// Indicators are the health flags melted into long form, in display order.
var Indicators = []string{
	data.ColCholesterol,
	data.ColGluc,
	data.ColSmoke,
	data.ColAlco,
	data.ColActive,
	data.ColOverweight,
}

// LongRow is one (key, variable, value) triple of a long-form table.
type LongRow struct {
	Key      int // value of the identity column
	Variable string
	Value    int
}

// GroupCount is the number of long-form rows sharing (Cardio, Variable, Value).
type GroupCount struct {
	Cardio   int
	Variable string
	Value    int
	Count    int
}

// Melt reshapes df from wide to long form, keeping idCol as the identity
// and emitting one row per (source row, value column).
func Melt(df dataframe.DataFrame, idCol string, valueCols []string) ([]LongRow, error) {
	ids, err := data.Floats(df, idCol)
	if err != nil {
		return nil, err
	}
	cols := make([][]float64, len(valueCols))
	for j, name := range valueCols {
		if cols[j], err = data.Floats(df, name); err != nil {
			return nil, err
		}
	}

	// Column-major like a melt: all rows of the first variable, then the next.
	out := make([]LongRow, 0, len(ids)*len(valueCols))
	for j, name := range valueCols {
		for i, id := range ids {
			out = append(out, LongRow{Key: int(id), Variable: name, Value: int(cols[j][i])})
		}
	}
	return out, nil
}

// CountGroups counts long-form rows per (cardio, variable, value).
// Only combinations that occur are returned, sorted by key.
func CountGroups(rows []LongRow) []GroupCount {
	type key struct {
		cardio   int
		variable string
		value    int
	}
	counts := make(map[key]int)
	for _, r := range rows {
		counts[key{r.Key, r.Variable, r.Value}]++
	}

	out := make([]GroupCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, GroupCount{Cardio: k.cardio, Variable: k.variable, Value: k.value, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Cardio != b.Cardio {
			return a.Cardio < b.Cardio
		}
		if a.Variable != b.Variable {
			return a.Variable < b.Variable
		}
		return a.Value < b.Value
	})
	return out
}

// ValueLabel names an indicator value for the plot legend.
func ValueLabel(v int) string {
	switch v {
	case 0:
		return "Healthy"
	case 1:
		return "Not Healthy"
	}
	return strconv.Itoa(v)
}

// CardioLabel names a cardio outcome for the panel titles.
func CardioLabel(c int) string {
	switch c {
	case 0:
		return "without cardiovascular disease"
	case 1:
		return "with cardiovascular disease"
	}
	return strconv.Itoa(c)
}

// Variables returns the distinct variable names in groups, sorted.
func Variables(groups []GroupCount) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, g := range groups {
		if _, ok := seen[g.Variable]; !ok {
			seen[g.Variable] = struct{}{}
			out = append(out, g.Variable)
		}
	}
	sort.Strings(out)
	return out
}
