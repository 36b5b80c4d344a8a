package data

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// DefaultPath is where the examination dataset is expected relative to the working directory.
const DefaultPath = "medical_examination.csv"

// Load reads the examination CSV at path into a DataFrame.
// A missing file surfaces as a wrapped fs.ErrNotExist.
func Load(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	return Read(bufio.NewReader(file))
}

// Read parses examination records from r and validates the column layout.
func Read(r io.Reader) (dataframe.DataFrame, error) {
	schema := ExaminationSchema()
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.WithTypes(schema.SeriesTypes()),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse dataset: %w", df.Err)
	}
	if err := schema.Validate(df); err != nil {
		return dataframe.DataFrame{}, err
	}
	return df, nil
}

// Floats returns the named column as float64 values.
func Floats(df dataframe.DataFrame, name string) ([]float64, error) {
	col := df.Col(name)
	if col.Err != nil {
		return nil, fmt.Errorf("column %q: %w", name, col.Err)
	}
	return col.Float(), nil
}
