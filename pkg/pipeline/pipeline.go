package pipeline

import "github.com/go-gota/gota/dataframe"

// Transformer turns one table into another without modifying its input.
type Transformer interface {
	Transform(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

// TransformFunc adapts a plain function to Transformer.
type TransformFunc func(df dataframe.DataFrame) (dataframe.DataFrame, error)

func (f TransformFunc) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	return f(df)
}

// Pipeline chains multiple transformers.
type Pipeline struct {
	steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Transform runs every step in order and stops at the first error.
func (p *Pipeline) Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	var err error
	for _, step := range p.steps {
		if df, err = step.Transform(df); err != nil {
			return df, err
		}
	}
	return df, nil
}
