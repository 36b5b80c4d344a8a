package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/config"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/dataprep"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/viz"
)

// Options configures Run. A nil Config uses config.Default and a nil Logger discards output.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
}

// Result holds the figures produced by a run.
type Result struct {
	CatPlot *viz.CatPlot
	HeatMap *viz.HeatMap
}

// Run loads the examination data once, derives the indicator columns and
// writes both figures.
func Run(opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	raw, err := data.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded dataset",
		zap.String("path", cfg.Input),
		zap.Int("rows", raw.Nrow()),
		zap.Int("columns", raw.Ncol()),
	)

	df, err := NewPipeline(TransformFunc(dataprep.DeriveFeatures)).Transform(raw)
	if err != nil {
		return nil, err
	}

	cat, err := viz.DrawCatPlot(df, cfg.CatPlot)
	if err != nil {
		return nil, fmt.Errorf("categorical plot: %w", err)
	}
	logger.Info("wrote categorical plot",
		zap.String("path", cfg.CatPlot),
		zap.Int("bars", len(cat.Groups)),
	)

	heat, err := viz.DrawHeatMap(df, cfg.HeatMap)
	if err != nil {
		return nil, fmt.Errorf("heatmap: %w", err)
	}
	logger.Info("wrote heatmap",
		zap.String("path", cfg.HeatMap),
		zap.Int("rows", heat.Rows),
		zap.Int("dropped", df.Nrow()-heat.Rows),
	)

	return &Result{CatPlot: cat, HeatMap: heat}, nil
}
