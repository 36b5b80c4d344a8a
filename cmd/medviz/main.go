package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/config"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/pipeline"
)

var (
	configPath  string
	inputPath   string
	catPlotPath string
	heatMapPath string
	verbose     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "medviz",
	Short: "Plot cardiovascular risk factors from medical examination data",
	Long: `medviz reads medical_examination.csv, derives an overweight flag,
normalizes cholesterol and glucose to normal / above normal and writes:

  catplot.png  indicator counts per cardiovascular outcome
  heatmap.png  correlations of the cleaned numeric fields

Run without flags to use the fixed paths in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runVisualize,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.Flags().StringVar(&inputPath, "input", "", "examination CSV (default medical_examination.csv)")
	rootCmd.Flags().StringVar(&catPlotPath, "catplot", "", "categorical plot output (default catplot.png)")
	rootCmd.Flags().StringVar(&heatMapPath, "heatmap", "", "heatmap output (default heatmap.png)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// resolveConfig layers flags over the config file over the defaults.
func resolveConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	cfg.Merge(config.Config{Input: inputPath, CatPlot: catPlotPath, HeatMap: heatMapPath})
	return cfg, nil
}

func runVisualize(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	logger.Debug("resolved config",
		zap.String("input", cfg.Input),
		zap.String("catplot", cfg.CatPlot),
		zap.String("heatmap", cfg.HeatMap),
	)

	if _, err := pipeline.Run(pipeline.Options{Config: cfg, Logger: logger}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s and %s\n", cfg.CatPlot, cfg.HeatMap)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
