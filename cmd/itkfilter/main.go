// Package main provides the itkfilter CLI: it applies an HCL-defined
// chain of neighborhood filters to a PNG or TIFF image.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lucasalg/ITK/internal/config"
	"github.com/lucasalg/ITK/internal/filter"
	"github.com/lucasalg/ITK/internal/grid"
	"github.com/lucasalg/ITK/internal/parallel"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("itkfilter %s\n", version)
		return
	}

	var (
		pipelinePath = flag.String("pipeline", "", "HCL pipeline file (required)")
		inPath       = flag.String("in", "", "input image, .png or .tif/.tiff (required)")
		outPath      = flag.String("out", "", "output image, .png or .tif/.tiff (required)")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *pipelinePath == "" || *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger, *pipelinePath, *inPath, *outPath); err != nil {
		logger.Error("itkfilter failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, pipelinePath, inPath, outPath string) error {
	pipeline, err := config.Load(pipelinePath)
	if err != nil {
		return err
	}
	logger.Debug("pipeline loaded", "stages", len(pipeline.Filters), "workers", pipeline.Workers)

	img, err := loadGrid(inPath)
	if err != nil {
		return err
	}
	extent := img.Extent()
	logger.Info("image loaded", "path", inPath, "size", extent.Size)

	par := parallel.DefaultConfig()
	if pipeline.Workers > 0 {
		par = parallel.Config{Enabled: pipeline.Workers > 1, NumWorkers: pipeline.Workers, MinItems: 1}
	}

	for i, stage := range pipeline.Filters {
		op, err := stage.BuildOperator(img.Dim())
		if err != nil {
			return fmt.Errorf("stage %d (%s): %w", i, stage.Kind, err)
		}

		f := filter.New[float64, float64, float64]()
		f.SetOperator(op)
		f.OverrideBoundaryCondition(stage.BuildBoundary())
		f.SetParallelism(par)

		out, err := grid.New[float64](extent)
		if err != nil {
			return fmt.Errorf("stage %d (%s): %w", i, stage.Kind, err)
		}
		if err := f.Apply(img, out, extent); err != nil {
			return fmt.Errorf("stage %d (%s): %w", i, stage.Kind, err)
		}

		logger.Debug("stage applied", "stage", i, "kind", stage.Kind, "radius", op.Radius())
		img = out
	}

	if err := saveGrid(img, outPath); err != nil {
		return err
	}
	logger.Info("image written", "path", outPath)
	return nil
}
