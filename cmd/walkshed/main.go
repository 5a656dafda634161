package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openwalk/walkshed"
	"github.com/pkg/errors"
)

var (
	conf       = flag.String("conf", "walkshed.toml", "Configuration file mapping crossing names to road network files")
	out        = flag.String("out", "reachable_lines_all.geojson", "Output file for the reachable lines")
	format     = flag.String("format", "geojson", "Output format. Expected values: geojson / csv")
	geomFormat = flag.String("geomf", "wkt", "Format of geometry column for CSV output. Expected values: wkt / geojson")
	distance   = flag.Float64("distance", 0, "Walking distance budget in meters (overrides configuration if positive)")
	snap       = flag.Float64("snap", 0, "Snap tolerance in meters (overrides configuration if positive)")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := walkshed.LoadConfig(*conf)
	if err != nil {
		logger.Error("Can't load configuration", "err", err)
		os.Exit(1)
	}
	if *distance > 0 {
		cfg.MaxDistance = *distance
	}
	if *snap > 0 {
		cfg.SnapTolerance = *snap
	}

	engine := walkshed.NewEngine(
		walkshed.WithMaxDistance(cfg.MaxDistance),
		walkshed.WithSnapTolerance(cfg.SnapTolerance),
		walkshed.WithLogger(logger),
	)

	st := time.Now()
	features, err := engine.Run(cfg)
	if err != nil {
		if errors.Is(err, walkshed.ErrEmptyResult) {
			logger.Warn("No reachable lines computed, check your inputs")
			return
		}
		logger.Error("Run failed", "err", err)
		os.Exit(1)
	}
	logger.Info(fmt.Sprintf("Computed %d reachable lines in %v", len(features), time.Since(st)))

	switch strings.ToLower(*format) {
	case "csv":
		err = walkshed.ExportToCSV(features, *out, *geomFormat)
	default:
		err = walkshed.WriteGeoJSON(features, *out)
	}
	if err != nil {
		logger.Error("Can't write output", "err", err)
		os.Exit(1)
	}
	logger.Info("Saved combined reachable lines", "file", *out)
}
