package main

import (
	"bytes"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fhausmann/track2route/internal/adapters/gpxfile"
	"github.com/fhausmann/track2route/internal/core/usecases"
	"github.com/fhausmann/track2route/internal/pkg/config"
	"github.com/fhausmann/track2route/internal/pkg/geospatial"
	"github.com/fhausmann/track2route/internal/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	app := &cli.App{
		Name:      "track2route",
		Usage:     "convert the GPS tracks of a GPX file into routes",
		ArgsUsage: "<input.gpx>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "routepoints",
				Aliases: []string{"n"},
				Usage:   "number of points per generated route",
				Value:   cfg.Output.RoutePoints,
			},
			&cli.StringFlag{
				Name:    "outfile",
				Aliases: []string{"o"},
				Usage:   "file the extended document is written to",
				Value:   cfg.Output.File,
			},
			&cli.BoolFlag{
				Name:  "simplify",
				Usage: "thin each track before reduction",
				Value: cfg.Simplify.Enabled,
			},
			&cli.Float64Flag{
				Name:  "max-distance",
				Usage: "thinning tolerance in meters",
				Value: cfg.Simplify.MaxDistance,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: cfg.Log.Level,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "text or json",
				Value: cfg.Log.Format,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	logging.Setup(c.String("log-level"), c.String("log-format"))

	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one input file, got %d arguments", c.NArg())
	}
	if c.Int("routepoints") < 2 {
		return fmt.Errorf("routepoints must be at least 2, got %d", c.Int("routepoints"))
	}

	in, err := os.Open(c.Args().First())
	if err != nil {
		return err
	}
	defer in.Close()

	svc := usecases.NewConvertService(gpxfile.Codec{}, geospatial.Simplifier{}, geospatial.GreatCircleDistance)

	// The document is assembled in memory first so a failed conversion
	// never leaves a half-written output file behind.
	var buf bytes.Buffer
	report, err := svc.Convert(in, &buf, usecases.Options{
		RoutePoints: c.Int("routepoints"),
		Simplify:    c.Bool("simplify"),
		MaxDistance: c.Float64("max-distance"),
	})
	if err != nil {
		return err
	}

	outfile := c.String("outfile")
	if err := os.WriteFile(outfile, buf.Bytes(), 0o644); err != nil {
		return err
	}

	for _, tr := range report.Tracks {
		slog.Info("track reduced",
			"track", tr.Name,
			"points_in", tr.PointsIn,
			"dropped", tr.Dropped,
			"points_out", tr.PointsOut,
		)
	}
	slog.Info("document written", "file", outfile, "routes", len(report.Tracks))

	return nil
}
