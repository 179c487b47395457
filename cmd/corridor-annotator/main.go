package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/avgeo/icaobox/internal/airports"
	"github.com/avgeo/icaobox/internal/annotate"
	"github.com/avgeo/icaobox/internal/fsio"
	"github.com/avgeo/icaobox/internal/geo"
	"github.com/avgeo/icaobox/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	GeoJSON string `short:"g" long:"geojson" description:"Corridors GeoJSON path" default:"corridors.geojson"`
	CSV     string `short:"c" long:"csv" description:"Filtered report CSV path" default:"icaos_in_boxes.csv"`
	Output  string `short:"o" long:"out" description:"Output GeoJSON path" default:"corridors_with_icao_points.geojson"`
	Compact bool   `long:"compact" description:"Minify the output GeoJSON instead of indenting it"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	fc, err := loadFeatureCollection(opts.GeoJSON)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load corridors GeoJSON")
	}

	rows, err := airports.ReadRows(opts.CSV)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read report CSV")
	}

	summary, err := annotate.Run(fc, rows)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build airport points")
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal output GeoJSON")
	}

	if opts.Compact {
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)

		data, err = m.Bytes("application/json", data)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to minify output GeoJSON")
		}
	}

	if err := fsio.WriteFile(opts.Output, data); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output GeoJSON")
	}

	log.Info().
		Int("rows_used", summary.RowsUsed).
		Int("points_added", summary.PointsAdded).
		Str("path", opts.Output).
		Msg("Annotated GeoJSON written")
}

func loadFeatureCollection(path string) (*geo.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", geo.ErrInputNotFound, path)
		}
		return nil, err
	}

	var fc geo.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", geo.ErrMalformedInput, path, err)
	}
	if !fc.Valid() {
		return nil, fmt.Errorf("%w: %s: expected a FeatureCollection with a \"features\" array", geo.ErrMalformedInput, path)
	}

	return &fc, nil
}
