package main

import (
	"bytes"
	"os"

	"github.com/avgeo/icaobox/internal/airports"
	"github.com/avgeo/icaobox/internal/boxes"
	"github.com/avgeo/icaobox/internal/filter"
	"github.com/avgeo/icaobox/internal/fsio"
	"github.com/avgeo/icaobox/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Output string `short:"o" long:"out" description:"Output CSV path" default:"icaos_in_boxes.csv"`

	Args struct {
		Airports string `positional-arg-name:"AIRPORTS_CSV" description:"Airport records CSV (icao_code, latitude_deg, longitude_deg)"`
		Boxes    string `positional-arg-name:"BOXES_FILE" description:"Boxes definition file (JSON or YAML)"`
	} `positional-args:"yes" required:"2"`
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

	boxList, err := boxes.Load(opts.Args.Boxes)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load boxes definition")
	}

	airportList, err := airports.ReadCSV(opts.Args.Airports)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read airports CSV")
	}

	result := filter.Run(airportList, boxList)
	if result.Total() == 0 {
		log.Warn().Msg("No airports matched any box, writing empty report")
	}

	var buf bytes.Buffer
	if err := airports.WriteRows(&buf, result.Rows); err != nil {
		log.Fatal().Err(err).Msg("Failed to render report CSV")
	}
	if err := fsio.WriteFile(opts.Output, buf.Bytes()); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write report CSV")
	}

	for _, box := range boxList {
		log.Info().
			Str("box", box.Name).
			Int("matches", result.PerBox[box.Name]).
			Msg("Box matched")
	}

	log.Info().
		Int("airports", len(airportList)).
		Int("boxes", len(boxList)).
		Int("matches", result.Total()).
		Str("path", opts.Output).
		Msg("Report written")
}
