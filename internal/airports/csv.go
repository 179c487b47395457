package airports

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/avgeo/icaobox/internal/geo"

	"github.com/rs/zerolog/log"
)

// Column names used by the airports CSV and the filtered report CSV.
const (
	colBox   = "box_name"
	colICAO  = "icao_code"
	colLat   = "latitude_deg"
	colLon   = "longitude_deg"
	colIdent = "ident"
	colName  = "name"
)

// ReportHeader is the column order of the filtered report CSV.
var ReportHeader = []string{colBox, colICAO, colLat, colLon, colIdent, colName}

// ReadCSV reads airport records. The header must contain icao_code,
// latitude_deg and longitude_deg; ident and name are carried through
// when present. Rows with a blank ICAO or unparseable coordinates are
// skipped with a warning.
func ReadCSV(path string) ([]Airport, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", geo.ErrInputNotFound, path)
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	cols, err := headerIndex(r, path, colICAO, colLat, colLon)
	if err != nil {
		return nil, err
	}

	var airports []Airport
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", geo.ErrMalformedInput, path, err)
		}
		line++

		icao := strings.ToUpper(strings.TrimSpace(field(record, cols[colICAO])))
		if icao == "" {
			continue
		}

		lat, okLat := parseCoord(field(record, cols[colLat]))
		lon, okLon := parseCoord(field(record, cols[colLon]))
		if !okLat || !okLon {
			log.Warn().
				Str("file", path).
				Int("line", line).
				Str("icao", icao).
				Msg("Skipping row with unparseable coordinates")
			continue
		}

		airports = append(airports, Airport{
			ICAO:     icao,
			Location: geo.Location{Lat: lat, Lon: lon},
			Ident:    strings.TrimSpace(field(record, cols[colIdent])),
			Name:     strings.TrimSpace(field(record, cols[colName])),
		})
	}

	return airports, nil
}

// ReadRows reads a filtered report CSV back in. Rows with a blank box
// name or ICAO are skipped; rows with coordinates outside geographic
// bounds are skipped with a warning rather than aborting the run.
func ReadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", geo.ErrInputNotFound, path)
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	cols, err := headerIndex(r, path, colBox, colICAO, colLat, colLon)
	if err != nil {
		return nil, err
	}

	var rows []Row
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", geo.ErrMalformedInput, path, err)
		}
		line++

		icao := strings.ToUpper(strings.TrimSpace(field(record, cols[colICAO])))
		box := strings.TrimSpace(field(record, cols[colBox]))
		if icao == "" || box == "" {
			continue
		}

		lat, okLat := parseCoord(field(record, cols[colLat]))
		lon, okLon := parseCoord(field(record, cols[colLon]))
		if !okLat || !okLon {
			continue
		}

		if loc := (geo.Location{Lat: lat, Lon: lon}); !loc.Valid() {
			log.Warn().
				Str("file", path).
				Int("line", line).
				Str("icao", icao).
				Float64("lat", lat).
				Float64("lon", lon).
				Msgf("Skipping row: %v", geo.ErrCoordinateOutOfRange)
			continue
		}

		rows = append(rows, Row{
			BoxName: box,
			ICAO:    icao,
			Lat:     lat,
			Lon:     lon,
			Ident:   strings.TrimSpace(field(record, cols[colIdent])),
			Name:    strings.TrimSpace(field(record, cols[colName])),
		})
	}

	return rows, nil
}

// WriteRows renders the report CSV. Float formatting is deterministic
// so identical inputs produce byte-identical output.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ReportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.BoxName,
			row.ICAO,
			strconv.FormatFloat(row.Lat, 'g', -1, 64),
			strconv.FormatFloat(row.Lon, 'g', -1, 64),
			row.Ident,
			row.Name,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// headerIndex maps column names to indices and checks required columns.
// Optional ident/name columns map to -1 when absent.
func headerIndex(r *csv.Reader, path string, required ...string) (map[string]int, error) {
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: missing header row", geo.ErrMalformedInput, path)
	}

	cols := map[string]int{colBox: -1, colICAO: -1, colLat: -1, colLon: -1, colIdent: -1, colName: -1}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if cols[name] < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s: missing required columns %v", geo.ErrMalformedInput, path, missing)
	}

	return cols, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseCoord(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
