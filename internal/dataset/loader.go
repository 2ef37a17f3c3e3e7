package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadError reports a source file that could not be turned into a table:
// missing file, unreadable contents, or required columns absent.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Date layouts accepted for the fecha column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
}

// DefaultPaths are the candidate locations of the consolidated CSV,
// tried in order when no path is configured.
var DefaultPaths = []string{
	"data/processed/sipsa_master.csv",
	"/content/data/processed/sipsa_master.csv",
}

// ResolvePath returns the configured path, or the first default
// candidate that exists on disk.
func ResolvePath(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", &LoadError{
		Path: strings.Join(DefaultPaths, ", "),
		Err:  fmt.Errorf("sipsa_master.csv not found in any candidate path"),
	}
}

// Load reads the CSV at path into a slice of PriceObservation.
// Rows with an unparseable date or a missing/non-numeric price are
// dropped (counted and logged, not fatal). Text columns are trimmed
// and uppercased so filters compare normalized values.
func Load(path string) ([]PriceObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to read CSV header: %w", err)}
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[normalizeHeader(h)] = i
	}

	required := []string{ColDate, ColGroup, ColProduct, ColProductCode, ColMarket, ColPrice}
	for _, c := range required {
		if _, ok := cols[c]; !ok {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("missing required column %q", c)}
		}
	}

	var rows []PriceObservation
	dropped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			dropped++
			continue
		}

		date, ok := parseDate(field(record, cols[ColDate]))
		if !ok {
			dropped++
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(field(record, cols[ColPrice])), 64)
		if err != nil {
			dropped++
			continue
		}

		rows = append(rows, PriceObservation{
			Date:          date,
			Group:         normalizeValue(field(record, cols[ColGroup])),
			Product:       normalizeValue(field(record, cols[ColProduct])),
			ProductCode:   strings.TrimSpace(field(record, cols[ColProductCode])),
			Market:        normalizeValue(field(record, cols[ColMarket])),
			AvgPricePerKg: price,
		})
	}

	if dropped > 0 {
		log.Printf("[DATASET] %s: dropped %d rows without a valid date or price", path, dropped)
	}

	return rows, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeHeader converts "Precio Promedio*" → "precio_promedio".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "*", "")
	h = strings.ReplaceAll(h, " ", "_")
	return h
}

func normalizeValue(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
