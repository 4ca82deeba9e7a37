// Package dataset loads the tabular review source and detects which
// columns carry the entity name, the review text, and the rating.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// Columns holds the detected role indexes into the header. -1 means the
// role is absent. Entity and Rating are optional; Review is mandatory.
type Columns struct {
	Entity int
	Review int
	Rating int
}

// Detect assigns header columns to roles by substring match on the
// lower-cased header name. The first matching column wins for each role,
// preserving column order. A missing review column is a fatal
// configuration error with no fallback.
func Detect(header []string) (Columns, error) {
	cols := Columns{Entity: -1, Review: -1, Rating: -1}
	for i, h := range header {
		hl := strings.ToLower(h)
		if cols.Entity == -1 && (strings.Contains(hl, "name") || strings.Contains(hl, "restaurant") || strings.Contains(hl, "cafe")) {
			cols.Entity = i
		}
		if cols.Review == -1 && (strings.Contains(hl, "review") || strings.Contains(hl, "text")) {
			cols.Review = i
		}
		if cols.Rating == -1 && (strings.Contains(hl, "rating") || strings.Contains(hl, "star")) {
			cols.Rating = i
		}
	}
	if cols.Review == -1 {
		return cols, domain.ErrNoReviewColumn
	}
	return cols, nil
}

var numericToken = regexp.MustCompile(`\d+\.?\d*`)

// ExtractRating pulls the first numeric token (with optional decimal
// part) out of a free-form rating cell: "4.5/5" → 4.5, "5 stars" → 5.
// Non-numeric or absent values become missing, never zero.
func ExtractRating(s string) *float64 {
	tok := numericToken.FindString(s)
	if tok == "" {
		return nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Load reads the CSV file at path into review records.
func Load(path string) ([]domain.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoDataset, path)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV review rows from r. Ragged rows are tolerated: cells
// beyond a row's width read as empty, and a blank review cell stays an
// empty string rather than becoming an error.
func Read(r io.Reader) ([]domain.Review, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable header", domain.ErrNoDataset)
	}
	cols, err := Detect(header)
	if err != nil {
		return nil, err
	}

	var out []domain.Review
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rv := domain.Review{Text: strings.TrimSpace(cell(rec, cols.Review))}
		if cols.Entity >= 0 {
			rv.Entity = strings.TrimSpace(cell(rec, cols.Entity))
		}
		if cols.Rating >= 0 {
			rv.Rating = ExtractRating(cell(rec, cols.Rating))
		}
		out = append(out, rv)
	}
	return out, nil
}

func cell(rec []string, i int) string {
	if i >= 0 && i < len(rec) {
		return rec[i]
	}
	return ""
}
