package decode

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"ship-registry/feature/fleet/models"
)

// jst is the zone marriage dates are registered in.
var jst = time.FixedZone("JST", 9*60*60)

var dateLayouts = []string{"2006/01/02", "2006-01-02", "2006/01/02 15:04", "2006-01-02 15:04:05"}

// Marriage decodes the marriage list CSV. The header row names the id, name
// and date columns in any order.
func Marriage(r io.Reader) ([]models.MarriageEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []models.MarriageEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", SourceMarriage, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"id", "name", "date"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%s header lacks column %q", SourceMarriage, required)
		}
	}

	entries := []models.MarriageEntry{}
	for i := 0; ; i++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", SourceMarriage, err)
		}

		field := func(name string) string {
			if idx := cols[name]; idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		id, err := strconv.Atoi(field("id"))
		if err != nil {
			return nil, &RecordError{Source: SourceMarriage, Index: i, Reason: fmt.Sprintf("invalid id %q", field("id"))}
		}
		name := Name(field("name"))
		if name == "" {
			return nil, &RecordError{Source: SourceMarriage, Index: i, Reason: "empty ship name"}
		}
		registered, ok := parseDate(field("date"))
		if !ok {
			return nil, &RecordError{Source: SourceMarriage, Index: i, Reason: fmt.Sprintf("invalid date %q", field("date"))}
		}

		entries = append(entries, models.MarriageEntry{ID: id, Name: name, RegisteredAt: registered})
	}
	return entries, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, jst); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
