package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// recordFields is the number of whitespace-separated fields per record.
const recordFields = 4

// ReadRecords parses an instance source: one header line (discarded)
// followed by one "id x y attr" record per line.
//
// Blank lines are skipped. A record is appended only after all four fields
// parsed, so a truncated final line fails the read instead of duplicating
// the previous record.
//
// Errors:
//   - ErrMalformedRecord (wrapped with the 1-based line number) for lines
//     with the wrong field count or unparsable numbers.
//   - the underlying reader error, wrapped.
func ReadRecords(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		recs []Record
		line int
	)
	for sc.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rec, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read: %w", err)
	}

	return recs, nil
}

// parseRecord converts the four fields of a record line.
func parseRecord(fields []string) (Record, error) {
	if len(fields) != recordFields {
		return Record{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, recordFields, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: id %q", ErrMalformedRecord, fields[0])
	}

	var vals [recordFields - 1]float64
	for k := range vals {
		vals[k], err = strconv.ParseFloat(fields[k+1], 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: field %d %q", ErrMalformedRecord, k+2, fields[k+1])
		}
	}

	return Record{ID: id, X: vals[0], Y: vals[1], Attr: vals[2]}, nil
}
