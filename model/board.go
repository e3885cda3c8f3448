package model

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-regions/rules"
)

// LoadBoard reads the initial grid from a delimited text file
func LoadBoard(filename string, delimiter rune) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to open file: %+v", filename)
	}
	defer f.Close()

	g, err := ReadBoard(f, delimiter)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] file: %+v", filename)
	}
	return g, nil
}

// ReadBoard parses one grid row per record and one cell per field.
// Blank lines are skipped and every row must have the same number of 0/1 cells.
func ReadBoard(r io.Reader, delimiter rune) (*Grid, error) {
	records, err := readRecords(r, delimiter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrMalformedBoard, "[ReadBoard] no rows")
	}

	var (
		rows   = len(records)
		cols   = len(records[0])
		values = make([]uint8, 0, rows*cols)
	)
	for i, record := range records {
		if len(record) != cols {
			return nil, errors.Wrapf(ErrMalformedBoard, "[ReadBoard] row %d has %d cells, expected %d", i, len(record), cols)
		}
		for j, field := range record {
			switch strings.TrimSpace(field) {
			case "0":
				values = append(values, rules.Dead)
			case "1":
				values = append(values, rules.Alive)
			default:
				return nil, errors.Wrapf(ErrMalformedBoard, "[ReadBoard] invalid cell %q at (%d, %d)", field, i, j)
			}
		}
	}

	g, err := NewGrid(rows, cols, values)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedBoard, err.Error())
	}
	return g, nil
}

// readRecords splits the input into rows of fields
func readRecords(r io.Reader, delimiter rune) ([][]string, error) {
	if delimiter == ' ' {
		var records [][]string
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
				records = append(records, fields)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "[ReadBoard] failed to read rows")
		}
		return records, nil
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = delimiter != '\t'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedBoard, "[ReadBoard] %v", err)
	}
	return records, nil
}
