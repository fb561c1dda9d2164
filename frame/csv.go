// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// column aliases accepted in a CSV header; the first name is canonical
var csvColumns = map[string][]string{
	"source": {"freesound_id", "source_id"},
	"frame":  {"id", "frame_id"},
	"path":   {"path", "file_path"},
	"start":  {"start_sample"},
	"end":    {"end_sample"},
	"key":    {"key"},
	"scale":  {"scale"},
	"ks":     {"key_strength"},
	"loud":   {"loudness"},
}

// ReadCSV reads a frame table from CSV with a header row. Unknown columns are
// ignored. Required: freesound_id (or source_id), id (or frame_id), path,
// start_sample, end_sample, mfcc_0..mfcc_12, key, scale and key_strength.
// loudness is optional.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	cols := make(map[string]int, len(csvColumns))
	for name, aliases := range csvColumns {
		cols[name] = -1
		for _, a := range aliases {
			if i, ok := idx[a]; ok {
				cols[name] = i
				break
			}
		}
		if cols[name] < 0 && name != "loud" {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, aliases[0])
		}
	}

	var mfcc [NumMFCC]int
	for j := range mfcc {
		name := MFCC0 + Feature(j)
		i, ok := idx[name.String()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		mfcc[j] = i
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}

		rec, err := parseRow(row, cols, mfcc)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return NewTable(records)
}

// WriteCSV writes t with a header row in the layout ReadCSV expects.
// Keys are written as note names.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := []string{"freesound_id", "id", "path", "start_sample", "end_sample", "loudness"}
	for _, f := range MFCC() {
		header = append(header, f.String())
	}
	header = append(header, "key", "scale", "key_strength")

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	row := make([]string, len(header))
	for i := range t.Len() {
		rec := t.At(i)

		row = append(row[:0],
			rec.SourceID,
			rec.FrameID,
			rec.Path,
			strconv.Itoa(rec.StartSample),
			strconv.Itoa(rec.EndSample),
			formatFloat(rec.Loudness),
		)
		for _, v := range rec.MFCC {
			row = append(row, formatFloat(v))
		}
		row = append(row, KeyName(rec.Key), rec.Scale.String(), formatFloat(rec.KeyStrength))

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func parseRow(row []string, cols map[string]int, mfcc [NumMFCC]int) (Record, error) {
	var (
		rec Record
		err error
	)

	rec.SourceID = strings.TrimSpace(row[cols["source"]])
	rec.FrameID = strings.TrimSpace(row[cols["frame"]])
	rec.Path = strings.TrimSpace(row[cols["path"]])

	if rec.StartSample, err = parseSample(row[cols["start"]]); err != nil {
		return rec, fmt.Errorf("start_sample: %w", err)
	}
	if rec.EndSample, err = parseSample(row[cols["end"]]); err != nil {
		return rec, fmt.Errorf("end_sample: %w", err)
	}
	if rec.Key, err = ParseKey(row[cols["key"]]); err != nil {
		return rec, err
	}
	if rec.Scale, err = ParseScale(row[cols["scale"]]); err != nil {
		return rec, err
	}
	if rec.KeyStrength, err = parseFloat(row[cols["ks"]]); err != nil {
		return rec, fmt.Errorf("key_strength: %w", err)
	}
	if i := cols["loud"]; i >= 0 {
		if rec.Loudness, err = parseFloat(row[i]); err != nil {
			return rec, fmt.Errorf("loudness: %w", err)
		}
	}

	for j, i := range mfcc {
		if rec.MFCC[j], err = parseFloat(row[i]); err != nil {
			return rec, fmt.Errorf("mfcc_%d: %w", j, err)
		}
	}

	return rec, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	return f, nil
}

// sample offsets may have been written as floats ("1024.0")
func parseSample(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: fractional sample offset %q", ErrInvalidRecord, s)
	}
	return int(f), nil
}
