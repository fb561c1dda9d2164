// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/audmosaic/segment"
)

func validRecord(source string, n int) Record {
	return Record{
		SourceID:    source,
		FrameID:     FrameID(source, n),
		Path:        source + ".ogg",
		StartSample: n * 100,
		EndSample:   (n + 1) * 100,
		Features:    Features{Key: 3, Scale: Minor, KeyStrength: 0.7},
	}
}

func TestNewTable_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *Record)
		wantErr error
	}{
		{"valid", func(r *Record) {}, nil},
		{"empty range", func(r *Record) { r.EndSample = r.StartSample }, ErrInvalidRecord},
		{"negative start", func(r *Record) { r.StartSample = -1 }, ErrInvalidRecord},
		{"key out of range", func(r *Record) { r.Key = 12 }, ErrInvalidRecord},
		{"key strength above one", func(r *Record) { r.KeyStrength = 1.5 }, ErrInvalidRecord},
		{"unknown scale", func(r *Record) { r.Scale = 7 }, ErrInvalidRecord},
		{"missing path", func(r *Record) { r.Path = "" }, ErrInvalidRecord},
		{"NaN key strength", func(r *Record) { r.KeyStrength = math.NaN() }, ErrInvalidRecord},
		{"NaN mfcc", func(r *Record) { r.MFCC[5] = math.NaN() }, ErrInvalidRecord},
		{"infinite mfcc", func(r *Record) { r.MFCC[0] = math.Inf(-1) }, ErrInvalidRecord},
		{"infinite loudness", func(r *Record) { r.Loudness = math.Inf(1) }, ErrInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := validRecord("42", 0)
			tt.mutate(&rec)

			_, err := NewTable([]Record{rec})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTable() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTable_DuplicateFrame(t *testing.T) {
	t.Parallel()

	a := validRecord("42", 0)
	b := validRecord("42", 0)
	if _, err := NewTable([]Record{a, b}); !errors.Is(err, ErrDuplicateFrame) {
		t.Errorf("NewTable() error = %v, want ErrDuplicateFrame", err)
	}

	// same frame id under another source is fine
	c := validRecord("43", 0)
	c.FrameID = a.FrameID
	if _, err := NewTable([]Record{a, c}); err != nil {
		t.Errorf("NewTable() error = %v, want nil", err)
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()

	t1, _ := NewTable([]Record{validRecord("1", 0), validRecord("1", 1)})
	t2, _ := NewTable([]Record{validRecord("2", 0)})

	all, err := Concat(t1, t2)
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}
	if all.Len() != 3 {
		t.Errorf("Len() = %d, want 3", all.Len())
	}
	if got := all.Paths(); len(got) != 2 || got[0] != "1.ogg" || got[1] != "2.ogg" {
		t.Errorf("Paths() = %v", got)
	}
}

func TestFeature_RoundTripNames(t *testing.T) {
	t.Parallel()

	for f := MFCC0; f.Valid(); f++ {
		got, err := ParseFeature(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFeature(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
	}

	if _, err := ParseFeature("mfcc_13"); err == nil {
		t.Error("ParseFeature(mfcc_13) error = nil, want error")
	}
}

func TestRecord_Vector(t *testing.T) {
	t.Parallel()

	rec := validRecord("1", 0)
	for i := range rec.MFCC {
		rec.MFCC[i] = float64(i) * 0.5
	}
	rec.Loudness = -3

	v := rec.Vector([]Feature{MFCC2, Loudness, KeyStrength})
	want := []float64{1.0, -3, 0.7}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("Vector()[%d] = %v, want %v", i, v[i], want[i])
		}
	}

	if got := len(rec.Vector(MFCC())); got != NumMFCC {
		t.Errorf("len(Vector(MFCC())) = %d, want %d", got, NumMFCC)
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"C", 0, false},
		{"c#", 1, false},
		{"Eb", 3, false},
		{"B", 11, false},
		{"7", 7, false},
		{"12", 0, true},
		{"H", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseKey(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	waveform := make([]float32, 10)
	for i := range waveform {
		waveform[i] = float32(i)
	}

	var seen [][]float32
	a := AnalyzerFunc(func(samples []float32) (Features, error) {
		seen = append(seen, samples)
		return Features{Loudness: float64(samples[0]), Scale: Major, Key: 2, KeyStrength: 0.5}, nil
	})

	table, err := Analyze("99", "99.ogg", waveform, segment.Fixed(len(waveform), 4), a)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	second := table.At(1)
	if second.FrameID != "99_f1" || second.StartSample != 4 || second.EndSample != 8 {
		t.Errorf("second frame = %+v", second)
	}
	if second.Loudness != 4 {
		t.Errorf("second frame loudness = %v, want 4", second.Loudness)
	}
	if len(seen) != 2 || len(seen[1]) != 4 {
		t.Errorf("analyzer saw %d frames", len(seen))
	}
}

func TestAnalyze_PropagatesAnalyzerError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	a := AnalyzerFunc(func([]float32) (Features, error) { return Features{}, boom })

	_, err := Analyze("1", "1.ogg", make([]float32, 8), segment.Fixed(8, 0), a)
	if !errors.Is(err, boom) {
		t.Errorf("Analyze() error = %v, want %v", err, boom)
	}
}

func csvRow(source, id, path string, start, end int, key, scale string, ks float64, mfcc0 float64) string {
	cells := []string{source, id, path, fmt.Sprint(start), fmt.Sprint(end), "0.25"}
	for i := range NumMFCC {
		if i == 0 {
			cells = append(cells, fmt.Sprint(mfcc0))
			continue
		}
		cells = append(cells, "0")
	}
	cells = append(cells, key, scale, fmt.Sprint(ks))
	return strings.Join(cells, ",")
}

func csvHeader() string {
	cols := []string{"freesound_id", "id", "path", "start_sample", "end_sample", "loudness"}
	for _, f := range MFCC() {
		cols = append(cols, f.String())
	}
	cols = append(cols, "key", "scale", "key_strength")
	return strings.Join(cols, ",")
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		csvHeader(),
		csvRow("7", "7_f0", "raw/7.ogg", 0, 1024, "A", "minor", 0.8, 12.5),
		csvRow("7", "7_f1", "raw/7.ogg", 1024, 2048, "3", "major", 0.4, -1),
	}, "\n")

	table, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	first := table.At(0)
	if first.Key != 9 || first.Scale != Minor || first.KeyStrength != 0.8 || first.MFCC[0] != 12.5 {
		t.Errorf("first record = %+v", first)
	}
	if first.Loudness != 0.25 {
		t.Errorf("first loudness = %v, want 0.25", first.Loudness)
	}
	if table.At(1).Key != 3 || table.At(1).StartSample != 1024 {
		t.Errorf("second record = %+v", table.At(1))
	}
}

func TestWriteCSV_ReadsBack(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		csvHeader(),
		csvRow("7", "7_f0", "raw/7.ogg", 0, 1024, "C#", "minor", 0.8, 12.5),
		csvRow("7", "7_f1", "raw/7.ogg", 1024, 2048, "11", "major", 0.4, -1.125),
	}, "\n")

	table, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if first, _, _ := strings.Cut(buf.String(), "\n"); first != csvHeader() {
		t.Errorf("header = %q, want %q", first, csvHeader())
	}

	again, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV(WriteCSV()) error = %v", err)
	}
	if !slices.Equal(again.Records(), table.Records()) {
		t.Errorf("records changed:\n%+v\n%+v", again.Records(), table.Records())
	}
}

func TestKeyName(t *testing.T) {
	t.Parallel()

	for k := range 12 {
		got, err := ParseKey(KeyName(k))
		if err != nil || got != k {
			t.Errorf("ParseKey(KeyName(%d)) = %d, %v", k, got, err)
		}
	}
	if KeyName(12) != "12" {
		t.Errorf("KeyName(12) = %q, want \"12\"", KeyName(12))
	}
}

func TestReadCSV_MissingColumn(t *testing.T) {
	t.Parallel()

	header := strings.Replace(csvHeader(), ",mfcc_4", "", 1)
	_, err := ReadCSV(strings.NewReader(header + "\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ReadCSV() error = %v, want ErrMissingColumn", err)
	}
}

func TestReadCSV_RejectsNaN(t *testing.T) {
	t.Parallel()

	data := csvHeader() + "\n" + csvRow("7", "7_f0", "raw/7.ogg", 0, 1024, "A", "minor", 0.8, math.NaN())
	if _, err := ReadCSV(strings.NewReader(data)); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("ReadCSV() error = %v, want ErrInvalidRecord", err)
	}
}

func TestReadCSV_BadRow(t *testing.T) {
	t.Parallel()

	data := csvHeader() + "\n" + csvRow("7", "7_f0", "raw/7.ogg", 0, 1024, "Q", "minor", 0.8, 0)
	if _, err := ReadCSV(strings.NewReader(data)); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("ReadCSV() error = %v, want ErrUnknownKey", err)
	}
}
