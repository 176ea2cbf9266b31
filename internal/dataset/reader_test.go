package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `tpep_pickup_datetime,fare_amount,passenger_count
2014-06-15 10:30:00,12.5,2
2014-06-15 11:00:00,8.0,1
2014-06-15 11:30:00,22.0,3
2014-06-15 12:00:00,5.5,1
2014-06-15 12:30:00,14.0,2
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trips.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVReader_Partitions(t *testing.T) {
	r := NewCSVReader(2)

	var batches []RecordBatch
	err := r.ReadPartitioned(context.Background(), writeSample(t), func(b RecordBatch) error {
		batches = append(batches, b)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	// 5 rows at partition size 2 -> 2+2+1
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}
	if len(batches[0].Records) != 2 || len(batches[2].Records) != 1 {
		t.Errorf("batch sizes = %d,%d,%d, want 2,2,1",
			len(batches[0].Records), len(batches[1].Records), len(batches[2].Records))
	}
	if batches[2].Index != 2 {
		t.Errorf("last batch index = %d, want 2", batches[2].Index)
	}
	if got := batches[0].Records[0]["fare_amount"]; got != "12.5" {
		t.Errorf("first row fare_amount = %q, want \"12.5\"", got)
	}
	// Headers are passed through untouched; normalization happens downstream
	if _, ok := batches[0].Records[0]["tpep_pickup_datetime"]; !ok {
		t.Error("raw header name not preserved")
	}
}

func TestCSVReader_CallbackErrorStopsRead(t *testing.T) {
	r := NewCSVReader(1)
	wantErr := errors.New("sink full")

	calls := 0
	err := r.ReadPartitioned(context.Background(), writeSample(t), func(b RecordBatch) error {
		calls++
		if calls == 2 {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if calls != 2 {
		t.Errorf("callback ran %d times, want 2", calls)
	}
}

func TestCSVReader_CancelledContext(t *testing.T) {
	r := NewCSVReader(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.ReadPartitioned(ctx, writeSample(t), func(b RecordBatch) error {
		t.Error("callback should not run after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCSVReader_MissingFile(t *testing.T) {
	r := NewCSVReader(10)
	err := r.ReadPartitioned(context.Background(), "/does/not/exist.csv", func(b RecordBatch) error {
		return nil
	})
	if err == nil {
		t.Error("expected error for missing source")
	}
}
