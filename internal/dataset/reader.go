// Package dataset reads row-oriented source data in partitions. A partition
// is an independent, arbitrarily-sized slice of the full record set; the
// cleaning pipeline is invoked once per partition with no cross-partition
// dependency.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jengzang/fares-backend-go/internal/pipeline"
)

// RecordBatch is one partition of raw records
type RecordBatch struct {
	Index   int
	Records []pipeline.RawRecord
}

// PartitionReader reads a source into partitions and hands each one to fn.
// Implementations stop early when fn or the context reports an error.
type PartitionReader interface {
	ReadPartitioned(ctx context.Context, source string, fn func(RecordBatch) error) error
}

// DefaultPartitionSize is the stock number of rows per partition
const DefaultPartitionSize = 10000

// CSVReader reads header-driven CSV exports. Cell values are passed through
// as text; all type interpretation belongs to the pipeline normalizer.
type CSVReader struct {
	PartitionSize int
}

// NewCSVReader creates a CSV partition reader
func NewCSVReader(partitionSize int) *CSVReader {
	if partitionSize <= 0 {
		partitionSize = DefaultPartitionSize
	}
	return &CSVReader{PartitionSize: partitionSize}
}

// RowCounter is implemented by readers that can cheaply pre-count rows, so
// callers can report progress against a known total.
type RowCounter interface {
	CountRows(source string) (int64, error)
}

// CountRows counts data rows (header excluded) without materializing them
func (r *CSVReader) CountRows(source string) (int64, error) {
	f, err := os.Open(source)
	if err != nil {
		return 0, fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var n int64 = -1 // skip the header
	for {
		_, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to count rows: %w", err)
		}
		n++
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// ReadPartitioned streams the file in partitions of PartitionSize rows
func (r *CSVReader) ReadPartitioned(ctx context.Context, source string, fn func(RecordBatch) error) error {
	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // ragged rows are the normalizer's problem, not ours

	header, err := cr.Read()
	if err == io.EOF {
		return fmt.Errorf("source is empty: %s", source)
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	batch := make([]pipeline.RawRecord, 0, r.PartitionSize)
	index := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(RecordBatch{Index: index, Records: batch}); err != nil {
			return err
		}
		index++
		batch = make([]pipeline.RawRecord, 0, r.PartitionSize)
		return nil
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}

		rec := make(pipeline.RawRecord, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		batch = append(batch, rec)

		if len(batch) >= r.PartitionSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	return flush()
}
