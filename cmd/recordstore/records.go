package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tailored-agentic-units/recordstore/batch"
	"github.com/tailored-agentic-units/recordstore/record"
)

type inputRecord struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Age       int        `json:"age"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// loadRecords reads a JSON array of records. Entries without created_at are
// stamped with the time they are decoded.
func loadRecords(filename string) ([]record.Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var inputs []inputRecord
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}

	records := make([]record.Record, 0, len(inputs))
	for _, in := range inputs {
		var opts []record.Option
		if in.CreatedAt != nil {
			opts = append(opts, record.WithCreatedAt(*in.CreatedAt))
		}
		records = append(records, record.New(in.ID, in.Name, in.Email, in.Age, opts...))
	}
	return records, nil
}

// writeBatches writes one JSON array of record maps per line, size records
// per line.
func writeBatches(w io.Writer, records []record.Record, size int) error {
	batches, err := batch.Partition(records, size)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	for _, b := range batches {
		views := make([]map[string]any, len(b))
		for i, r := range b {
			views[i] = r.ToMap()
		}
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("failed to write batch: %w", err)
		}
	}
	return nil
}
