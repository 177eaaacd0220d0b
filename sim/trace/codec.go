package trace

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode writes the trace to w in msgpack form.
func Encode(w io.Writer, st *SimulationTrace) error {
	if err := msgpack.NewEncoder(w).Encode(st); err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}
	return nil
}

// Decode reads a trace previously written by Encode.
func Decode(r io.Reader) (*SimulationTrace, error) {
	var st SimulationTrace
	if err := msgpack.NewDecoder(r).Decode(&st); err != nil {
		return nil, fmt.Errorf("decoding trace: %w", err)
	}
	return &st, nil
}
