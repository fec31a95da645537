// Package config decodes the JSON batch file that sitool's batch
// subcommand runs (given with --config), in the style of xtaci/kcptun's
// JSON config loading. No CLI flag overrides a value from the file.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Op is one operation to run: an operator name (e.g. "add", "ult",
// "extract"), its SI-literal operands, and any operation-specific
// integer arguments (extract high/low, cast or extend width). Shift amounts
// are SI-literal operands, not Args.
type Op struct {
	Op       string   `json:"op"`
	Operands []string `json:"operands"`
	Args     []int    `json:"args,omitempty"`
}

// Batch is the top-level shape of a --config JSON file: a named list of
// operations to run in sequence.
type Batch struct {
	Ops []Op `json:"ops"`
}

// Load reads and decodes a Batch from a JSON file at path.
func Load(path string) (*Batch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: open %s", path)
	}
	defer file.Close()

	var b Batch
	if err := json.NewDecoder(file).Decode(&b); err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}
	return &b, nil
}

// Merge appends a single ad-hoc Op built from CLI flags onto a Batch
// loaded from --config, so flag-specified operations run after whatever
// the file already queued up.
func (b *Batch) Merge(op Op) {
	if op.Op == "" {
		return
	}
	b.Ops = append(b.Ops, op)
}
