package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSuccess(t *testing.T) {
	path := writeTempBatch(t, `{"ops":[{"op":"add","operands":["<8>1[0x01, 0x02]","<8>1[0x03, 0x04]"]},{"op":"extract","operands":["<16>1[0x00, 0xff]"],"args":[7,0]}]}`)

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(b.Ops) != 2 {
		t.Fatalf("len(b.Ops) = %d, want 2", len(b.Ops))
	}
	if b.Ops[0].Op != "add" || len(b.Ops[0].Operands) != 2 {
		t.Errorf("b.Ops[0] = %+v, unexpected shape", b.Ops[0])
	}
	if b.Ops[1].Op != "extract" || len(b.Ops[1].Args) != 2 {
		t.Errorf("b.Ops[1] = %+v, unexpected shape", b.Ops[1])
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	if _, err := Load(missing); err == nil {
		t.Fatal("Load expected error for missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeTempBatch(t, `{"ops": not-json}`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load expected error for malformed JSON")
	}
}

func TestBatchMergeAppendsNonEmptyOp(t *testing.T) {
	b := &Batch{}
	b.Merge(Op{})
	if len(b.Ops) != 0 {
		t.Errorf("Merge(zero Op) appended, want no-op")
	}
	b.Merge(Op{Op: "neg", Operands: []string{"<8>1[0x00, 0x01]"}})
	if len(b.Ops) != 1 {
		t.Errorf("len(b.Ops) = %d, want 1", len(b.Ops))
	}
}

func writeTempBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp batch file: %v", err)
	}
	return path
}
