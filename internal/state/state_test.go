package state

import (
	"os"
	"path/filepath"
	"testing"
)

type testDoc struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestWriteReadRoundTrip(t *testing.T) {
	root := t.TempDir()
	path := Path(root, "doc.json")

	want := testDoc{Name: "hello", Items: []string{"a", "b"}}
	if err := WriteJSON(path, want); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got testDoc
	ok, err := ReadJSON(path, &got)
	if err != nil || !ok {
		t.Fatalf("ReadJSON ok=%v err=%v", ok, err)
	}
	if got.Name != want.Name || len(got.Items) != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestWriteJSON_PrettyPrinted(t *testing.T) {
	root := t.TempDir()
	path := Path(root, "doc.json")
	if err := WriteJSON(path, testDoc{Name: "x"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data[:1]) != "{" || !containsIndent(data) {
		t.Errorf("document not pretty-printed: %q", data)
	}
}

func containsIndent(data []byte) bool {
	for i := 0; i+2 < len(data); i++ {
		if data[i] == '\n' && data[i+1] == ' ' && data[i+2] == ' ' {
			return true
		}
	}
	return false
}

func TestReadJSON_MissingFile(t *testing.T) {
	var got testDoc
	ok, err := ReadJSON(filepath.Join(t.TempDir(), "nope.json"), &got)
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if ok {
		t.Error("missing file reported as existing")
	}
}

func TestReadJSON_CorruptFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	var got testDoc
	ok, err := ReadJSON(path, &got)
	if err != nil || ok {
		t.Errorf("corrupt file should read as not-exists, ok=%v err=%v", ok, err)
	}
}

func TestRemove_MissingIsNoop(t *testing.T) {
	if err := Remove(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Errorf("Remove missing file: %v", err)
	}
}
