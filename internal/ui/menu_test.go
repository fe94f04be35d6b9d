package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

func TestNeedsJSONExt(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"drawing", true},
		{"drawing.json", false},
		{"DRAWING.JSON", false},
		{"drawing.txt", true},
		{"drawing.json.bak", true},
	}
	for _, tc := range tests {
		if got := needsJSONExt(tc.name); got != tc.want {
			t.Errorf("needsJSONExt(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

type nopWriteCloser struct {
	uri fyne.URI
}

func (n nopWriteCloser) Write(p []byte) (int, error) { return len(p), nil }
func (n nopWriteCloser) Close() error                { return nil }
func (n nopWriteCloser) URI() fyne.URI               { return n.uri }

func TestWithJSONExtKeepsSuffixedTarget(t *testing.T) {
	in := nopWriteCloser{uri: storage.NewFileURI("/tmp/doc.json")}
	out, err := withJSONExt(in)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Error("suffixed target should pass through unchanged")
	}
}
