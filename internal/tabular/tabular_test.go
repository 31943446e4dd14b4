package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp csv: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	t.Run("reads header keyed rows", func(t *testing.T) {
		path := writeTempCSV(t, "Title,Year\nPaper One,2020\nPaper Two,2021\n")

		f, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if len(f.Headers) != 2 || f.Headers[0] != "Title" {
			t.Errorf("Headers = %v", f.Headers)
		}
		if len(f.Rows) != 2 {
			t.Fatalf("len(Rows) = %d, want 2", len(f.Rows))
		}
		if f.Rows[1]["Title"] != "Paper Two" || f.Rows[1]["Year"] != "2021" {
			t.Errorf("Rows[1] = %v", f.Rows[1])
		}
	})

	t.Run("strips utf8 bom from first header", func(t *testing.T) {
		path := writeTempCSV(t, "\ufeffTitle,Year\nPaper,2020\n")

		f, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if f.Headers[0] != "Title" {
			t.Errorf("Headers[0] = %q, want Title", f.Headers[0])
		}
		if f.Rows[0]["Title"] != "Paper" {
			t.Errorf("Rows[0] = %v", f.Rows[0])
		}
	})

	t.Run("short rows read missing cells as empty", func(t *testing.T) {
		path := writeTempCSV(t, "A,B,C\n1,2\n")

		f, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if f.Rows[0]["C"] != "" {
			t.Errorf("Rows[0][C] = %q, want empty", f.Rows[0]["C"])
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
			t.Error("ReadFile() on missing file returned nil error")
		}
	})
}

func TestRequireColumns(t *testing.T) {
	headers := []string{"Title", "Year", "DOI"}

	if err := RequireColumns(headers, []string{"Title", "DOI"}); err != nil {
		t.Errorf("RequireColumns() unexpected error: %v", err)
	}

	err := RequireColumns(headers, []string{"Title", "Abstract", "EID"})
	if err == nil {
		t.Fatal("RequireColumns() expected error for missing columns")
	}
	for _, want := range []string{"Abstract", "EID"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not name missing column %s", err, want)
		}
	}
	if strings.Contains(err.Error(), "Title") {
		t.Errorf("error %q names a present column", err)
	}
}
