package wc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textutils/pkg/textio"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Counts
	}{
		{"empty", "", Counts{}},
		{"three lines", "hello world\nfoo bar\nbaz qux\n", Counts{Lines: 3, Words: 6, Bytes: 28, Chars: 28}},
		{"no trailing newline", "one two", Counts{Lines: 1, Words: 2, Bytes: 7, Chars: 7}},
		{"whitespace runs", "  a \t b\n\n  c  ", Counts{Lines: 3, Words: 3, Bytes: 14, Chars: 14}},
		{"multibyte", "héllo wörld\n", Counts{Lines: 1, Words: 2, Bytes: 14, Chars: 12}},
		{"unterminated second line", "one two\nthree", Counts{Lines: 2, Words: 3, Bytes: 13, Chars: 13}},
		{"only newline", "\n", Counts{Lines: 1, Words: 0, Bytes: 1, Chars: 1}},
		{"invalid utf8", "a\xffb\n", Counts{Lines: 1, Words: 1, Bytes: 4, Chars: 4}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Count(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Count() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Count() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCount_Additive(t *testing.T) {
	t.Parallel()

	whole := "The quick brown fox\njumps over\n\nthe lazy dög.\nLast line"
	lines := strings.SplitAfter(whole, "\n")
	want, err := Count(strings.NewReader(whole))
	if err != nil {
		t.Fatalf("Count() returned error: %v", err)
	}

	for cut := 0; cut <= len(lines); cut++ {
		head := strings.Join(lines[:cut], "")
		tail := strings.Join(lines[cut:], "")
		a, err := Count(strings.NewReader(head))
		if err != nil {
			t.Fatalf("Count(head) returned error: %v", err)
		}
		b, err := Count(strings.NewReader(tail))
		if err != nil {
			t.Fatalf("Count(tail) returned error: %v", err)
		}
		if got := a.Add(b); got != want {
			t.Errorf("split at line %d: %+v, want %+v", cut, got, want)
		}
	}
}

func TestConfig_Format(t *testing.T) {
	t.Parallel()

	c := Counts{Lines: 3, Words: 6, Bytes: 28, Chars: 27}
	tests := []struct {
		name string
		cfg  Config
		file string
		want string
	}{
		{"defaults", Config{}.withDefaults(), "a.txt", "       3       6      28 a.txt\n"},
		{"stdin drops name", Config{}.withDefaults(), "-", "       3       6      28\n"},
		{"lines only", Config{Lines: true}, "a.txt", "       3 a.txt\n"},
		{"words and chars", Config{Words: true, Chars: true}, "a.txt", "       6      27 a.txt\n"},
		{"order is fixed", Config{Chars: true, Lines: true}, "x", "       3      27 x\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.cfg.Format(c, tt.file); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	tally, err := Run(Config{}, strings.NewReader("a b\nc\n"), &stdout, zap.NewNop())
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := stdout.String(); got != "       2       3       6\n" {
		t.Errorf("output = %q", got)
	}
	if len(tally.Rows) != 1 || tally.Rows[0].Name != "-" {
		t.Errorf("rows = %+v, want single stdin row", tally.Rows)
	}
}

func TestRun_MultipleFilesTotal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file1 := filepath.Join(dir, "one.txt")
	file2 := filepath.Join(dir, "two.txt")
	if err := os.WriteFile(file1, []byte("a b c\n"), 0o644); err != nil {
		t.Fatalf("failed to create file1: %v", err)
	}
	if err := os.WriteFile(file2, []byte("d\ne\n"), 0o644); err != nil {
		t.Fatalf("failed to create file2: %v", err)
	}

	var stdout bytes.Buffer
	tally, err := Run(Config{Files: []string{file1, file2}, Lines: true, Words: true}, strings.NewReader(""), &stdout, zap.NewNop())
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	want := "       1       3 " + file1 + "\n" +
		"       2       2 " + file2 + "\n" +
		"       3       5 total\n"
	if got := stdout.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if tally.Total != (Counts{Lines: 3, Words: 5, Bytes: 10, Chars: 10}) {
		t.Errorf("total = %+v", tally.Total)
	}
}

func TestRun_MissingFileIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file1 := filepath.Join(dir, "one.txt")
	if err := os.WriteFile(file1, []byte("x\n"), 0o644); err != nil {
		t.Fatalf("failed to create file1: %v", err)
	}
	missing := filepath.Join(dir, "missing.txt")
	file3 := filepath.Join(dir, "three.txt")
	if err := os.WriteFile(file3, []byte("y\n"), 0o644); err != nil {
		t.Fatalf("failed to create file3: %v", err)
	}

	var stdout bytes.Buffer
	_, err := Run(Config{Files: []string{file1, missing, file3}, Lines: true}, strings.NewReader(""), &stdout, zap.NewNop())
	if textio.KindOf(err) != textio.OpenError {
		t.Fatalf("KindOf(%v) = %v, want %v", err, textio.KindOf(err), textio.OpenError)
	}
	if !strings.HasPrefix(err.Error(), "wcr: "+missing+": ") {
		t.Errorf("error = %q, want file name", err.Error())
	}

	got := stdout.String()
	if got != "       1 "+file1+"\n" {
		t.Errorf("output = %q, want only the first row", got)
	}
}

func TestRun_BytesAndCharsConflict(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	_, err := Run(Config{Bytes: true, Chars: true}, strings.NewReader("x"), &stdout, zap.NewNop())
	if textio.KindOf(err) != textio.ParseError {
		t.Errorf("KindOf(%v) = %v, want %v", err, textio.KindOf(err), textio.ParseError)
	}
}

func TestRun_LogsCounts(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	var stdout bytes.Buffer
	if _, err := Run(Config{Lines: true}, strings.NewReader("a\nb\n"), &stdout, zap.New(core)); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	entries := logs.FilterMessage("Counted input").All()
	if len(entries) != 1 {
		t.Fatalf("got %d records, want 1", len(entries))
	}
	if lines := entries[0].ContextMap()["lines"]; lines != int64(2) {
		t.Errorf("lines field = %v, want 2", lines)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRun_WriteFailure(t *testing.T) {
	t.Parallel()

	_, err := Run(Config{}, strings.NewReader("a b\n"), failWriter{}, zap.NewNop())
	if textio.KindOf(err) != textio.IOError {
		t.Errorf("KindOf(%v) = %v, want %v", err, textio.KindOf(err), textio.IOError)
	}
}

func TestRun_UnterminatedLastLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one two\nthree"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	var stdout bytes.Buffer
	if _, err := Run(Config{Files: []string{path}}, strings.NewReader(""), &stdout, zap.NewNop()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if want := "       2       3      13 " + path + "\n"; stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}
