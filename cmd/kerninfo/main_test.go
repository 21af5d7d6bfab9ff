package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCapture(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestList(t *testing.T) {
	code, out, _ := runCapture(t, "-list")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, name := range []string{"nearest", "bilinear", "lanczos3"} {
		if !strings.Contains(out, name+"\n") {
			t.Fatalf("missing %q in %q", name, out)
		}
	}
}

func TestSummary(t *testing.T) {
	code, out, _ := runCapture(t, "-src", "100", "-dst", "50", "box", "lanczos3")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("want header, rule and 2 rows, got %q", out)
	}
	if !strings.HasPrefix(lines[2], "box") || !strings.HasPrefix(lines[3], "lanczos3") {
		t.Fatalf("unexpected rows %q", lines[2:])
	}
}

func TestTable(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"float", []string{"-table", "-src", "2", "-dst", "4", "bilinear"}, []string{"bilinear: 2 -> 4", "0.75000 0.25000", "0.25000 0.75000"}},
		{"fixed", []string{"-table", "-fixed", "14", "-src", "2", "-dst", "4", "bilinear"}, []string{"12288 4096", "4096 12288", "16384"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runCapture(t, tt.args...)
			if code != 0 {
				t.Fatalf("exit code %d", code)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Fatalf("missing %q in\n%s", w, out)
				}
			}
		})
	}
}

func TestExtensions(t *testing.T) {
	code, out, _ := runCapture(t, "-ext", "none")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out, "none") || !strings.Contains(out, "generic") {
		t.Fatalf("unexpected output %q", out)
	}

	code, out, _ = runCapture(t, "-ext", "all")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if got := strings.Count(strings.TrimSpace(out), "\n"); got != 4 {
		t.Fatalf("want header and 4 rows, got %q", out)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"unknown-ext", []string{"-ext", "mmx"}, 1, "unknown extension"},
		{"unknown-filter", []string{"gaussian"}, 1, "no matching filters"},
		{"bad-size", []string{"-src", "0"}, 2, "must be positive"},
		{"bad-fixed", []string{"-table", "-fixed", "31", "box"}, 2, "between 1 and 30"},
		{"bad-flag", []string{"-bogus"}, 2, "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCapture(t, tt.args...)
			if code != tt.code {
				t.Fatalf("exit code %d, want %d", code, tt.code)
			}
			if !strings.Contains(errOut, tt.msg) {
				t.Fatalf("stderr %q does not mention %q", errOut, tt.msg)
			}
		})
	}
}
