package source

import (
	"testing"
)

func TestFileSet_ResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ts", []byte("let a = 1;\nvar b = 2;\nconst c = 3;"))

	tests := []struct {
		name  string
		off   uint32
		line  uint32
		col   uint32
	}{
		{"start of file", 0, 1, 1},
		{"middle of first line", 4, 1, 5},
		{"newline ends its line", 10, 1, 11},
		{"start of second line", 11, 2, 1},
		{"var keyword on second line", 11, 2, 1},
		{"start of third line", 22, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start.Line != tt.line || start.Col != tt.col {
				t.Errorf("Resolve(%d) = %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
			}
		})
	}
}

func TestFileSet_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ts", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFileSet_AddNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.ts", []byte("var x = 1;"))
	other := fs.AddVirtual("a.ts", []byte("let x = 1;"))

	if id == other {
		t.Fatalf("expected distinct ids for re-added path")
	}
	got, ok := fs.GetByPath("a.ts")
	if !ok {
		t.Fatalf("GetByPath failed")
	}
	if string(got.Content) != "let x = 1;" {
		t.Errorf("index should point at the latest version, got %q", got.Content)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Fatalf("expected change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("normalizeCRLF = %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain\n"))
	if changed {
		t.Errorf("unexpected change for input without CR")
	}
	if string(out) != "plain\n" {
		t.Errorf("normalizeCRLF = %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Errorf("removeBOM = %q, had=%v", out, had)
	}
	out, had = removeBOM([]byte("xy"))
	if had || string(out) != "xy" {
		t.Errorf("removeBOM(short) = %q, had=%v", out, had)
	}
}
