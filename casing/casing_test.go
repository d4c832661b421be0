package casing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"get-user-by-id", []string{"get", "user", "by", "id"}},
		{"fooBar", []string{"foo", "bar"}},
		{"FooBar", []string{"foo", "bar"}},
		{"HTTPServer", []string{"http", "server"}},
		{"snake_case_name", []string{"snake", "case", "name"}},
		{"u8-list2", []string{"u8", "list2"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Words(tt.in)); diff != "" {
				t.Errorf("Words(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	tests := []struct {
		in                         string
		lower, upper, snake, kebab string
	}{
		{"foo-bar", "fooBar", "FooBar", "foo_bar", "foo-bar"},
		{"fooBar", "fooBar", "FooBar", "foo_bar", "foo-bar"},
		{"a", "a", "A", "a", "a"},
		{"read-via-stream", "readViaStream", "ReadViaStream", "read_via_stream", "read-via-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := LowerCamel(tt.in); got != tt.lower {
				t.Errorf("LowerCamel = %q, want %q", got, tt.lower)
			}
			if got := UpperCamel(tt.in); got != tt.upper {
				t.Errorf("UpperCamel = %q, want %q", got, tt.upper)
			}
			if got := Snake(tt.in); got != tt.snake {
				t.Errorf("Snake = %q, want %q", got, tt.snake)
			}
			if got := Kebab(tt.in); got != tt.kebab {
				t.Errorf("Kebab = %q, want %q", got, tt.kebab)
			}
		})
	}
}

func TestTSIdent(t *testing.T) {
	if got := TSIdent("default"); got != "default_" {
		t.Errorf("TSIdent(default) = %q", got)
	}
	if got := TSIdent("new-value"); got != "newValue" {
		t.Errorf("TSIdent(new-value) = %q", got)
	}
}

func TestTSParam(t *testing.T) {
	tests := map[string]string{
		"out":      "out_",
		"default":  "default_",
		"out-path": "outPath",
		"value":    "value",
	}
	for in, want := range tests {
		if got := TSParam(in); got != want {
			t.Errorf("TSParam(%q) = %q, want %q", in, got, want)
		}
	}
	if got := TSIdent("out"); got != "out" {
		t.Errorf("TSIdent(out) = %q, want out", got)
	}
}
