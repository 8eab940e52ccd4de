package paths

import (
	"errors"
	"testing"
)

var cleanCases = []struct {
	in   string
	want string
}{
	{"", "."},
	{".", "."},
	{"..", ".."},
	{"../..", "../.."},
	{"../../abc", "../../abc"},
	{"abc", "abc"},
	{"abc/def", "abc/def"},
	{"abc/", "abc"},
	{"abc/def/", "abc/def"},
	{"./", "."},
	{"../", ".."},
	{"/", "/"},
	{"/abc", "/abc"},
	{"/abc/", "/abc"},
	{"//abc", "/abc"},
	{"///abc", "/abc"},
	{"//abc//", "/abc"},
	{"abc//def//ghi", "abc/def/ghi"},
	{"abc/./def", "abc/def"},
	{"/./abc/def", "/abc/def"},
	{"abc/.", "abc"},
	{"a/./b/../c", "a/c"},
	{"abc/def/ghi/../jkl", "abc/def/jkl"},
	{"abc/def/../ghi/../jkl", "abc/jkl"},
	{"abc/def/..", "abc"},
	{"abc/def/../..", "."},
	{"/abc/def/../..", "/"},
	{"abc/def/../../..", ".."},
	{"/abc/def/../../..", "/"},
	{"abc/def/../../../ghi/jkl/../../../mno", "../../mno"},
	{"/../abc", "/abc"},
	{"abc/./../def", "def"},
	{"abc//./../def", "def"},
	{"abc/../../././../def", "../../def"},
}

func TestClean(t *testing.T) {
	for _, tt := range cleanCases {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	for _, tt := range cleanCases {
		once := Clean(tt.in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean(Clean(%q)) = %q, want %q", tt.in, twice, once)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		root      string
		candidate string
		want      string
		wantErr   bool
	}{
		{
			name:      "relative file",
			root:      "/ctx",
			candidate: "Dockerfile",
			want:      "/ctx/Dockerfile",
		},
		{
			name:      "dot segments collapse inside root",
			root:      "/ctx",
			candidate: "a/./b/../c",
			want:      "/ctx/a/c",
		},
		{
			name:      "absolute candidate is re-rooted",
			root:      "/ctx",
			candidate: "/etc/passwd",
			want:      "/ctx/etc/passwd",
		},
		{
			name:      "root itself",
			root:      "/ctx",
			candidate: ".",
			want:      "/ctx",
		},
		{
			name:      "unclean root",
			root:      "/ctx//sub/",
			candidate: "f",
			want:      "/ctx/sub/f",
		},
		{
			name:      "relative dot root",
			root:      ".",
			candidate: "a/b",
			want:      "a/b",
		},
		{
			name:      "relative dot root escape",
			root:      ".",
			candidate: "../f",
			wantErr:   true,
		},
		{
			name:      "parent traversal escapes",
			root:      "/ctx",
			candidate: "../../etc/passwd",
			wantErr:   true,
		},
		{
			name:      "single parent escapes",
			root:      "/ctx",
			candidate: "..",
			wantErr:   true,
		},
		{
			name:      "sibling prefix does not count as inside",
			root:      "/ctx",
			candidate: "../ctx-evil/f",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.root, tt.candidate)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q, %q) = %q, want error", tt.root, tt.candidate, got)
				}
				if !errors.Is(err, ErrEscapesRoot) {
					t.Fatalf("error = %v, want ErrEscapesRoot", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.root, tt.candidate, got, tt.want)
			}
		})
	}
}
