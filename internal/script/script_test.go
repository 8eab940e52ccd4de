package script

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	got, err := Parse("FROM a\nCMD b c\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Instruction{
		{Name: "FROM", Args: []string{"a"}},
		{Name: "CMD", Args: []string{"b", "c"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("instructions = %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"only whitespace", "\n   \n\t\n"},
		{"only comments", "# one\n  # two\n\n"},
		{"first instruction not FROM", "RUN echo hi\nFROM a\n"},
		{"unbalanced quote", "FROM a\nLABEL \"unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.text); !errors.Is(err, ErrMalformedScript) {
				t.Fatalf("error = %v, want ErrMalformedScript", err)
			}
		})
	}
}

func TestParseFromCaseInsensitive(t *testing.T) {
	got, err := Parse("from alpine\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Name != "from" {
		t.Fatalf("name = %q, want %q (preserved as written)", got[0].Name, "from")
	}
}

func TestParseQuotedArguments(t *testing.T) {
	got, err := Parse(`FROM a
MAINTAINER "Jane Doe" <jane@example.com>
LABEL description="a b c"
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []string{"Jane Doe", "<jane@example.com>"}; !reflect.DeepEqual(got[1].Args, want) {
		t.Errorf("MAINTAINER args = %v, want %v", got[1].Args, want)
	}
	if want := []string{"description=a b c"}; !reflect.DeepEqual(got[2].Args, want) {
		t.Errorf("LABEL args = %v, want %v", got[2].Args, want)
	}
}

// Shell operator characters are ordinary word characters in instruction
// arguments; none of them may terminate or truncate the argument list.
func TestParseOperatorArguments(t *testing.T) {
	got, err := Parse(`FROM a
CMD tail -f /log | grep err > /out 2>&1
LABEL exp="1<2 && 3>2"
EXPOSE 80;443
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []string{"tail", "-f", "/log", "|", "grep", "err", ">", "/out", "2>&1"}; !reflect.DeepEqual(got[1].Args, want) {
		t.Errorf("CMD args = %v, want %v", got[1].Args, want)
	}
	if want := []string{"exp=1<2 && 3>2"}; !reflect.DeepEqual(got[2].Args, want) {
		t.Errorf("LABEL args = %v, want %v", got[2].Args, want)
	}
	if want := []string{"80;443"}; !reflect.DeepEqual(got[3].Args, want) {
		t.Errorf("EXPOSE args = %v, want %v", got[3].Args, want)
	}
}

func TestParseContinuation(t *testing.T) {
	got, err := Parse("FROM a\nLABEL a=b \\\n    c=d\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(instructions) = %d, want 2", len(got))
	}
	if want := []string{"a=b", "c=d"}; !reflect.DeepEqual(got[1].Args, want) {
		t.Fatalf("LABEL args = %v, want %v", got[1].Args, want)
	}
}

func TestParseCommentBetweenInstructions(t *testing.T) {
	got, err := Parse("FROM a\n# a comment\nCMD b\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(instructions) = %d, want 2", len(got))
	}
}

func TestParseNoArguments(t *testing.T) {
	got, err := Parse("FROM a\nCMD\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got[1].Args) != 0 {
		t.Fatalf("CMD args = %v, want none", got[1].Args)
	}
}
