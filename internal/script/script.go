package script

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// Raised when a script contains no instructions, does not start with
// FROM, or carries an argument list that cannot be lexed.
var ErrMalformedScript = errors.New("malformed build script")

// The instruction every script must start with.
const firstInstruction = "FROM"

// One parsed build step. Instructions are values: produced once by
// [Parse] and never mutated.
type Instruction struct {
	Name string   // Instruction name as written (e.g. "FROM", "CMD"). Matched case-insensitively.
	Args []string // Shell-word-split arguments, in order.
}

// Parses raw script text into an ordered instruction sequence.
//
// Full-line comments (first non-blank character "#") are dropped, escaped
// newlines join physical lines into one logical line, and blank logical
// lines are skipped. The first whitespace run of a logical line separates
// the instruction name from its arguments; the remainder is split with
// shell quoting rules.
func Parse(text string) ([]Instruction, error) {
	var instructions []Instruction

	for _, line := range logicalLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, rest := splitName(line)

		args, err := splitWords(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedScript, name, err)
		}

		instructions = append(instructions, Instruction{Name: name, Args: args})
	}

	if len(instructions) == 0 {
		return nil, fmt.Errorf("%w: script contains no instructions", ErrMalformedScript)
	}

	if !strings.EqualFold(instructions[0].Name, firstInstruction) {
		return nil, fmt.Errorf("%w: script must start with %s, got %s",
			ErrMalformedScript, firstInstruction, instructions[0].Name)
	}

	return instructions, nil
}

// The shellwords lexer stops at unquoted shell operator characters and
// reports everything after them as an unparsed remainder, which would
// silently truncate arguments like "<jane@example.com>". Instruction
// arguments carry no operator semantics, so operators are masked with
// control runes around lexing and restored in the split words.
var (
	maskOperators   = strings.NewReplacer("<", "\x01", ">", "\x02", ";", "\x03", "&", "\x04", "|", "\x05")
	unmaskOperators = strings.NewReplacer("\x01", "<", "\x02", ">", "\x03", ";", "\x04", "&", "\x05", "|")
)

// Splits an argument string into words with shell quoting rules, keeping
// shell operator characters as ordinary word characters.
func splitWords(rest string) ([]string, error) {
	words, err := shellwords.Parse(maskOperators.Replace(rest))
	if err != nil {
		return nil, err
	}
	for i, word := range words {
		words[i] = unmaskOperators.Replace(word)
	}
	return words, nil
}

// Splits raw text into logical lines.
//
// Comment lines are blanked before continuations are joined, so a comment
// between a continuation and its tail still terminates the logical line.
func logicalLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			lines[i] = ""
		}
	}

	joined := strings.ReplaceAll(strings.Join(lines, "\n"), "\\\n", " ")
	return strings.Split(joined, "\n")
}

// Splits a non-blank logical line into the instruction name and the raw
// remainder on the first run of whitespace.
func splitName(line string) (name, rest string) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx:])
}
