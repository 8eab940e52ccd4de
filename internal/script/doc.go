// Parses build scripts into ordered instruction sequences.
//
// A script is plain text in the Dockerfile style: one instruction per
// logical line, full-line comments starting with "#", and backslash
// continuations joining physical lines. Each logical line splits into an
// instruction name and shell-word-split arguments, so arguments may carry
// quoted whitespace. Parsing is pure; validation rejects scripts with no
// instructions and scripts whose first instruction is not FROM, before
// any build side effect can occur.
package script
