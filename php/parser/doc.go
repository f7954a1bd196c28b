// Package parser provides an error-tolerant, full-fidelity parser for PHP
// source code.
//
// # Overview
//
// The parser turns any byte sequence into a concrete syntax tree whose
// leaves, concatenated in document order, reproduce the input exactly.
// Whitespace and comments are kept as leading trivia on the following
// token. Malformed input never produces an error value; the damage is
// recorded in the tree instead.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │   (CST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │ LexerState  │     │  Context    │
//	                    │  snapshots  │     │  Set        │
//	                    └─────────────┘     └─────────────┘
//
// The lexer is pulled one token at a time. Its cursor is a plain value,
// so the parser can peek ahead and rewind by copying it.
//
// # Tokens
//
//	type Token struct {
//	    Kind      TokenKind
//	    FullStart int // start of leading trivia
//	    Start     int // start of significant text
//	    Length    int // length of significant text
//	}
//
// # Script Sections
//
// A file is a sequence of script sections. Each section holds the inline
// text before an opening tag (as a single ScriptSectionPrependedText
// token), the tag itself, the statements that follow, and an optional
// closing tag. Text after a closing tag starts the next section.
//
// # Error Recovery
//
// Three kinds of error leaf appear in the tree:
//
//   - Missing: a zero-width token standing in for something required
//   - Skipped: an input token no active list could use
//   - Unsupported: a token in a class body that starts no member
//
// Lists recover by asking every enclosing list whether it wants the
// current token. If one does, the inner list ends and leaves the token
// for it:
//
//	class A {
//	    public function f() {
//	        $x
//	    public function g() {}
//	}
//
// Here the body of f ends at the second "public" with a Missing "}", and
// g becomes a sibling of f.
//
// # Example Usage
//
//	src := []byte("<?php echo $greeting;")
//	file := parser.Parse(src, parser.WithFile("hello.php"))
//	fmt.Print(parser.Dump(file, src))
//
// # Thread Safety
//
// A Parser is single use and not safe for concurrent use. Trees are not
// mutated after parsing and may be shared read-only.
package parser
