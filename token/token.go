/*
File    : monkey/token/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

// Type represents the type of a lexical token in the Monkey language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element in the
// language, such as an operator, keyword, literal, or structural symbol.
type Type string

// Type Constants:
// These constants define all possible token types in the Monkey language.
// They are organized into logical groups for clarity and maintainability.
const (
	// Special Types
	EOF_TYPE     Type = "EOF"     // marks the end of the input stream
	INVALID_TYPE Type = "INVALID" // an unrecognized or malformed token

	// Arithmetic Operators
	PLUS_OP  Type = "+" // Addition operator
	MINUS_OP Type = "-" // Subtraction operator
	MUL_OP   Type = "*" // Multiplication operator
	DIV_OP   Type = "/" // Division operator

	// Logical/Comparison Operators
	GT_OP     Type = ">"  // Greater than
	LT_OP     Type = "<"  // Less than
	EQ_OP     Type = "==" // Equality comparison
	NE_OP     Type = "!=" // Not equal comparison
	ASSIGN_OP Type = "="  // Assignment operator
	NOT_OP    Type = "!"  // Logical NOT / prefix negation

	// Keywords
	FUNC_KEY   Type = "fn"     // Function literal keyword
	RETURN_KEY Type = "return" // Return statement keyword
	LET_KEY    Type = "let"    // Variable declaration keyword
	TRUE_KEY   Type = "true"   // Boolean true literal
	FALSE_KEY  Type = "false"  // Boolean false literal
	IF_KEY     Type = "if"     // Conditional if keyword
	ELSE_KEY   Type = "else"   // Conditional else keyword

	// Identifiers and literals
	IDENTIFIER_ID Type = "Identifier"    // user-defined name
	INT_LIT       Type = "IntLiteral"    // integer literal (e.g., 42, 10)
	STRING_LIT    Type = "StringLiteral" // string literal (e.g., "hello")

	// Structural Tokens
	LEFT_PAREN    Type = "(" // function calls, grouping
	RIGHT_PAREN   Type = ")"
	LEFT_BRACE    Type = "{" // block statements
	RIGHT_BRACE   Type = "}"
	LEFT_BRACKET  Type = "[" // array/index literals
	RIGHT_BRACKET Type = "]"

	// Delimiters
	COMMA_DELIM     Type = "," // separates parameters, array/hash elements
	SEMICOLON_DELIM Type = ";" // statement terminator
	COLON_DELIM     Type = ":" // separates hash keys from values
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their token
// types. It is used during lexical analysis to distinguish between
// keywords (reserved words with special meaning) and regular identifiers
// (user-defined names).
var KEYWORDS_MAP = map[string]Type{
	"fn":     FUNC_KEY,
	"return": RETURN_KEY,
	"let":    LET_KEY,
	"true":   TRUE_KEY,
	"false":  FALSE_KEY,
	"if":     IF_KEY,
	"else":   ELSE_KEY,
}

// Token represents a single lexical token in Monkey source code. It
// carries the token's type, its literal string representation, and
// metadata about its position in the source (line and column number),
// which the parser uses to annotate its error messages.
type Token struct {
	Type    Type   // the category of this token
	Literal string // the actual text from the source code
	Line    int    // line number in source file (1-indexed)
	Column  int    // column number in source file (1-indexed)
}

// NewToken creates a new Token with the specified type and literal value,
// without position metadata. Use NewTokenWithMetadata when position
// information is needed.
func NewToken(tokenType Type, literal string) Token {
	return Token{Type: tokenType, Literal: literal}
}

// NewTokenWithMetadata creates a new Token with full metadata including
// line/column position, as produced by the lexer during scanning.
func NewTokenWithMetadata(tokenType Type, literal string, line int, column int) Token {
	return Token{Type: tokenType, Literal: literal, Line: line, Column: column}
}

// LookupIdent determines the token type for an identifier string. It
// checks whether the identifier is a reserved keyword via KEYWORDS_MAP;
// if not, it is a user-defined identifier.
func LookupIdent(ident string) Type {
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	return IDENTIFIER_ID
}
