/*
File: monkey/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"
	"unicode"

	"github.com/akashmaji946/monkey-lang/token"
)

// isWhitespace checks if the given byte is a whitespace character.
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric reports whether curr is a letter or digit.
func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

// isNumeric reports whether curr is a decimal digit.
func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

// isAlpha reports whether curr is an alphabetic character.
func isAlpha(curr byte) bool {
	return unicode.IsLetter(rune(curr))
}

// isSpecial reports whether c is not alphanumeric, not whitespace, and
// not one of the operator/delimiter characters listed below (a list
// wider than Monkey's own token set: it also includes % & | ^ ~ and .).
func isSpecial(c byte) bool {
	return !isAlphanumeric(c) && !isWhitespace(c) && !strings.ContainsRune("=+-*/%&|^~!<>.,;:(){}[]\"", rune(c))
}

// readStringLiteral reads and tokenizes a string literal from the
// source. String literals are enclosed in double quotes and support
// the escape sequences \n, \t, \r, \\, and \".
func readStringLiteral(lex *Lexer) token.Token {
	lex.Advance() // consume opening quote

	var builder strings.Builder
	for lex.Current != '"' {
		if lex.Current == 0 {
			return token.NewTokenWithMetadata(token.INVALID_TYPE, "unterminated string", lex.Line, lex.Column)
		}
		if lex.Current == '\\' {
			lex.Advance()
			escaped, ok := escapeChar(lex.Current)
			if !ok {
				return token.NewTokenWithMetadata(token.INVALID_TYPE, "invalid escape sequence", lex.Line, lex.Column)
			}
			builder.WriteByte(escaped)
			lex.Advance()
			continue
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // consume closing quote
	return token.NewTokenWithMetadata(token.STRING_LIT, builder.String(), lex.Line, lex.Column)
}

// escapeChar converts an escape sequence character to its byte value.
func escapeChar(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

// readNumber reads and tokenizes an integer literal. Monkey has a
// single numeric type — 64-bit signed integers — so no decimal point,
// exponent, or hex/octal prefix handling is needed.
func readNumber(lex *Lexer) token.Token {
	start := lex.Position
	for isNumeric(lex.Current) {
		lex.Advance()
	}
	return token.NewTokenWithMetadata(token.INT_LIT, lex.Src[start:lex.Position], lex.Line, lex.Column)
}

// readIdentifier reads and tokenizes an identifier or keyword.
// Identifiers start with a letter or underscore and continue with
// letters, digits, or underscores.
func readIdentifier(lex *Lexer) token.Token {
	start := lex.Position
	lex.Advance()
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	return token.NewTokenWithMetadata(token.LookupIdent(literal), literal, lex.Line, lex.Column)
}
