/*
File    : monkey/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/monkey-lang/token"
)

type tokenCase struct {
	Input          string
	ExpectedTokens []token.Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `five = 5; ten = 10;`,
			ExpectedTokens: []token.Token{
				token.NewToken(token.IDENTIFIER_ID, "five"),
				token.NewToken(token.ASSIGN_OP, "="),
				token.NewToken(token.INT_LIT, "5"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
				token.NewToken(token.IDENTIFIER_ID, "ten"),
				token.NewToken(token.ASSIGN_OP, "="),
				token.NewToken(token.INT_LIT, "10"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `let add = fn(x, y) { x + y; };`,
			ExpectedTokens: []token.Token{
				token.NewToken(token.LET_KEY, "let"),
				token.NewToken(token.IDENTIFIER_ID, "add"),
				token.NewToken(token.ASSIGN_OP, "="),
				token.NewToken(token.FUNC_KEY, "fn"),
				token.NewToken(token.LEFT_PAREN, "("),
				token.NewToken(token.IDENTIFIER_ID, "x"),
				token.NewToken(token.COMMA_DELIM, ","),
				token.NewToken(token.IDENTIFIER_ID, "y"),
				token.NewToken(token.RIGHT_PAREN, ")"),
				token.NewToken(token.LEFT_BRACE, "{"),
				token.NewToken(token.IDENTIFIER_ID, "x"),
				token.NewToken(token.PLUS_OP, "+"),
				token.NewToken(token.IDENTIFIER_ID, "y"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
				token.NewToken(token.RIGHT_BRACE, "}"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `!-/ *5; 5 < 10 > 5;`,
			ExpectedTokens: []token.Token{
				token.NewToken(token.NOT_OP, "!"),
				token.NewToken(token.MINUS_OP, "-"),
				token.NewToken(token.DIV_OP, "/"),
				token.NewToken(token.MUL_OP, "*"),
				token.NewToken(token.INT_LIT, "5"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
				token.NewToken(token.INT_LIT, "5"),
				token.NewToken(token.LT_OP, "<"),
				token.NewToken(token.INT_LIT, "10"),
				token.NewToken(token.GT_OP, ">"),
				token.NewToken(token.INT_LIT, "5"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `if (5 < 10) { return true; } else { return false; }`,
			ExpectedTokens: []token.Token{
				token.NewToken(token.IF_KEY, "if"),
				token.NewToken(token.LEFT_PAREN, "("),
				token.NewToken(token.INT_LIT, "5"),
				token.NewToken(token.LT_OP, "<"),
				token.NewToken(token.INT_LIT, "10"),
				token.NewToken(token.RIGHT_PAREN, ")"),
				token.NewToken(token.LEFT_BRACE, "{"),
				token.NewToken(token.RETURN_KEY, "return"),
				token.NewToken(token.TRUE_KEY, "true"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
				token.NewToken(token.RIGHT_BRACE, "}"),
				token.NewToken(token.ELSE_KEY, "else"),
				token.NewToken(token.LEFT_BRACE, "{"),
				token.NewToken(token.RETURN_KEY, "return"),
				token.NewToken(token.FALSE_KEY, "false"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
				token.NewToken(token.RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `10 == 10; 10 != 9;`,
			ExpectedTokens: []token.Token{
				token.NewToken(token.INT_LIT, "10"),
				token.NewToken(token.EQ_OP, "=="),
				token.NewToken(token.INT_LIT, "10"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
				token.NewToken(token.INT_LIT, "10"),
				token.NewToken(token.NE_OP, "!="),
				token.NewToken(token.INT_LIT, "9"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `"foobar" "foo bar"`,
			ExpectedTokens: []token.Token{
				token.NewToken(token.STRING_LIT, "foobar"),
				token.NewToken(token.STRING_LIT, "foo bar"),
			},
		},
		{
			Input: `[1, 2]; {"foo": "bar"}`,
			ExpectedTokens: []token.Token{
				token.NewToken(token.LEFT_BRACKET, "["),
				token.NewToken(token.INT_LIT, "1"),
				token.NewToken(token.COMMA_DELIM, ","),
				token.NewToken(token.INT_LIT, "2"),
				token.NewToken(token.RIGHT_BRACKET, "]"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
				token.NewToken(token.LEFT_BRACE, "{"),
				token.NewToken(token.STRING_LIT, "foo"),
				token.NewToken(token.COLON_DELIM, ":"),
				token.NewToken(token.STRING_LIT, "bar"),
				token.NewToken(token.RIGHT_BRACE, "}"),
			},
		},
		{
			// comments are treated as whitespace
			Input: "// a leading comment\nlet x = 1; /* trailing\nblock */ let y = 2;",
			ExpectedTokens: []token.Token{
				token.NewToken(token.LET_KEY, "let"),
				token.NewToken(token.IDENTIFIER_ID, "x"),
				token.NewToken(token.ASSIGN_OP, "="),
				token.NewToken(token.INT_LIT, "1"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
				token.NewToken(token.LET_KEY, "let"),
				token.NewToken(token.IDENTIFIER_ID, "y"),
				token.NewToken(token.ASSIGN_OP, "="),
				token.NewToken(token.INT_LIT, "2"),
				token.NewToken(token.SEMICOLON_DELIM, ";"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, tok := range test.ExpectedTokens {
			assert.Equal(t, tok.Type, gotTokens[i].Type)
			assert.Equal(t, tok.Literal, gotTokens[i].Literal)
		}
	}
}
