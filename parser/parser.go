/*
File    : monkey/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the Monkey programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (ast.Program). It handles:
  - Expressions (prefix, infix, literals, identifiers, calls, indexing)
  - Statements (let, return, expression, block)
  - Function literals and calls
  - Array and hash literals
  - Operator precedence and associativity

The parser collects errors instead of panicking, so a single Parse call
can report every syntax error found, not just the first. It produces
only an AST — it does not evaluate anything; that is the evaluator's
job.
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/lexer"
	"github.com/akashmaji946/monkey-lang/token"
)

// Precedence levels, lowest to highest, following the classic Monkey
// ladder: LOWEST < EQUALS < LESSGREATER < SUM < PRODUCT < PREFIX < CALL < INDEX.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // > <
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

var precedences = map[token.Type]int{
	token.EQ_OP:        EQUALS,
	token.NE_OP:        EQUALS,
	token.LT_OP:        LESSGREATER,
	token.GT_OP:        LESSGREATER,
	token.PLUS_OP:      SUM,
	token.MINUS_OP:     SUM,
	token.DIV_OP:       PRODUCT,
	token.MUL_OP:       PRODUCT,
	token.LEFT_PAREN:   CALL,
	token.LEFT_BRACKET: INDEX,
	token.ASSIGN_OP:    CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the parsing state needed to turn a token stream into
// an AST. It maintains two-token lookahead (CurrToken/NextToken), and
// a Pratt-style registration map per token type, the way Parser.UnaryFuncs
// and Parser.BinaryFuncs work in go-mix's parser.
type Parser struct {
	Lex       lexer.Lexer
	CurrToken token.Token
	NextToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	// Errors collects parsing errors instead of panicking, so a single
	// Parse call can surface every syntax problem found.
	Errors []string
}

// NewParser creates and initializes a new Parser instance for src.
// The parser is ready to use immediately: call Parse to obtain the
// program AST.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex:    lexer.NewLexer(src),
		Errors: make([]string, 0),
	}
	par.init()
	return par
}

// init registers the prefix/infix parse functions for every supported
// token type and primes the two-token lookahead.
func (par *Parser) init() {
	par.prefixParseFns = make(map[token.Type]prefixParseFn)
	par.infixParseFns = make(map[token.Type]infixParseFn)

	par.registerPrefix(token.IDENTIFIER_ID, par.parseIdentifier)
	par.registerPrefix(token.INT_LIT, par.parseIntegerLiteral)
	par.registerPrefix(token.STRING_LIT, par.parseStringLiteral)
	par.registerPrefix(token.TRUE_KEY, par.parseBoolean)
	par.registerPrefix(token.FALSE_KEY, par.parseBoolean)
	par.registerPrefix(token.NOT_OP, par.parsePrefixExpression)
	par.registerPrefix(token.MINUS_OP, par.parsePrefixExpression)
	par.registerPrefix(token.LEFT_PAREN, par.parseGroupedExpression)
	par.registerPrefix(token.IF_KEY, par.parseIfExpression)
	par.registerPrefix(token.FUNC_KEY, par.parseFunctionLiteral)
	par.registerPrefix(token.LEFT_BRACKET, par.parseArrayLiteral)
	par.registerPrefix(token.LEFT_BRACE, par.parseHashLiteral)

	par.registerInfix(token.PLUS_OP, par.parseInfixExpression)
	par.registerInfix(token.MINUS_OP, par.parseInfixExpression)
	par.registerInfix(token.DIV_OP, par.parseInfixExpression)
	par.registerInfix(token.MUL_OP, par.parseInfixExpression)
	par.registerInfix(token.EQ_OP, par.parseInfixExpression)
	par.registerInfix(token.NE_OP, par.parseInfixExpression)
	par.registerInfix(token.LT_OP, par.parseInfixExpression)
	par.registerInfix(token.GT_OP, par.parseInfixExpression)
	par.registerInfix(token.LEFT_PAREN, par.parseCallExpression)
	par.registerInfix(token.LEFT_BRACKET, par.parseIndexExpression)
	par.registerInfix(token.ASSIGN_OP, par.parseAssignExpression)

	par.advance()
	par.advance()
}

func (par *Parser) registerPrefix(t token.Type, fn prefixParseFn) {
	par.prefixParseFns[t] = fn
}

func (par *Parser) registerInfix(t token.Type, fn infixParseFn) {
	par.infixParseFns[t] = fn
}

// advance implements the two-token lookahead: CurrToken becomes
// NextToken, and NextToken is pulled from the lexer.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

func (par *Parser) currTokenIs(t token.Type) bool { return par.CurrToken.Type == t }
func (par *Parser) nextTokenIs(t token.Type) bool { return par.NextToken.Type == t }

// expectAdvance checks if NextToken matches expected; if so it
// advances and returns true, otherwise it records an error and
// returns false without advancing.
func (par *Parser) expectAdvance(expected token.Type) bool {
	if !par.nextTokenIs(expected) {
		par.peekError(expected)
		return false
	}
	par.advance()
	return true
}

func (par *Parser) peekError(expected token.Type) {
	msg := fmt.Sprintf("[%d:%d] PARSER ERROR: expected %s, got %s",
		par.NextToken.Line, par.NextToken.Column, expected, par.NextToken.Type)
	par.addError(msg)
}

func (par *Parser) noPrefixParseFnError(t token.Type) {
	msg := fmt.Sprintf("[%d:%d] PARSER ERROR: no prefix parse function for %s found",
		par.CurrToken.Line, par.CurrToken.Column, t)
	par.addError(msg)
}

func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether the parser has collected any errors.
func (par *Parser) HasErrors() bool { return len(par.Errors) > 0 }

// GetErrors returns every error collected during parsing, in the
// order encountered.
func (par *Parser) GetErrors() []string { return par.Errors }

func (par *Parser) peekPrecedence() int {
	if p, ok := precedences[par.NextToken.Type]; ok {
		return p
	}
	return LOWEST
}

func (par *Parser) currPrecedence() int {
	if p, ok := precedences[par.CurrToken.Type]; ok {
		return p
	}
	return LOWEST
}

// Parse is the main entry point: it parses the entire token stream
// into an ast.Program. It never evaluates anything — that decoupling
// is deliberate, so a REPL or test can inspect/print the AST before
// any Eval call runs.
func (par *Parser) Parse() *ast.Program {
	program := &ast.Program{Statements: make([]ast.Statement, 0)}

	for !par.currTokenIs(token.EOF_TYPE) {
		stmt := par.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		par.advance()
	}

	return program
}

func (par *Parser) parseStatement() ast.Statement {
	switch par.CurrToken.Type {
	case token.LET_KEY:
		return par.parseLetStatement()
	case token.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

func (par *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: par.CurrToken}

	if !par.expectAdvance(token.IDENTIFIER_ID) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal}

	if !par.expectAdvance(token.ASSIGN_OP) {
		return nil
	}
	par.advance()

	stmt.Value = par.parseExpression(LOWEST)
	if fl, ok := stmt.Value.(*ast.FunctionLiteral); ok {
		fl.Name = stmt.Name.Value
	}

	if par.nextTokenIs(token.SEMICOLON_DELIM) {
		par.advance()
	}
	return stmt
}

func (par *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: par.CurrToken}
	par.advance()

	stmt.ReturnValue = par.parseExpression(LOWEST)

	if par.nextTokenIs(token.SEMICOLON_DELIM) {
		par.advance()
	}
	return stmt
}

func (par *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: par.CurrToken}
	stmt.Expression = par.parseExpression(LOWEST)

	if par.nextTokenIs(token.SEMICOLON_DELIM) {
		par.advance()
	}
	return stmt
}

func (par *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: par.CurrToken, Statements: make([]ast.Statement, 0)}
	par.advance()

	for !par.currTokenIs(token.RIGHT_BRACE) && !par.currTokenIs(token.EOF_TYPE) {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}
	return block
}

func (par *Parser) parseExpression(precedence int) ast.Expression {
	prefix := par.prefixParseFns[par.CurrToken.Type]
	if prefix == nil {
		par.noPrefixParseFnError(par.CurrToken.Type)
		return nil
	}
	leftExp := prefix()

	for !par.nextTokenIs(token.SEMICOLON_DELIM) && precedence < par.peekPrecedence() {
		infix := par.infixParseFns[par.NextToken.Type]
		if infix == nil {
			return leftExp
		}
		par.advance()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (par *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

func (par *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: par.CurrToken}

	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: could not parse %q as integer",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal)
		par.addError(msg)
		return nil
	}
	lit.Value = value
	return lit
}

func (par *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

func (par *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: par.CurrToken, Value: par.currTokenIs(token.TRUE_KEY)}
}

func (par *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: par.CurrToken, Operator: par.CurrToken.Literal}
	par.advance()
	expr.Right = par.parseExpression(PREFIX)
	return expr
}

func (par *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: par.CurrToken, Operator: par.CurrToken.Literal, Left: left}
	precedence := par.currPrecedence()
	par.advance()
	expr.Right = par.parseExpression(precedence)
	return expr
}

func (par *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: left-hand side of assignment must be an identifier",
			par.CurrToken.Line, par.CurrToken.Column)
		par.addError(msg)
		return nil
	}
	expr := &ast.AssignExpression{Token: par.CurrToken, Name: ident}
	par.advance()
	expr.Value = par.parseExpression(LOWEST)
	return expr
}

func (par *Parser) parseGroupedExpression() ast.Expression {
	par.advance()
	expr := par.parseExpression(LOWEST)
	if !par.expectAdvance(token.RIGHT_PAREN) {
		return nil
	}
	return expr
}

func (par *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: par.CurrToken}

	if !par.expectAdvance(token.LEFT_PAREN) {
		return nil
	}
	par.advance()
	expr.Condition = par.parseExpression(LOWEST)

	if !par.expectAdvance(token.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(token.LEFT_BRACE) {
		return nil
	}
	expr.Consequence = par.parseBlockStatement()

	if par.nextTokenIs(token.ELSE_KEY) {
		par.advance()
		if !par.expectAdvance(token.LEFT_BRACE) {
			return nil
		}
		expr.Alternative = par.parseBlockStatement()
	}

	return expr
}

func (par *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: par.CurrToken}

	if !par.expectAdvance(token.LEFT_PAREN) {
		return nil
	}
	lit.Parameters = par.parseFunctionParameters()

	if !par.expectAdvance(token.LEFT_BRACE) {
		return nil
	}
	lit.Body = par.parseBlockStatement()

	return lit
}

func (par *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := make([]*ast.Identifier, 0)

	if par.nextTokenIs(token.RIGHT_PAREN) {
		par.advance()
		return identifiers
	}

	par.advance()
	identifiers = append(identifiers, &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal})

	for par.nextTokenIs(token.COMMA_DELIM) {
		par.advance()
		par.advance()
		identifiers = append(identifiers, &ast.Identifier{Token: par.CurrToken, Value: par.CurrToken.Literal})
	}

	if !par.expectAdvance(token.RIGHT_PAREN) {
		return nil
	}
	return identifiers
}

func (par *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: par.CurrToken, Function: function}
	expr.Arguments = par.parseExpressionList(token.RIGHT_PAREN)
	return expr
}

func (par *Parser) parseArrayLiteral() ast.Expression {
	array := &ast.ArrayLiteral{Token: par.CurrToken}
	array.Elements = par.parseExpressionList(token.RIGHT_BRACKET)
	return array
}

func (par *Parser) parseExpressionList(end token.Type) []ast.Expression {
	list := make([]ast.Expression, 0)

	if par.nextTokenIs(end) {
		par.advance()
		return list
	}

	par.advance()
	list = append(list, par.parseExpression(LOWEST))

	for par.nextTokenIs(token.COMMA_DELIM) {
		par.advance()
		par.advance()
		list = append(list, par.parseExpression(LOWEST))
	}

	if !par.expectAdvance(end) {
		return nil
	}
	return list
}

func (par *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: par.CurrToken, Left: left}

	par.advance()
	expr.Index = par.parseExpression(LOWEST)

	if !par.expectAdvance(token.RIGHT_BRACKET) {
		return nil
	}
	return expr
}

func (par *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: par.CurrToken, Pairs: make([]ast.HashPair, 0)}

	for !par.nextTokenIs(token.RIGHT_BRACE) {
		par.advance()
		key := par.parseExpression(LOWEST)

		if !par.expectAdvance(token.COLON_DELIM) {
			return nil
		}
		par.advance()
		value := par.parseExpression(LOWEST)

		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if !par.nextTokenIs(token.RIGHT_BRACE) && !par.expectAdvance(token.COMMA_DELIM) {
			return nil
		}
	}

	if !par.expectAdvance(token.RIGHT_BRACE) {
		return nil
	}
	return hash
}
