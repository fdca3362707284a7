/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/dburkart/fern/pkg/common/parse"
	"github.com/dburkart/fern/pkg/lang/ast"
	"github.com/dburkart/fern/pkg/lang/scanner"
)

// Parse scans and parses a compilation unit in one step.
func Parse(source string) ([]ast.Declaration, error) {
	p := Parser{Input: source, Tokens: scanner.Scan(source)}
	return p.Parse()
}

// Parser consumes a scanned token sequence left to right, with bounded
// lookahead and no backtracking across declarations.
type Parser struct {
	Input  string
	Tokens []parse.Token

	pos int
}

// Parse builds the sequence of top-level declarations. All grammar
// violations are unrecoverable: the first one aborts the parse, and no
// partial declaration sequence is returned.
func (p *Parser) Parse() (program []ast.Declaration, err error) {
	defer func() {
		if e := recover(); e != nil {
			syntaxError, ok := e.(parse.SyntaxError)
			if !ok {
				panic(e)
			}
			if p.Input != "" {
				err = errors.New(syntaxError.FormatError(p.Input))
			} else {
				err = errors.New(syntaxError.Message)
			}
		}
	}()

	declarations := []ast.Declaration{}

	for {
		t := p.next()
		if t.Type == scanner.TOK_EOF {
			break
		}

		switch {
		case t.Type == scanner.TOK_COMMENT:
			declarations = append(declarations, p.comment(t))
		case t.Type == scanner.TOK_KEYWORD && t.Lexeme == "func":
			declarations = append(declarations, p.function(t))
		default:
			panic(parse.NewSyntaxError(t, fmt.Sprintf("Error: unexpected token '%s' at top level, expected a declaration", t.Lexeme)))
		}
	}

	return declarations, nil
}

// comment greedily absorbs every comment token immediately following the
// initial one, newline-joining their texts.
func (p *Parser) comment(initial parse.Token) *ast.CommentNode {
	text := initial.Lexeme

	for p.peek().Type == scanner.TOK_COMMENT {
		text += "\n" + p.next().Lexeme
	}

	return &ast.CommentNode{BaseNode: ast.BaseNode{Token: initial}, Text: text}
}

// function returns a FunctionNode
//
// Grammar:
//
//	function        = "func" identifier [ "(" ")" ] body
func (p *Parser) function(keyword parse.Token) *ast.FunctionNode {
	name := p.next()
	if name.Type != scanner.TOK_IDENTIFIER {
		panic(parse.NewSyntaxError(name, fmt.Sprintf("Error: unexpected token '%s', expected a function name", name.Lexeme)))
	}

	if p.peek().Type == scanner.TOK_PAREN_L {
		p.next()
		t := p.next()
		if t.Type != scanner.TOK_PAREN_R {
			panic(parse.NewSyntaxError(t, fmt.Sprintf("Error: unexpected token '%s', expected ')'", t.Lexeme)))
		}
	}

	return &ast.FunctionNode{
		BaseNode: ast.BaseNode{Token: keyword},
		Name:     name.Lexeme,
		Body:     p.body(),
	}
}

// body returns the statements between a balanced pair of curly brackets
//
// Grammar:
//
//	body            = "{" *statement "}"
func (p *Parser) body() []ast.Statement {
	t := p.next()
	if t.Type != scanner.TOK_BRACE_L {
		panic(parse.NewSyntaxError(t, fmt.Sprintf("Error: unexpected token '%s', expected '{'", t.Lexeme)))
	}

	statements := []ast.Statement{}

	for {
		t = p.peek()
		switch t.Type {
		case scanner.TOK_BRACE_R:
			p.next()
			return statements
		case scanner.TOK_EOF:
			panic(parse.NewSyntaxError(t, "Error: unexpected end of input, expected '}'"))
		default:
			statements = append(statements, p.statement())
		}
	}
}

// statement returns a CommentNode, VariableNode, or ExpressionStatementNode
//
// Grammar:
//
//	statement       = comment-block / variable / expression
func (p *Parser) statement() ast.Statement {
	t := p.peek()

	switch {
	case t.Type == scanner.TOK_COMMENT:
		p.next()
		return p.comment(t)
	case t.Type == scanner.TOK_KEYWORD && t.Lexeme == "let":
		p.next()
		return p.variable(t)
	}

	return &ast.ExpressionStatementNode{
		BaseNode:   ast.BaseNode{Token: t},
		Expression: p.expression(),
	}
}

// variable returns a VariableNode, with a value only when an initializer
// is present
//
// Grammar:
//
//	variable        = "let" identifier [ "=" expression ]
func (p *Parser) variable(keyword parse.Token) *ast.VariableNode {
	name := p.next()
	if name.Type != scanner.TOK_IDENTIFIER {
		panic(parse.NewSyntaxError(name, fmt.Sprintf("Error: unexpected token '%s', expected a variable name", name.Lexeme)))
	}

	v := &ast.VariableNode{BaseNode: ast.BaseNode{Token: keyword}, Name: name.Lexeme}

	if p.peek().Type == scanner.TOK_EQ {
		p.next()
		v.Expr = p.expression()
	}

	return v
}

// expression returns an AssignmentNode, or the result of equality
//
// Grammar:
//
//	expression      = ( identifier "=" expression ) / equality
func (p *Parser) expression() ast.Expression {
	if p.peek().Type == scanner.TOK_IDENTIFIER && p.peekAt(1).Type == scanner.TOK_EQ {
		name := p.next()
		p.next()

		return &ast.AssignmentNode{
			BaseNode: ast.BaseNode{Token: name},
			Name:     name.Lexeme,
			Expr:     p.expression(),
		}
	}

	return p.equality()
}

// equality returns a BinaryOpNode, or the result of term. Chains of "=="
// fold left.
//
// Grammar:
//
//	equality        = term *( "==" term )
func (p *Parser) equality() ast.Expression {
	left := p.term()

	for p.peek().Type == scanner.TOK_EQ_EQ {
		op := p.next()
		left = &ast.BinaryOpNode{
			BaseNode: ast.BaseNode{Token: op},
			Op:       op,
			Left:     left,
			Right:    p.term(),
		}
	}

	return left
}

// term returns a BinaryOpNode, or the result of primary. Additive
// operators bind tighter than equality and fold left.
//
// Grammar:
//
//	term            = primary *( ( "+" / "-" ) primary )
func (p *Parser) term() ast.Expression {
	left := p.primary()

	for p.peek().Type == scanner.TOK_PLUS || p.peek().Type == scanner.TOK_MINUS {
		op := p.next()
		left = &ast.BinaryOpNode{
			BaseNode: ast.BaseNode{Token: op},
			Op:       op,
			Left:     left,
			Right:    p.primary(),
		}
	}

	return left
}

// primary returns a leaf node for an expression
//
// Grammar:
//
//	primary         = identifier / number / string / "(" expression ")"
func (p *Parser) primary() ast.Expression {
	t := p.next()

	switch t.Type {
	case scanner.TOK_IDENTIFIER:
		return &ast.IdentifierNode{BaseNode: ast.BaseNode{Token: t}}
	case scanner.TOK_NUMBER:
		return &ast.NumberNode{BaseNode: ast.BaseNode{Token: t}}
	case scanner.TOK_STRING:
		return &ast.StringNode{BaseNode: ast.BaseNode{Token: t}}
	case scanner.TOK_PAREN_L:
		expression := p.expression()

		t = p.next()
		if t.Type != scanner.TOK_PAREN_R {
			panic(parse.NewSyntaxError(t, fmt.Sprintf("Error: unexpected token '%s', expected ')'", t.Lexeme)))
		}

		return expression
	default:
		panic(parse.NewSyntaxError(t, fmt.Sprintf("Error: unexpected token '%s', expected an expression", t.Lexeme)))
	}
}

// next consumes and returns the next token, synthesizing an end-of-input
// token past the end of the sequence.
func (p *Parser) next() parse.Token {
	t := p.peek()
	if t.Type != scanner.TOK_EOF {
		p.pos++
	}
	return t
}

func (p *Parser) peek() parse.Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(n int) parse.Token {
	if p.pos+n >= len(p.Tokens) {
		end := 0
		if len(p.Tokens) > 0 {
			end = p.Tokens[len(p.Tokens)-1].Location.End
		}
		return parse.Token{
			Type:     scanner.TOK_EOF,
			Lexeme:   "end of input",
			Location: parse.Location{Start: end, End: end},
		}
	}
	return p.Tokens[p.pos+n]
}
