/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"github.com/dburkart/fern/pkg/common/parse"
)

type Node interface {
	Value() string
}

// Declaration, Statement and Expression are the three closed node sets of
// the grammar. The marker methods seal each set so dispatch over them is
// exhaustive.
type Declaration interface {
	Node
	declarationNode()
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Visitor interface {
	Visit(Node) Visitor
}

type (
	BaseNode struct {
		Token parse.Token
	}

	// CommentNode is a run of adjacent comment tokens merged into one
	// block, newline-joined. It can appear at the top level or inside a
	// function body.
	CommentNode struct {
		BaseNode
		Text string
	}

	FunctionNode struct {
		BaseNode
		Name string
		Body []Statement
	}

	ExpressionStatementNode struct {
		BaseNode
		Expression Expression
	}

	// VariableNode is a let binding. Expr is nil when the binding has no
	// initializer.
	VariableNode struct {
		BaseNode
		Name string
		Expr Expression
	}

	AssignmentNode struct {
		BaseNode
		Name string
		Expr Expression
	}

	BinaryOpNode struct {
		BaseNode
		Op    parse.Token
		Left  Expression
		Right Expression
	}

	IdentifierNode struct {
		BaseNode
	}

	NumberNode struct {
		BaseNode
	}

	StringNode struct {
		BaseNode
	}
)

func (*CommentNode) declarationNode()  {}
func (*FunctionNode) declarationNode() {}

func (*CommentNode) statementNode()             {}
func (*ExpressionStatementNode) statementNode() {}
func (*VariableNode) statementNode()            {}

func (*AssignmentNode) expressionNode() {}
func (*BinaryOpNode) expressionNode()   {}
func (*IdentifierNode) expressionNode() {}
func (*NumberNode) expressionNode()     {}
func (*StringNode) expressionNode()     {}

// -- BaseNode

func (b *BaseNode) Value() string {
	return b.Token.Lexeme
}

// -- CommentNode

func (c *CommentNode) Value() string {
	return c.Text
}

// -- FunctionNode

func (f *FunctionNode) Value() string {
	return f.Name
}

// -- VariableNode

func (v *VariableNode) Value() string {
	return v.Name
}

// -- AssignmentNode

func (a *AssignmentNode) Value() string {
	return a.Name
}

// -- BinaryOpNode

func (b *BinaryOpNode) Value() string {
	return b.Op.Lexeme
}
