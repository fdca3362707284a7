/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *CommentNode:
		// Skip, leaf node

	case *FunctionNode:
		for _, s := range n.Body {
			Walk(v, s)
		}

	case *ExpressionStatementNode:
		Walk(v, n.Expression)

	case *VariableNode:
		if n.Expr != nil {
			Walk(v, n.Expr)
		}

	case *AssignmentNode:
		Walk(v, n.Expr)

	case *BinaryOpNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *IdentifierNode, *NumberNode, *StringNode:
		// Skip, leaf nodes

	default:
		panic("Unexpected Node passed to Walk")
	}

	v.Visit(nil)
}
