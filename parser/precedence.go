/*
File    : gomix/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/gomix-lang/lexer"

// Operator precedence levels, ascending. Mirrors the precedence table
// the spec lays out: LOWEST < ASSIGN < LOGIC < EQUALS < LESSGREATER <
// SUM < PRODUCT < PREFIX < CALL < INDEX.
const (
	LOWEST      = iota + 1
	ASSIGN      // =
	LOGIC       // and, or
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / and implicit multiplication
	PREFIX      // -x, !x, not x
	CALL        // callee(...)
	INDEX       // arr[...]
)

// precedences looks up the precedence of a token kind when it appears
// as an infix operator. IDENT, TRUE and FALSE are registered here too
// — at PRODUCT precedence — implementing the implicit-multiplication
// juxtaposition described in the spec's design notes: `2x` parses as
// `2*x` because the parser treats an identifier or boolean literal
// appearing where an infix operator is expected as a synthesized `*`.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.LE:       LESSGREATER,
	lexer.GE:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.OR:       LOGIC,
	lexer.AND:      LOGIC,
	lexer.LPAREN:   CALL,
	lexer.ASSIGN:   ASSIGN,
	lexer.LBRACKET: INDEX,
	lexer.IDENT:    PRODUCT,
	lexer.TRUE:     PRODUCT,
	lexer.FALSE:    PRODUCT,
}
