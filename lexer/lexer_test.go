/*
File    : gomix/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "testing"

func TestNextToken_Punctuation(t *testing.T) {
	input := `=+(){}[],;:`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{ASSIGN, "="},
		{PLUS, "+"},
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{LBRACKET, "["},
		{RBRACKET, "]"},
		{COMMA, ","},
		{SEMICOLON, ";"},
		{COLON, ":"},
		{END, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `let five = 5;
let ten = 10.5;

fn add(x, y) {
  x + y;
}

let result = add(five, ten);
!-/ *5;
5 < 10 > 5;
5 <= 10 >= 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
{"foo": "bar"};
for (x in arr) { x }
while (true) { 1 }
true and false or not true
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "ten"}, {ASSIGN, "="}, {DOUBLE, "10.5"}, {SEMICOLON, ";"},
		{FUNCTION, "fn"}, {IDENT, "add"}, {LPAREN, "("}, {IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"},
		{LBRACE, "{"},
		{IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"}, {LPAREN, "("}, {IDENT, "five"}, {COMMA, ","}, {IDENT, "ten"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LE, "<="}, {INT, "10"}, {GE, ">="}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {ELSE, "else"}, {LBRACE, "{"},
		{RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{STRING, "foobar"},
		{STRING, "foo bar"},
		{LBRACKET, "["}, {INT, "1"}, {COMMA, ","}, {INT, "2"}, {RBRACKET, "]"}, {SEMICOLON, ";"},
		{LBRACE, "{"}, {STRING, "foo"}, {COLON, ":"}, {STRING, "bar"}, {RBRACE, "}"}, {SEMICOLON, ";"},
		{FOR, "for"}, {LPAREN, "("}, {IDENT, "x"}, {IN, "in"}, {IDENT, "arr"}, {RPAREN, ")"}, {LBRACE, "{"}, {IDENT, "x"}, {RBRACE, "}"},
		{WHILE, "while"}, {LPAREN, "("}, {TRUE, "true"}, {RPAREN, ")"}, {LBRACE, "{"}, {INT, "1"}, {RBRACE, "}"},
		{TRUE, "true"}, {AND, "and"}, {FALSE, "false"}, {OR, "or"}, {NOT, "not"}, {TRUE, "true"},
		{END, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal %q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_IllegalAndComments(t *testing.T) {
	input := "// a comment\n@ /* block\ncomment */ 5"
	l := New(input)

	tok := l.NextToken()
	if tok.Type != ILLEGAL || tok.Literal != "@" {
		t.Fatalf("expected ILLEGAL '@', got %q %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != INT || tok.Literal != "5" {
		t.Fatalf("expected INT '5', got %q %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != END {
		t.Fatalf("expected END, got %q", tok.Type)
	}
}

func TestConsumeTokens(t *testing.T) {
	l := New(`1 + 2;`)
	tokens := l.ConsumeTokens()

	expected := []TokenType{INT, PLUS, INT, SEMICOLON, END}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("tokens[%d]: expected %q, got %q", i, tt, tokens[i].Type)
		}
	}
	if tokens[len(tokens)-1].Type != END {
		t.Fatalf("expected final token to be END")
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != "unterminated" {
		t.Fatalf("expected STRING 'unterminated', got %q %q", tok.Type, tok.Literal)
	}
	if l.NextToken().Type != END {
		t.Fatalf("expected END after unterminated string")
	}
}
