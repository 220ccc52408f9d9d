/*
File    : gomix/eval/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/gomix-lang/env"
	"github.com/akashmaji946/gomix-lang/objects"
	"github.com/akashmaji946/gomix-lang/parser"
)

// Function is a user-defined closure: its parameter list and body come
// straight from the AST, and Env is the environment captured at the
// point the function literal was evaluated. It lives here rather than
// in objects because it references both parser.BlockStatement and
// env.Environment, which would otherwise import objects and create a
// cycle.
type Function struct {
	Params []*parser.Identifier
	Body   *parser.BlockStatement
	Env    *env.Environment
}

func (f *Function) Type() objects.Type { return objects.FunctionType }

func (f *Function) Inspect() string {
	var out strings.Builder
	params := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, p.Name)
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}
