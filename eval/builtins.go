/*
File    : monkey/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/monkey-lang/object"
)

// builtins is Monkey's fixed builtin-function table: len, first
// (aliased as head), last, rest (aliased as tail), and push. The sixth
// builtin, puts, is not in this table: it writes to an evaluator's
// writer, so each Evaluator binds its own (see bindPutsBuiltin).
// This mirrors go-mix's objects.Builtins registry shape but holds
// only the functions classic Monkey defines, rather than the larger
// open-ended set go-mix ships.
var builtins = map[string]*object.Builtin{
	"len": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			switch arg := args[0].(type) {
			case *object.Array:
				return &object.Integer{Value: int64(len(arg.Elements))}
			case *object.String:
				return &object.Integer{Value: int64(len(arg.Value))}
			default:
				return newError("argument to `len` not supported, got %s", args[0].Type())
			}
		},
	},
	"first": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to `first` must be ARRAY, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return NULL
			}
			return arr.Elements[0]
		},
	},
	"last": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to `last` must be ARRAY, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length == 0 {
				return NULL
			}
			return arr.Elements[length-1]
		},
	},
	"rest": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to `rest` must be ARRAY, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length < 2 {
				return newError("argument to `rest` must have at least 2 elements, got %d", length)
			}
			newElements := make([]object.Object, length-1)
			copy(newElements, arr.Elements[1:length])
			return &object.Array{Elements: newElements}
		},
	},
	"push": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 2 {
				return newError("wrong number of arguments. got=%d, want=2", len(args))
			}
			arr, ok := args[0].(*object.Array)
			if !ok {
				return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			newElements := make([]object.Object, length+1)
			copy(newElements, arr.Elements)
			newElements[length] = args[1]
			return &object.Array{Elements: newElements}
		},
	},
}

// head and tail are the spec's alternate names for first and rest.
func init() {
	builtins["head"] = builtins["first"]
	builtins["tail"] = builtins["rest"]
}

// bindPutsBuiltin wires the puts builtin to e's writer, printing each
// argument's display form on its own line.
func (e *Evaluator) bindPutsBuiltin() {
	putsFn := func(args ...object.Object) object.Object {
		for _, arg := range args {
			fmt.Fprintln(e.Writer, arg.Inspect())
		}
		return NULL
	}
	e.builtins = map[string]*object.Builtin{
		"puts": {Fn: putsFn},
	}
}
