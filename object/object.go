/*
File    : monkey/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime value types for the Monkey
// language. Every value produced by the evaluator implements the
// Object interface, which provides type identification (Type) and a
// display form (Inspect), the same GetType/ToString pairing go-mix's
// objects package builds its whole type system on.
package object

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/akashmaji946/monkey-lang/ast"
)

// Type identifies the runtime kind of an Object.
type Type string

const (
	INTEGER_OBJ      Type = "INTEGER"
	BOOLEAN_OBJ      Type = "BOOLEAN"
	STRING_OBJ       Type = "STRING"
	NULL_OBJ         Type = "NULL"
	RETURN_VALUE_OBJ Type = "RETURN_VALUE"
	ERROR_OBJ        Type = "ERROR"
	FUNCTION_OBJ     Type = "FUNCTION"
	BUILTIN_OBJ      Type = "BUILTIN"
	ARRAY_OBJ        Type = "ARRAY"
	HASH_OBJ         Type = "HASH"
)

// Object is the interface every Monkey runtime value implements.
type Object interface {
	Type() Type
	Inspect() string
}

// Integer is a 64-bit signed integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean is a true/false value. Monkey interns the two Boolean
// instances (see eval.TRUE/FALSE) so identity comparison of
// booleans is cheap and exact.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// String is an immutable UTF-8 string value.
type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

// Null is the absence-of-value singleton. Like Boolean, the evaluator
// interns a single Null instance.
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// ReturnValue wraps the value produced by a return statement so it
// can propagate up through nested block statements untouched, and be
// unwrapped exactly once at the enclosing function-call boundary (or,
// for a top-level return, by the program itself).
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error carries a runtime fault as a value rather than a Go panic, so
// no Monkey program can crash the host process; it propagates like
// ReturnValue until either printed at the top level or consumed by a
// caller that explicitly checks for it.
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// Function is a closure value: it carries its own parameter list and
// body along with the environment active at the point of its
// definition, so free variables resolve to the values visible there
// even after that environment's defining call has returned.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}

// BuiltinFunction is the Go function signature backing a Builtin
// value: it receives the already-evaluated argument objects and
// returns either a result Object or an *Error.
type BuiltinFunction func(args ...Object) Object

// Builtin wraps a BuiltinFunction as a first-class Monkey value, the
// way go-mix's objects.Builtin wraps a CallbackFunc.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin function" }

// Array is an ordered, heterogeneous sequence of values. Builtins
// such as push return a new Array rather than mutating the receiver,
// matching the spec's preference for immutable-array semantics.
type Array struct {
	Elements []Object
}

func (ao *Array) Type() Type { return ARRAY_OBJ }
func (ao *Array) Inspect() string {
	var out bytes.Buffer

	elements := make([]string, 0, len(ao.Elements))
	for _, e := range ao.Elements {
		elements = append(elements, e.Inspect())
	}

	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")

	return out.String()
}

// HashKey is the comparable key Monkey hashes Integer, Boolean, and
// String values down to: a type tag plus a 64-bit value, so two
// semantically equal keys of the same type always collide to the
// same HashKey even though they are different Go values.
type HashKey struct {
	Type  Type
	Value uint64
}

// Hashable is implemented by every Object that may be used as a hash
// key: Integer, Boolean, and String.
type Hashable interface {
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey {
	return HashKey{Type: i.Type(), Value: uint64(i.Value)}
}

func (b *Boolean) HashKey() HashKey {
	var value uint64
	if b.Value {
		value = 1
	}
	return HashKey{Type: b.Type(), Value: value}
}

// HashKey hashes the string's bytes with FNV-1a, the same algorithm
// Go's standard hash/fnv package recommends for short keys.
func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: s.Type(), Value: h.Sum64()}
}

// HashPair retains both the original key object (for Inspect) and its
// value, since HashKey alone has lost the key's display form.
type HashPair struct {
	Key   Object
	Value Object
}

// Hash is Monkey's unordered Key/Value mapping. Only Hashable objects
// (Integer, Boolean, String) may be used as keys.
type Hash struct {
	Pairs map[HashKey]HashPair
}

func (h *Hash) Type() Type { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var out bytes.Buffer

	pairs := make([]string, 0, len(h.Pairs))
	for _, pair := range h.Pairs {
		pairs = append(pairs, fmt.Sprintf("%s: %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}

	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")

	return out.String()
}
