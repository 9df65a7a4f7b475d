/*
File    : monkey/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/monkey-lang/eval"
	"github.com/akashmaji946/monkey-lang/object"
	"github.com/akashmaji946/monkey-lang/parser"
)

func TestMain_RunsRecursiveFibonacci(t *testing.T) {
	src := `
	let fib = fn(n) {
		if (n < 2) {
			return n;
		}
		return fib(n - 1) + fib(n - 2);
	};
	fib(10);
	`
	par := parser.NewParser(src)
	program := par.Parse()
	require.False(t, par.HasErrors(), par.GetErrors())

	evaluator := eval.NewEvaluator()
	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	intObj, ok := result.(*object.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(55), intObj.Value)
}

func TestMain_ClosureCounterAssignment(t *testing.T) {
	src := `
	let makeCounter = fn() {
		let count = 0;
		fn() {
			count = count + 1;
			count;
		};
	};
	let counter = makeCounter();
	counter();
	counter();
	counter();
	`
	par := parser.NewParser(src)
	program := par.Parse()
	require.False(t, par.HasErrors(), par.GetErrors())

	evaluator := eval.NewEvaluator()
	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	intObj, ok := result.(*object.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(3), intObj.Value)
}

func TestMain_ErrorPropagatesOutOfBlocks(t *testing.T) {
	src := `
	if (true) {
		if (true) {
			return 5 + true;
		}
		return 1;
	}
	`
	par := parser.NewParser(src)
	program := par.Parse()
	require.False(t, par.HasErrors(), par.GetErrors())

	evaluator := eval.NewEvaluator()
	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "type mismatch: INTEGER + BOOLEAN", errObj.Message)
}
