/*
File    : monkey/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.Equal(t, diff1.HashKey(), diff2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestIntegerHashKey(t *testing.T) {
	one1 := &Integer{Value: 1}
	one2 := &Integer{Value: 1}
	two := &Integer{Value: 2}

	assert.Equal(t, one1.HashKey(), one2.HashKey())
	assert.NotEqual(t, one1.HashKey(), two.HashKey())
}

func TestBooleanHashKey(t *testing.T) {
	true1 := &Boolean{Value: true}
	true2 := &Boolean{Value: true}
	false1 := &Boolean{Value: false}

	assert.Equal(t, true1.HashKey(), true2.HashKey())
	assert.NotEqual(t, true1.HashKey(), false1.HashKey())
}

func TestEnvironment_SetGetAssign(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val.(*Integer).Value)

	ok = inner.Assign("x", &Integer{Value: 2})
	assert.True(t, ok)

	val, _ = outer.Get("x")
	assert.Equal(t, int64(2), val.(*Integer).Value)

	ok = inner.Assign("never_declared", &Integer{Value: 3})
	assert.False(t, ok)
}
