package object

import (
	"reflect"
	"testing"
)

func TestEnvironmentGet(t *testing.T) {
	root := NewEnvironment()
	root.Put("x", num(10))
	child := NewEnclosedEnvironment(root)
	child.Put("y", num(20))

	if got := child.Get("x"); got.Inspect() != "10" {
		t.Errorf("child should see parent binding, got %s", got.Inspect())
	}
	if got := child.Get("y"); got.Inspect() != "20" {
		t.Errorf("child should see own binding, got %s", got.Inspect())
	}

	missing := root.Get("y")
	err, ok := missing.(*Error)
	if !ok {
		t.Fatalf("expected error for unbound symbol, got %s", missing.Inspect())
	}
	if err.Kind != UNBOUND_SYMBOL || err.Inspect() != "Error: Unbound Symbol 'y'" {
		t.Errorf("unexpected error %v %q", err.Kind, err.Inspect())
	}
}

func TestEnvironmentPutOverwritesInPlace(t *testing.T) {
	env := NewEnvironment()
	env.Put("a", num(1))
	env.Put("b", num(2))
	env.Put("a", num(3))

	if got := env.Get("a"); got.Inspect() != "3" {
		t.Errorf("expected rebinding to replace the value, got %s", got.Inspect())
	}
	if names := env.Names(); !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("rebinding should keep the original slot, got %v", names)
	}
}

func TestEnvironmentPutDoesNotTouchParent(t *testing.T) {
	root := NewEnvironment()
	root.Put("x", num(1))
	child := NewEnclosedEnvironment(root)
	child.Put("x", num(2))

	if got := root.Get("x"); got.Inspect() != "1" {
		t.Errorf("parent binding changed by child put: %s", got.Inspect())
	}
	if got := child.Get("x"); got.Inspect() != "2" {
		t.Errorf("child should shadow parent: %s", got.Inspect())
	}
}

func TestEnvironmentDefine(t *testing.T) {
	root := NewEnvironment()
	middle := NewEnclosedEnvironment(root)
	leaf := NewEnclosedEnvironment(middle)

	leaf.Define("g", num(7))

	if _, ok := root.Lookup("g"); !ok {
		t.Errorf("define should bind in the root frame")
	}
	if _, ok := leaf.Lookup("g"); ok {
		t.Errorf("define should not bind in the current frame")
	}
	if got := NewEnclosedEnvironment(root).Get("g"); got.Inspect() != "7" {
		t.Errorf("defined name should be visible from any child, got %s", got.Inspect())
	}
	if leaf.Root() != root {
		t.Errorf("Root() should walk to the outermost frame")
	}
}

func TestEnvironmentCopyIndependence(t *testing.T) {
	list := qexpr(num(1), num(2))
	env := NewEnvironment()
	env.Put("a", list)
	env.Put("b", list)

	a, _ := env.Lookup("a")
	b, _ := env.Lookup("b")
	qa := a.(*QExpression)
	qb := b.(*QExpression)

	if qa == qb || qa == list {
		t.Fatalf("stored values must be distinct instances")
	}
	if &qa.Cells[0] == &qb.Cells[0] {
		t.Fatalf("stored values share backing storage")
	}

	qa.Cells[0] = num(100)
	if qb.Inspect() != "{1 2}" || list.Inspect() != "{1 2}" {
		t.Errorf("mutating one slot leaked: b=%s list=%s", qb.Inspect(), list.Inspect())
	}

	got := env.Get("b").(*QExpression)
	got.Cells[1] = num(200)
	if stored, _ := env.Lookup("b"); stored.Inspect() != "{1 2}" {
		t.Errorf("Get should return a copy, stored value is now %s", stored.Inspect())
	}
}

func TestEnvironmentCopy(t *testing.T) {
	root := NewEnvironment()
	env := NewEnclosedEnvironment(root)
	env.Put("x", num(1))

	copied := env.Copy()
	copied.Put("x", num(2))
	copied.Put("y", num(3))

	if copied.Parent != root {
		t.Errorf("copy should keep the parent link")
	}
	if copied.ID == env.ID {
		t.Errorf("copy should get a fresh id")
	}
	if got := env.Get("x"); got.Inspect() != "1" {
		t.Errorf("original changed through copy: %s", got.Inspect())
	}
	if _, ok := env.Lookup("y"); ok {
		t.Errorf("binding added to copy leaked into original")
	}

	var nilEnv *Environment
	if nilEnv.Copy() != nil {
		t.Errorf("copy of nil environment should be nil")
	}
}
