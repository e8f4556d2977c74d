package wait_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/bjaus/wait"
)

func TestTruthy(t *testing.T) {
	qt.Assert(t, qt.IsTrue(wait.Truthy[bool]()(true)))
	qt.Assert(t, qt.IsFalse(wait.Truthy[bool]()(false)))

	qt.Assert(t, qt.IsTrue(wait.Truthy[int]()(1)))
	qt.Assert(t, qt.IsFalse(wait.Truthy[int]()(0)))

	qt.Assert(t, qt.IsTrue(wait.Truthy[string]()("x")))
	qt.Assert(t, qt.IsFalse(wait.Truthy[string]()("")))

	qt.Assert(t, qt.IsTrue(wait.Truthy[[]int]()([]int{1})))
	qt.Assert(t, qt.IsFalse(wait.Truthy[[]int]()(nil)))

	v := 0
	qt.Assert(t, qt.IsTrue(wait.Truthy[*int]()(&v)))
	qt.Assert(t, qt.IsFalse(wait.Truthy[*int]()(nil)))

	qt.Assert(t, qt.IsFalse(wait.Truthy[any]()(nil)))
}

func TestFalsy(t *testing.T) {
	qt.Assert(t, qt.IsTrue(wait.Falsy[int]()(0)))
	qt.Assert(t, qt.IsFalse(wait.Falsy[int]()(3)))
	qt.Assert(t, qt.IsTrue(wait.Falsy[any]()(nil)))
}

func TestEqualTo(t *testing.T) {
	qt.Assert(t, qt.IsTrue(wait.EqualTo(5)(5)))
	qt.Assert(t, qt.IsFalse(wait.EqualTo(5)(6)))

	// Deep equality covers composite types.
	qt.Assert(t, qt.IsTrue(wait.EqualTo([]string{"a", "b"})([]string{"a", "b"})))
	qt.Assert(t, qt.IsFalse(wait.EqualTo([]string{"a"})([]string{"b"})))
}

func TestNotEqualTo(t *testing.T) {
	qt.Assert(t, qt.IsTrue(wait.NotEqualTo("pending")("active")))
	qt.Assert(t, qt.IsFalse(wait.NotEqualTo("pending")("pending")))
}

func TestIsTrueIsFalse(t *testing.T) {
	qt.Assert(t, qt.IsTrue(wait.IsTrue[bool]()(true)))
	qt.Assert(t, qt.IsFalse(wait.IsTrue[bool]()(false)))

	qt.Assert(t, qt.IsTrue(wait.IsFalse[bool]()(false)))
	qt.Assert(t, qt.IsFalse(wait.IsFalse[bool]()(true)))

	// Identity, not truthiness: non-boolean values satisfy neither.
	qt.Assert(t, qt.IsFalse(wait.IsTrue[any]()(1)))
	qt.Assert(t, qt.IsFalse(wait.IsFalse[any]()(0)))
	qt.Assert(t, qt.IsFalse(wait.IsFalse[any]()(nil)))
}

func TestIsNone(t *testing.T) {
	qt.Assert(t, qt.IsTrue(wait.IsNone[any]()(nil)))
	qt.Assert(t, qt.IsFalse(wait.IsNone[any]()(0)))

	qt.Assert(t, qt.IsTrue(wait.IsNone[*int]()(nil)))
	v := 1
	qt.Assert(t, qt.IsFalse(wait.IsNone[*int]()(&v)))

	qt.Assert(t, qt.IsTrue(wait.IsNone[[]int]()(nil)))
	qt.Assert(t, qt.IsTrue(wait.IsNone[map[string]int]()(nil)))

	// A typed nil inside an interface is still none.
	var p *int
	qt.Assert(t, qt.IsTrue(wait.IsNone[any]()(p)))
}

func TestNotNone(t *testing.T) {
	qt.Assert(t, qt.IsTrue(wait.NotNone[any]()(5)))
	qt.Assert(t, qt.IsFalse(wait.NotNone[any]()(nil)))
}

func TestNot(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	qt.Assert(t, qt.IsTrue(wait.Not(wait.Predicate[int](even))(3)))
	qt.Assert(t, qt.IsFalse(wait.Not(wait.Predicate[int](even))(4)))
}
