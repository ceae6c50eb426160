// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// pre-order key list, "-" marks a missing child that has a sibling
func preOrder[K, V any](p *avl.Node[K, V]) string {
	if nil == p {
		return "-"
	}
	if nil == p.Left() && nil == p.Right() {
		return fmt.Sprint(p.Key())
	}
	return fmt.Sprintf("%v(%s %s)", p.Key(), preOrder(p.Left()), preOrder(p.Right()))
}

func build(keys ...int) *avl.Tree[int, int] {
	tree := avl.New[int, int](avl.ReplaceValue)
	for _, k := range keys {
		tree.Insert(k, 0)
	}
	return tree
}

func TestRotationCases(t *testing.T) {
	cases := []struct {
		name  string
		keys  []int
		shape string
		stats avl.Stats
	}{
		{"left-left", []int{3, 2, 1}, "2(1 3)", avl.Stats{SingleRight: 1}},
		{"right-right", []int{1, 2, 3}, "2(1 3)", avl.Stats{SingleLeft: 1}},
		{"left-right", []int{3, 1, 2}, "2(1 3)", avl.Stats{LeftRight: 1}},
		{"right-left", []int{1, 3, 2}, "2(1 3)", avl.Stats{RightLeft: 1}},
		{"no rotation", []int{2, 1, 3}, "2(1 3)", avl.Stats{}},
	}

	for _, c := range cases {
		tree := build(c.keys...)
		assert.Equal(t, c.shape, preOrder(tree.Root()), c.name)
		assert.Equal(t, c.stats, tree.Stats(), c.name)
		assert.Equal(t, 1, tree.Height(), c.name)
		assert.Nil(t, tree.Check(), c.name)
	}
}

// equal grandchild heights must pick the single rotation
func TestTieBreakSingleRotation(t *testing.T) {
	tree := build(2, 1, 4, 3, 5)
	assert.Equal(t, "2(1 4(3 5))", preOrder(tree.Root()), "initial shape")

	tree.Delete(1)
	assert.Equal(t, "4(2(- 3) 5)", preOrder(tree.Root()), "right heavy tie")
	assert.Equal(t, avl.Stats{SingleLeft: 1}, tree.Stats(), "right heavy tie")
	assert.Nil(t, tree.Check(), "right heavy tie")

	tree = build(4, 5, 2, 1, 3)
	assert.Equal(t, "4(2(1 3) 5)", preOrder(tree.Root()), "initial mirror shape")

	tree.Delete(5)
	assert.Equal(t, "2(1 4(3 -))", preOrder(tree.Root()), "left heavy tie")
	assert.Equal(t, avl.Stats{SingleRight: 1}, tree.Stats(), "left heavy tie")
	assert.Nil(t, tree.Check(), "left heavy tie")
}

// insert 1..10 then remove 8 and 10
func TestRoundTrip(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	assert.Equal(t, "4(2(1 3) 8(6(5 7) 9(- 10)))", preOrder(tree.Root()), "after inserts")

	tree.Delete(8)
	assert.Equal(t, "4(2(1 3) 9(6(5 7) 10))", preOrder(tree.Root()), "successor took over")

	tree.Delete(10)
	assert.Equal(t, "4(2(1 3) 6(5 9(7 -)))", preOrder(tree.Root()), "after deletes")

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 9}, collect(tree), "in-order")
	assert.Equal(t, 8, tree.Count(), "count")
	assert.Equal(t, avl.Stats{SingleLeft: 6, SingleRight: 1}, tree.Stats(), "rotations")
	assert.Nil(t, tree.Check(), "check")
}

func TestMinMax(t *testing.T) {
	empty := avl.New[int, int](avl.KeepExisting)
	_, err := empty.Min()
	assert.Equal(t, fault.ErrEmptyContainer, err, "min of empty")
	_, err = empty.Max()
	assert.Equal(t, fault.ErrEmptyContainer, err, "max of empty")
	assert.Nil(t, empty.First(), "first of empty")
	assert.Nil(t, empty.Last(), "last of empty")
	assert.Equal(t, -1, empty.Height(), "height of empty")

	const n = 500
	r := rand.New(rand.NewSource(42))
	tree := build(r.Perm(n)...)

	low, err := tree.Min()
	assert.Nil(t, err, "min")
	assert.Equal(t, 0, low, "min")
	high, err := tree.Max()
	assert.Nil(t, err, "max")
	assert.Equal(t, n-1, high, "max")
}

// AVL worst case height is below 1.4405·log2(n+2) - 0.3277
func heightBound(n int) int {
	return int(math.Floor(1.4405*math.Log2(float64(n+2)) - 0.3277))
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := avl.New[int, int](avl.ReplaceValue)
	reference := make(map[int]int)

	for i := 0; i < 20000; i += 1 {
		k := r.Intn(2000)
		if r.Intn(3) > 0 {
			_, exists := reference[k]
			added := tree.Insert(k, i)
			assert.Equal(t, !exists, added, "insert: %d", k)
			reference[k] = i
		} else {
			_, exists := reference[k]
			_, removed := tree.Delete(k)
			assert.Equal(t, exists, removed, "delete: %d", k)
			delete(reference, k)
		}
		if 0 == i%97 {
			if err := tree.Check(); nil != err {
				t.Fatalf("operation: %d  inconsistent tree: %s", i, err)
			}
		}
		if tree.Height() > heightBound(tree.Count()) {
			t.Fatalf("operation: %d  height: %d  bound: %d", i, tree.Height(), heightBound(tree.Count()))
		}
	}

	assert.Nil(t, tree.Check(), "final check")
	assert.Equal(t, len(reference), tree.Count(), "final count")
	for k, v := range reference {
		actual, ok := tree.Get(k)
		assert.True(t, ok, "get: %d", k)
		assert.Equal(t, v, actual, "get: %d", k)
	}
}

func TestCloneAndMove(t *testing.T) {
	source := build(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	copied := source.Clone()
	assert.Equal(t, preOrder(source.Root()), preOrder(copied.Root()), "clone shape")
	assert.Equal(t, source.Count(), copied.Count(), "clone count")
	assert.Equal(t, avl.Stats{}, copied.Stats(), "clone stats")

	copied.Delete(4)
	*copied.Reference(5) = 55
	v, _ := source.Get(5)
	assert.Equal(t, 0, v, "source value after changing copy")
	assert.True(t, source.Has(4), "source lost key")
	assert.Equal(t, 10, source.Count(), "source count")
	assert.Equal(t, 9, copied.Count(), "copy count")

	source.Insert(100, 1)
	assert.False(t, copied.Has(100), "copy gained key")

	stats := source.Stats()
	moved := source.Move()
	assert.True(t, source.IsEmpty(), "source not empty after move")
	assert.Equal(t, 0, source.Count(), "source count after move")
	assert.Equal(t, avl.Stats{}, source.Stats(), "source stats after move")
	assert.Equal(t, 11, moved.Count(), "moved count")
	assert.Equal(t, stats, moved.Stats(), "moved stats")
	assert.Nil(t, moved.Check(), "moved check")

	// moved-from tree is still usable
	source.Insert(1, 1)
	assert.Equal(t, 1, source.Count(), "reuse after move")
	assert.Equal(t, 11, moved.Count(), "moved tree shares state")

	moved.Clear()
	assert.True(t, moved.IsEmpty(), "clear")
	assert.Equal(t, 0, moved.Count(), "clear count")
}

func TestFprint(t *testing.T) {
	tree := build(1, 2, 3)

	b := bytes.Buffer{}
	depth := tree.Fprint(&b, false)
	assert.Equal(t, 2, depth, "depth")

	expected := strings.Join([]string{
		"       /------+ 3",
		"|------+ 2",
		"       \\------+ 1",
		"",
	}, "\n")
	assert.Equal(t, expected, b.String(), "picture")

	b.Reset()
	tree.Fprint(&b, true)
	assert.Contains(t, b.String(), "2 → 0 h:1", "data picture")

	b.Reset()
	assert.Equal(t, 0, build().Fprint(&b, false), "empty depth")
	assert.Equal(t, "", b.String(), "empty picture")
}

func TestDot(t *testing.T) {
	b := bytes.Buffer{}
	err := build(1, 2, 3).Dot(&b)
	assert.Nil(t, err, "dot")

	expected := "strict digraph {\n" +
		"\tnode [fontname=Arial,fontsize=12];\n" +
		"\t\"1\" [label=\"2\\nh=1\"];\n" +
		"\t\"2\" [label=\"1\\nh=0\"];\n" +
		"\t\"1\" -> \"2\";\n" +
		"\t\"3\" [label=\"3\\nh=0\"];\n" +
		"\t\"1\" -> \"3\";\n" +
		"}\n"
	assert.Equal(t, expected, b.String(), "dot output")

	b.Reset()
	err = build(1, 2).Dot(&b)
	assert.Nil(t, err, "dot")
	assert.Contains(t, b.String(), "shape=circle", "missing child marker")
	assert.Contains(t, b.String(), "\"1\" -> \"2\";", "missing child edge")
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "replace", avl.ReplaceValue.String())
	assert.Equal(t, "keep", avl.KeepExisting.String())
	assert.Equal(t, "unknown", avl.DuplicatePolicy(9).String())
}

func TestScaleSequential(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large tree in short mode")
	}

	const n = 1000000
	tree := avl.New[int, int](avl.ReplaceValue)
	for i := 0; i < n; i += 1 {
		tree.Insert(i, i)
	}

	assert.Equal(t, n, tree.Count(), "count")
	assert.True(t, tree.Height() <= heightBound(n), "height: %d", tree.Height())
	assert.Nil(t, tree.Check(), "check")

	low, _ := tree.Min()
	high, _ := tree.Max()
	assert.Equal(t, 0, low, "min")
	assert.Equal(t, n-1, high, "max")
}
