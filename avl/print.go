// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree on stdout
func (tree *Tree[K, V]) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - write an ASCII graphic representation of the tree, right
// branch at the top, returns the depth of the tree
func (tree *Tree[K, V]) Fprint(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, p *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v → %v h:%d\n", p.key, p.value, p.height)
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, printData)
	}
	return 1 + max(rd, ld)
}

// Dot - write the tree structure in Graphviz DOT format (for
// debugging purposes), a missing child beside a present one is drawn
// as a small empty circle so left and right stay distinguishable
func (tree *Tree[K, V]) Dot(w io.Writer) error {
	b := strings.Builder{}
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")

	id := 0
	var walk func(p *Node[K, V]) int
	walk = func(p *Node[K, V]) int {
		id += 1
		n := id
		label := fmt.Sprintf("%v\nh=%d", p.key, p.height)
		fmt.Fprintf(&b, "\t\"%d\" [label=%q];\n", n, label)
		if nil == p.left && nil == p.right {
			return n
		}
		for _, child := range []*Node[K, V]{p.left, p.right} {
			if nil == child {
				id += 1
				fmt.Fprintf(&b, "\t\"%d\" %s;\n", id, emptyNode)
				fmt.Fprintf(&b, "\t\"%d\" -> \"%d\";\n", n, id)
				continue
			}
			c := walk(child)
			fmt.Fprintf(&b, "\t\"%d\" -> \"%d\";\n", n, c)
		}
		return n
	}
	if nil != tree.root {
		walk(tree.root)
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// style of a missing child
const emptyNode = "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
