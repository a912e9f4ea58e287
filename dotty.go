package mway

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Each node is rendered as a record of its elements; edges are labeled with
// the child slot index, so the partitioning of a node into its subtrees is
// visible in the drawing.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	if tree == nil || tree.root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	queue := []*node[T]{tree.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		ID := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", ID, nodeDotLabel(n), nodeDotStyles(n))
		for slot, child := range n.children {
			if child == nil {
				continue
			}
			childID := ids.alloc(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"%d\",fontsize=10];\n", ID, childID, slot)
			queue = append(queue, child)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotLabel[T any](n *node[T]) string {
	if len(n.vals) == 0 {
		return "•"
	}
	parts := make([]string, len(n.vals))
	for i, v := range n.vals {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, " | ")
}

func nodeDotStyles[T any](n *node[T]) string {
	s := ",style=filled"
	if n.children == nil {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",color=black,fillcolor=white"
	}
	return s
}
