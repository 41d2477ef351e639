package outline

import "strconv"

// Heading is one heading found in a document, in document order.
type Heading struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// Node is a heading placed in the document hierarchy.
type Node struct {
	Level    int     `json:"level"`
	Title    string  `json:"title"`
	AnchorID string  `json:"anchor_id"` // heading-<n>, n = order of appearance
	Children []*Node `json:"children"`
}

// AnchorID returns the anchor for the i-th heading (0-based) of a document.
func AnchorID(i int) string {
	return "heading-" + strconv.Itoa(i)
}

// Build turns a flat heading sequence into a forest.
//
// A heading closes every open heading whose level is the same or deeper and
// attaches to the nearest remaining one. With nothing open it becomes a
// top-level root, so the first heading always roots the forest whatever its
// level. Anchors are assigned in input order.
func Build(headings []Heading) []*Node {
	forest := []*Node{}

	// Open headings, shallowest first.
	var stack []*Node

	for i, h := range headings {
		node := &Node{
			Level:    h.Level,
			Title:    h.Title,
			AnchorID: AnchorID(i),
			Children: []*Node{},
		}

		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			forest = append(forest, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}

	return forest
}

// Walk visits every node in pre-order. depth is 0 for roots.
// Returning false from fn stops the walk.
func Walk(forest []*Node, fn func(n *Node, depth int) bool) {
	walk(forest, 0, fn)
}

func walk(nodes []*Node, depth int, fn func(*Node, int) bool) bool {
	for _, n := range nodes {
		if !fn(n, depth) {
			return false
		}
		if !walk(n.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Flatten returns the headings of the forest in pre-order, which is the
// original document order.
func Flatten(forest []*Node) []Heading {
	var out []Heading
	Walk(forest, func(n *Node, _ int) bool {
		out = append(out, Heading{Level: n.Level, Title: n.Title})
		return true
	})
	return out
}

// Count returns the number of nodes in the forest.
func Count(forest []*Node) int {
	n := 0
	Walk(forest, func(*Node, int) bool {
		n++
		return true
	})
	return n
}

// Find returns the node with the given anchor, or nil.
func Find(forest []*Node, anchorID string) *Node {
	var found *Node
	Walk(forest, func(n *Node, _ int) bool {
		if n.AnchorID == anchorID {
			found = n
			return false
		}
		return true
	})
	return found
}

// Path returns the chain of nodes from a root down to the node with the
// given anchor, inclusive. It returns nil if the anchor is unknown.
func Path(forest []*Node, anchorID string) []*Node {
	var path []*Node
	var search func(nodes []*Node) bool
	search = func(nodes []*Node) bool {
		for _, n := range nodes {
			path = append(path, n)
			if n.AnchorID == anchorID || search(n.Children) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}
	if !search(forest) {
		return nil
	}
	return path
}
