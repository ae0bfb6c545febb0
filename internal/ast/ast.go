package ast

// Node tags produced by the parser and consumed by the evaluator's reader.
const (
	PROGRAM = "program"
	NUMBER  = "number"
	FLOAT   = "float"
	SYMBOL  = "symbol"
	SEXPR   = "sexpr"
	QEXPR   = "qexpr"
	CHAR    = "char" // bracket tokens kept as children of sexpr/qexpr nodes
)

// Node is a generic syntax tree node: a classification tag, the raw literal
// text for leaves and the ordered children for interior nodes.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
	Position int // the src index of the first token of the node
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Expressions returns the children that are not bracket characters.
func (n *Node) Expressions() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Tag != CHAR {
			out = append(out, c)
		}
	}
	return out
}

// End returns the src index just past the last token of the node.
func (n *Node) End() int {
	if n.IsLeaf() {
		return n.Position + len(n.Contents)
	}
	return n.Children[len(n.Children)-1].End()
}
