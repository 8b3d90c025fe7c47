package peg

import "strings"

type NodeKind int

const (
	// KindToken is a leaf holding one matched token.
	KindToken NodeKind = iota
	// KindList groups sub-results, optionally labeled with the name
	// of the production alternative that built it.
	KindList
)

var nodeKindNames = map[NodeKind]string{
	KindToken: "Token",
	KindList:  "List",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is one parse-tree node. A nil *Node is the engine's only
// failure signal: "rule did not match at this position".
type Node struct {
	Kind     NodeKind
	Label    string
	Token    *Token
	Children []*Node
}

// NewTokenNode wraps a matched token as a leaf node.
func NewTokenNode(tok Token) *Node {
	return &Node{Kind: KindToken, Token: &tok}
}

// NewList builds a labeled list node from the given children.
func NewList(label string, children ...*Node) *Node {
	return &Node{Kind: KindList, Label: label, Children: children}
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// Pos reports the rune span the node covers. An empty list covers
// nothing and reports (0, 0).
func (n *Node) Pos() (start, end int) {
	if n.Token != nil {
		return n.Token.Start, n.Token.End
	}
	if len(n.Children) == 0 {
		return 0, 0
	}
	start, _ = n.Children[0].Pos()
	_, end = n.Children[len(n.Children)-1].Pos()
	return start, end
}

func (n *Node) TokenValue() string {
	if n.Token != nil {
		return n.Token.Value
	}
	return ""
}

func (n *Node) String() string {
	var sb strings.Builder
	n.stringIndent(&sb, 0)
	return sb.String()
}

func (n *Node) stringIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	if n.Label != "" {
		sb.WriteString(n.Label)
	} else {
		sb.WriteString(n.Kind.String())
	}
	if n.Token != nil {
		sb.WriteString(" ")
		sb.WriteString(n.Token.String())
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.stringIndent(sb, indent+1)
	}
}
