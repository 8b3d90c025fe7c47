package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/packrat/peg"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *peg.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(node *peg.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Label    string      `json:"label,omitempty"`
	Token    *jsonToken  `json:"token,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonToken struct {
	Value string `json:"value"`
	Line  int    `json:"line"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func nodeToJSON(n *peg.Node) *jsonNode {
	if n == nil {
		return nil
	}

	jn := &jsonNode{
		Kind:  n.Kind.String(),
		Label: n.Label,
	}

	if n.Token != nil {
		jn.Token = &jsonToken{
			Value: n.Token.Value,
			Line:  n.Token.Line,
			Start: n.Token.Start,
			End:   n.Token.End,
		}
	}

	for _, child := range n.Children {
		jn.Children = append(jn.Children, nodeToJSON(child))
	}

	return jn
}
