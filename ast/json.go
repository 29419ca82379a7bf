package ast

import "encoding/json"

// The JSON form of every node carries a "type" discriminator so that dumps of
// either tree family remain readable after the Go types are erased. These are
// one-way serializers for diagnostic output; there is no unmarshaling.

func (n *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Body []Node `json:"body"`
	}{"Program", n.Body})
}

func (n *CallExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Name   string `json:"name"`
		Params []Node `json:"params"`
	}{"CallExpression", n.Name, n.Params})
}

func (n *NumberLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{"NumberLiteral", n.Value})
}

func (n *StringLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{"StringLiteral", n.Value})
}

func (n *ExpressionStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string `json:"type"`
		Expression Node   `json:"expression"`
	}{"ExpressionStatement", n.Expression})
}

func (n *FunctionCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string      `json:"type"`
		Callee    *Identifier `json:"callee"`
		Arguments []Node      `json:"arguments"`
	}{"FunctionCall", n.Callee, n.Arguments})
}

func (n *Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{"Identifier", n.Name})
}
