package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"tinylisp/internal/ast"
)

// WalkAST recursively traverses an AST and serializes it into a machine-centric map structure.
// This output is designed for stability, canonical representation, and tool-chain consumption.
func WalkAST(node *ast.Node) interface{} {
	if node == nil {
		return nil
	}

	out := map[string]interface{}{
		"tag":      node.Tag,
		"position": node.Position,
	}
	if node.Contents != "" {
		out["contents"] = node.Contents
	}
	if !node.IsLeaf() {
		children := make([]interface{}, len(node.Children))
		for i, c := range node.Children {
			children[i] = WalkAST(c)
		}
		out["children"] = children
	}
	return out
}

func RenderASTAsJSON(node *ast.Node) (string, error) {
	astMap := WalkAST(node)
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(astMap); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %v", err)
	}
	return buf.String(), nil
}
