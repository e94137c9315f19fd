package pyscan

import (
	"context"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"gitlab.com/tozd/go/errors"
)

// parser wraps a tree-sitter parser for the Python grammar.
type parser struct {
	parser *sitter.Parser
}

// newParser creates a new parser. Parsers are not safe for concurrent use.
func newParser() *parser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &parser{parser: p}
}

// parse parses source code and returns the syntax tree. Input that does not
// parse cleanly is rejected with a *ParseError; tree-sitter's error recovery
// is never exposed to callers.
func (p *parser) parse(source []byte) (*sitter.Tree, error) {
	if !utf8.Valid(source) {
		return nil, ErrInvalidUTF8
	}

	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, errors.Errorf("tree-sitter parse: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		perr := syntaxError(root)
		tree.Close()
		return nil, perr
	}

	return tree, nil
}

// syntaxError locates the first ERROR or MISSING node under root.
func syntaxError(root *sitter.Node) *ParseError {
	n := firstErrorNode(root)
	if n == nil {
		// HasError was set but no node carries it; report the root.
		n = root
	}

	start := n.StartPoint()
	perr := &ParseError{
		Line:   int(start.Row) + 1,
		Column: int(start.Column) + 1,
	}
	if n.IsMissing() {
		perr.Missing = n.Type()
	}
	return perr
}

func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n == nil || !n.HasError() {
		return nil
	}
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstErrorNode(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// unwrapParens strips any number of enclosing parentheses, which the Python
// grammar treats as transparent.
func unwrapParens(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == "parenthesized_expression" && n.NamedChildCount() == 1 {
		n = n.NamedChild(0)
	}
	return n
}

// unwrapDecorated returns the definition carried by a decorated_definition,
// or n itself.
func unwrapDecorated(n *sitter.Node) *sitter.Node {
	if n.Type() != "decorated_definition" {
		return n
	}
	if def := n.ChildByFieldName("definition"); def != nil {
		return def
	}
	return n
}

// namedChildren returns the named children of n, skipping comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	children := make([]*sitter.Node, 0, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		children = append(children, child)
	}
	return children
}

// line returns the 1-based line at which n starts.
func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}
