package pyscan

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// nameKeyword is the keyword argument that carries a rule's declared name.
const nameKeyword = "name"

// ExtractRuleCalls returns the rule calls declared at the top level of a
// build file, in source order.
//
// A statement qualifies when it is a bare call to a plain identifier, e.g.
// `python_test(name = "calc_test")`. Every `name=` keyword bound to a string
// literal yields one record, so a malformed call that repeats the keyword
// yields several. Anything else, including `pkg.rule(name = "x")` and
// `rule(name = some_var)`, is skipped.
func ExtractRuleCalls(source []byte) ([]CallRecord, error) {
	tree, err := newParser().parse(source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	calls := []CallRecord{}
	for _, stmt := range namedChildren(tree.RootNode()) {
		call, kind := topLevelCall(stmt, source)
		if call == nil {
			continue
		}

		for _, kw := range keywordArguments(call) {
			key, value := kw.ChildByFieldName("name"), kw.ChildByFieldName("value")
			if key == nil || value == nil || key.Content(source) != nameKeyword {
				continue
			}
			name, ok := stringLiteral(value, source)
			if !ok {
				continue
			}
			calls = append(calls, CallRecord{
				Kind: kind,
				Name: name,
				Line: line(call),
			})
		}
	}

	return calls, nil
}

// topLevelCall matches an expression statement holding exactly one call
// whose callee is a bare identifier. It returns the call node and the
// callee's name.
func topLevelCall(stmt *sitter.Node, source []byte) (*sitter.Node, string) {
	if stmt.Type() != "expression_statement" || !singleExpression(stmt) {
		return nil, ""
	}

	call := unwrapParens(stmt.NamedChild(0))
	if call == nil || call.Type() != "call" {
		return nil, ""
	}

	callee := unwrapParens(call.ChildByFieldName("function"))
	if callee == nil || callee.Type() != "identifier" {
		return nil, ""
	}

	return call, callee.Content(source)
}

// singleExpression reports whether an expression statement holds one
// expression rather than an implicit tuple such as `a(), b()` or `a(),`.
func singleExpression(stmt *sitter.Node) bool {
	count := 0
	for i := 0; i < int(stmt.ChildCount()); i++ {
		if stmt.Child(i).Type() == "comment" {
			continue
		}
		count++
	}
	return count == 1
}

// keywordArguments returns the keyword arguments of a call in declaration
// order. Calls whose argument is a bare generator expression have none.
func keywordArguments(call *sitter.Node) []*sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil || args.Type() != "argument_list" {
		return nil
	}

	var keywords []*sitter.Node
	for _, arg := range namedChildren(args) {
		if arg.Type() == "keyword_argument" {
			keywords = append(keywords, arg)
		}
	}
	return keywords
}
