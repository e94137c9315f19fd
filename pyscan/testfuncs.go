package pyscan

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

const (
	testCaseAttr = "TestCase"
	testPrefix   = "test"
)

// testModules are the module names whose TestCase marks a class as a test
// case.
var testModules = []string{"unittest", "asynctest"}

// ExtractTestFunctions returns the test methods declared directly inside
// top-level TestCase classes, in source order.
//
// Only classes listing `unittest.TestCase` or `asynctest.TestCase` among
// their bases are inspected; a class that reaches TestCase through another
// base class is not. Inside such a class, every `def` or `async def` whose
// name starts with "test" is reported. Methods nested in inner classes or
// conditional blocks are not.
func ExtractTestFunctions(source []byte) ([]TestFunction, error) {
	tree, err := newParser().parse(source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	funcs := []TestFunction{}
	for _, stmt := range namedChildren(tree.RootNode()) {
		class := unwrapDecorated(stmt)
		if class.Type() != "class_definition" || !isTestCase(class, source) {
			continue
		}

		for _, member := range namedChildren(class.ChildByFieldName("body")) {
			def := unwrapDecorated(member)
			if def.Type() != "function_definition" {
				continue
			}
			name := def.ChildByFieldName("name")
			if name == nil || !strings.HasPrefix(name.Content(source), testPrefix) {
				continue
			}
			funcs = append(funcs, TestFunction{
				ID:   name.Content(source),
				Line: line(def),
			})
		}
	}

	return funcs, nil
}

// isTestCase reports whether any base of class is `<module>.TestCase` for
// one of testModules.
func isTestCase(class *sitter.Node, source []byte) bool {
	bases := class.ChildByFieldName("superclasses")
	if bases == nil {
		return false
	}

	for _, base := range namedChildren(bases) {
		base = unwrapParens(base)
		if base.Type() != "attribute" {
			continue
		}

		attr := base.ChildByFieldName("attribute")
		if attr == nil || attr.Content(source) != testCaseAttr {
			continue
		}

		object := unwrapParens(base.ChildByFieldName("object"))
		if object == nil || object.Type() != "identifier" {
			continue
		}
		if isTestModule(object.Content(source)) {
			return true
		}
	}
	return false
}

func isTestModule(name string) bool {
	for _, m := range testModules {
		if name == m {
			return true
		}
	}
	return false
}
