package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, app *cli.Command, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), app, append([]string{app.Name}, args...), IO{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRuleCallsFile(t *testing.T) {
	path := writeFile(t, "BUILD", "python_test(\n    name = \"calc_test\",\n    srcs = [\"calc_test.py\"],\n)\n")

	res := run(t, RuleCallsCommand(), "", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, `[{"id": "python_test", "name": "calc_test", "line": 1}]`+"\n", res.stdout)
}

func TestRuleCallsStdin(t *testing.T) {
	res := run(t, RuleCallsCommand(), "x = some_var\nfoo(name=x)\nbar(name = \"b\")\n", "stdin")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, `[{"id": "bar", "name": "b", "line": 3}]`+"\n", res.stdout)
}

func TestTestFunctionsFile(t *testing.T) {
	path := writeFile(t, "calc_test.py", `class MyTest(unittest.TestCase):
    def test_one(self):
        pass
    def helper(self):
        pass
    async def test_two(self):
        pass
`)

	res := run(t, TestFunctionsCommand(), "", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, `[{"id": "test_one", "line": 2}, {"id": "test_two", "line": 6}]`+"\n", res.stdout)
}

func TestTestFunctionsStdin(t *testing.T) {
	res := run(t, TestFunctionsCommand(), "class Foo(Bar.TestCase):\n    def test_x(self):\n        pass\n", "stdin")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "[]\n", res.stdout)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		app  func() *cli.Command
		args []string
		want string
	}{
		{"rule_calls_no_args", RuleCallsCommand, nil, ruleCallsUsage},
		{"rule_calls_two_args", RuleCallsCommand, []string{"a", "b"}, ruleCallsUsage},
		{"rule_calls_stdin_extra_arg", RuleCallsCommand, []string{"stdin", "BUILD"}, ruleCallsUsage},
		{"test_functions_no_args", TestFunctionsCommand, nil, testFunctionsUsage},
		{"test_functions_three_args", TestFunctionsCommand, []string{"a", "b", "c"}, testFunctionsUsage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := run(t, tc.app(), "", tc.args...)
			require.Equal(t, 1, res.code)
			require.Equal(t, tc.want+"\n", res.stdout)
		})
	}
}

func TestParseErrorExitsNonZero(t *testing.T) {
	path := writeFile(t, "broken.py", "class Broken(unittest.TestCase:\n    pass\n")

	for _, app := range []func() *cli.Command{RuleCallsCommand, TestFunctionsCommand} {
		res := run(t, app(), "", path)
		require.Equal(t, 1, res.code)
		require.Empty(t, res.stdout)
		require.Contains(t, res.stderr, "invalid syntax")

		res = run(t, app(), "rule(name = \"x\"]\n", "stdin")
		require.Equal(t, 1, res.code)
		require.Empty(t, res.stdout)
		require.Contains(t, res.stderr, "invalid syntax")
	}
}

func TestMissingFileExitsNonZero(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	res := run(t, TestFunctionsCommand(), "", missing)
	require.Equal(t, 1, res.code)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "no such file")
}

func TestOutputIsStable(t *testing.T) {
	path := writeFile(t, "BUILD", "a(name = \"x\")\nb(name = \"y\", name = \"z\")\n")

	first := run(t, RuleCallsCommand(), "", path)
	second := run(t, RuleCallsCommand(), "", path)
	require.Equal(t, 0, first.code)
	require.Equal(t, first.stdout, second.stdout)
	require.Equal(t, `[{"id": "a", "name": "x", "line": 1}, {"id": "b", "name": "y", "line": 2}, {"id": "b", "name": "z", "line": 2}]`+"\n", first.stdout)
}
