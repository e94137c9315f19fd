package cmd

import (
	"github.com/arjunmahishi/pyscan/pyscan"
	"github.com/urfave/cli/v3"
)

const (
	ruleCallsUsage     = "Error: A BUILD filename is required."
	testFunctionsUsage = "Error: A file is required."
)

// RuleCallsCommand returns the rule-calls program.
func RuleCallsCommand() *cli.Command {
	return newCommand("rule-calls",
		"list the top-level rule calls of a BUILD file as JSON",
		ruleCallsUsage,
		pyscan.RuleCalls,
	)
}

// TestFunctionsCommand returns the test-functions program.
func TestFunctionsCommand() *cli.Command {
	return newCommand("test-functions",
		"list the unittest test methods of a Python file as JSON",
		testFunctionsUsage,
		pyscan.TestFunctions,
	)
}
