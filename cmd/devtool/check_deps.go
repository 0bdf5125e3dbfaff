package main

import (
	"fmt"
	"strings"
)

// CheckDepsCommand verifies the local toolchain
type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

type toolCheck struct {
	name     string
	args     []string
	required bool
	install  string
	// version picks the version word out of the tool's output
	version func(out string) string
}

func wordAt(i int) func(string) string {
	return func(out string) string {
		line, _, _ := strings.Cut(out, "\n")
		parts := strings.Fields(line)
		if i < len(parts) {
			return strings.TrimRight(strings.TrimPrefix(parts[i], "version:"), ",")
		}
		return line
	}
}

var toolChecks = []toolCheck{
	{name: "go", args: []string{"version"}, required: true, install: "https://go.dev/dl/", version: wordAt(2)},
	{name: "docker", args: []string{"--version"}, required: true, install: "https://docs.docker.com/get-docker/", version: wordAt(2)},
	{name: "goose", args: []string{"--version"}, install: "go install github.com/pressly/goose/v3/cmd/goose@latest", version: wordAt(2)},
	{name: "sqlc", args: []string{"version"}, install: "go install github.com/sqlc-dev/sqlc/cmd/sqlc@latest", version: wordAt(0)},
	{name: "swag", args: []string{"--version"}, install: "go install github.com/swaggo/swag/cmd/swag@latest", version: wordAt(2)},
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies")

	missing := 0
	for _, tc := range toolChecks {
		out, err := getCommandOutput(tc.name, tc.args...)
		switch {
		case err == nil:
			PrintSuccess("%s installed: %s", tc.name, tc.version(out))
		case tc.required:
			PrintError("%s not found. Install from: %s", tc.name, tc.install)
			missing++
		default:
			PrintWarning("%s not found (recommended). Install: %s", tc.name, tc.install)
		}
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	PrintSuccess("Environment check complete")
	return nil
}
