package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCheckCmd_Exists verifies getCheckCmd returns a valid
// command.
func TestGetCheckCmd_Exists(t *testing.T) {
	cmd := getCheckCmd()
	require.NotNil(t, cmd, "Check command should exist")
	assert.Equal(t, "check [input-file]", cmd.Use,
		"Command use line should name the positional argument")
}

// TestGetCheckCmd_ShortDescription verifies short description.
func TestGetCheckCmd_ShortDescription(t *testing.T) {
	cmd := getCheckCmd()

	assert.NotEmpty(t, cmd.Short,
		"Short description should not be empty")
	assert.Contains(t, cmd.Short, "quality",
		"Short description should mention checklist quality")
}

// TestGetCheckCmd_HasRunE verifies run function is set.
func TestGetCheckCmd_HasRunE(t *testing.T) {
	cmd := getCheckCmd()

	assert.NotNil(t, cmd.RunE,
		"RunE should be set")
}

// TestGetCheckCmd_SheetFlag verifies --sheet flag exists.
func TestGetCheckCmd_SheetFlag(t *testing.T) {
	cmd := getCheckCmd()

	flag := cmd.Flags().Lookup("sheet")
	require.NotNil(t, flag,
		"--sheet flag should exist")

	assert.Equal(t, "s", flag.Shorthand,
		"Short form should be -s")
}

// TestGetCheckCmd_ReportFlag verifies --report flag exists.
func TestGetCheckCmd_ReportFlag(t *testing.T) {
	cmd := getCheckCmd()

	flag := cmd.Flags().Lookup("report")
	require.NotNil(t, flag,
		"--report flag should exist")

	assert.Equal(t, "r", flag.Shorthand,
		"Short form should be -r")
	assert.Contains(t, flag.Usage, "YAML",
		"Usage should mention the YAML report")
}

// TestGetCheckCmd_ArgsLimit verifies at most one positional
// argument is accepted.
func TestGetCheckCmd_ArgsLimit(t *testing.T) {
	cmd := getCheckCmd()
	require.NotNil(t, cmd.Args)

	assert.NoError(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"checklist.xlsx"}))
	assert.Error(t, cmd.Args(cmd, []string{"a.xlsx", "b.xlsx"}))
}
