package cmd

import (
	"bytes"
	"testing"

	app "github.com/gnames/gndwc/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd_Exists verifies the root command wiring.
func TestRootCmd_Exists(t *testing.T) {
	require.NotNil(t, rootCmd, "Root command should exist")
	assert.Equal(t, "gndwc", rootCmd.Use,
		"Command name should be gndwc")
}

// TestRootCmd_ErrorSilencing verifies error and
// usage silencing.
func TestRootCmd_ErrorSilencing(t *testing.T) {
	assert.True(t, rootCmd.SilenceErrors,
		"Errors should be silenced")
	assert.True(t, rootCmd.SilenceUsage,
		"Usage should be silenced on errors")
}

// TestRootCmd_HasPreRun verifies bootstrap
// function is set.
func TestRootCmd_HasPreRun(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
}

// TestRootCmd_VersionFormat verifies version
// string content.
func TestRootCmd_VersionFormat(t *testing.T) {
	assert.Contains(t, rootCmd.Version, app.Version,
		"Version output should contain version")
	assert.Contains(t, rootCmd.Version, "build:",
		"Version output should contain build")
}

// TestRootCmd_ShortVersionFlag verifies
// -V flag is registered.
func TestRootCmd_ShortVersionFlag(t *testing.T) {
	flag := rootCmd.Flags().Lookup("version")
	require.NotNil(t, flag,
		"--version flag should exist")
	assert.Equal(t, "V", flag.Shorthand,
		"Short form should be -V")
}

// TestRootCmd_Subcommands verifies both pipeline
// commands are registered.
func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "transform",
		"transform command should be registered")
	assert.Contains(t, names, "check",
		"check command should be registered")
}

// TestRootCmd_HelpText verifies help text content.
func TestRootCmd_HelpText(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "gndwc",
		"Help should mention gndwc")
	assert.Contains(t, helpText, "Darwin Core",
		"Help should mention Darwin Core")
	assert.Contains(t, helpText, "transform",
		"Help should list the transform command")
	assert.Contains(t, helpText, "check",
		"Help should list the check command")
}
