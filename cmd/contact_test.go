package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestContactPrintsMailto(t *testing.T) {
	out, err := runCLI(t, "contact", "--name", "Jane", "--email", "jane@co.com", "--message", "Hello", "--show")
	require.NoError(t, err)

	assert.Contains(t, out, "Subject: Inquiry from Jane")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "mailto:majumderzain@gmail.com?subject=Inquiry%20from%20Jane"))
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio 1.2.3\n", out)
}
