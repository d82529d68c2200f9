package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_CreatesLogFile(t2 *testing.T) {
	dir := t2.TempDir()
	t2.Setenv(envLogsDir, dir)

	file, err := setupLogging("controller")
	require.NoError(t2, err)
	defer file.Close()

	hostname, err := os.Hostname()
	require.NoError(t2, err)

	expected := filepath.Join(dir, "logs", hostname+"-controller.log")
	assert.Equal(t2, expected, file.Name())

	info, err := os.Stat(expected)
	require.NoError(t2, err)
	assert.False(t2, info.IsDir())
}

func TestLogsDir_AppendsSubdirOnce(t2 *testing.T) {
	t2.Setenv(envLogsDir, "/var/onionmesh/logs")
	assert.Equal(t2, "/var/onionmesh/logs", logsDir())

	t2.Setenv(envLogsDir, "/var/onionmesh")
	assert.Equal(t2, filepath.Join("/var/onionmesh", "logs"), logsDir())
}
