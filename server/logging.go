package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const logsSubdir = "logs"

// setupLogging fans log output out to both stdout and a per-host log file
// named "<hostname>-<component>.log" under LOGS_DIR/logs, matching the
// naming scheme this Controller's peers use for their own log files.
func setupLogging(component string) (*os.File, error) {
	dir := logsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	path := filepath.Join(dir, hostname+"-"+component+".log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(io.MultiWriter(os.Stdout, file))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}

func logsDir() string {
	base := os.Getenv(envLogsDir)
	if base == "" {
		wd, err := os.Getwd()
		if err == nil {
			base = wd
		}
	}
	if filepath.Base(base) == logsSubdir {
		return base
	}
	return filepath.Join(base, logsSubdir)
}
