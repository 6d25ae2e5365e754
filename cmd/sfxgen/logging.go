package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "sfxgen.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// logDir is relative to the working directory
var logDir = "logs"

// setupLogging routes the standard logger to logs/sfxgen.log when debug is set
// and discards it otherwise. An oversized log is rotated to a timestamped file.
// Returns the open log file, or nil when logging is off or the file is unavailable
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(logDir, fmt.Sprintf("sfxgen-%s.log", stamp))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("sfxgen debug log opened")
	return f
}
