package output

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If STAX_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.stax/logs/stax.log
func GetLogFilePath() string {
	if customPath := os.Getenv("STAX_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "stax.log"
	}

	return filepath.Join(homeDir, ".stax", "logs", "stax.log")
}
