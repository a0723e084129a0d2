package utils

import (
	"os"
	"strings"
	"time"
)

// Standard default permissions
// File: u=rw, g=rw, o=r
const PermFile os.FileMode = 0664

// Dir:  u=rwx, g=rwx, o=rx (Requires +x to traverse)
const PermDir os.FileMode = 0775

// Exec: u=rwx, g=rx, o=rx (batch scripts handed to the scheduler)
const PermExec os.FileMode = 0755

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists checks if a path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir checks if a directory exists, and creates it if it doesn't.
func EnsureDir(path string) error {
	if DirExists(path) {
		return nil
	}
	return os.MkdirAll(path, PermDir)
}

// SafeJobName converts a job name to a filesystem-safe string by replacing "/" with "--".
func SafeJobName(name string) string {
	return strings.ReplaceAll(name, "/", "--")
}

// StripInlineComment removes a trailing " # comment" from a directive value.
// Only whitespace-preceded hashes count; a bare "#foo" value is left alone.
func StripInlineComment(s string) string {
	for i := 1; i < len(s); i++ {
		if s[i] == '#' && (s[i-1] == ' ' || s[i-1] == '\t') {
			return strings.TrimRight(s[:i], " \t")
		}
	}
	return s
}

// Timestamp returns a compact timestamp suitable for generated file names.
func Timestamp() string {
	return time.Now().Format("20060102-150405")
}
