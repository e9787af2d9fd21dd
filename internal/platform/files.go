package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// OSWindows is the runtime.GOOS value of Windows builds.
const OSWindows = "windows"

// File permissions
const (
	DefaultDirPermissions = 0755
)

// File name limits
const (
	MaxFileNameLength = 255
	DefaultFileName   = "untitled"
)

// illegalNameChars are replaced by '-' when a title is used as a file name.
const illegalNameChars = `<>:"/\|?*` + "\n\r\t"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// PathExists reports whether the file or directory exists.
func PathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// IsRegularFile reports whether path exists and is not a directory.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// SanitizeFileName replaces characters that are not allowed in file names
// and trims the result to MaxFileNameLength bytes.
func SanitizeFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalNameChars, r) {
			return '-'
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimRight(cleaned, ". ")
	if cleaned == "" {
		return DefaultFileName
	}
	if len(cleaned) > MaxFileNameLength {
		cut := MaxFileNameLength
		// do not split a multi-byte rune
		for cut > 0 && !isRuneStart(cleaned[cut]) {
			cut--
		}
		cleaned = cleaned[:cut]
	}
	return cleaned
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// AbsPath returns the absolute form of path, or path itself when it cannot
// be resolved.
func AbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
