package pkg

import (
	"os"
	"strings"
)

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if (isDir && stat.IsDir()) || (!isDir && !stat.IsDir()) {
		return true, nil
	}
	return false, err
}

// NormalizeUsername lower-cases and trims a username, so that
// "  Serj " and "serj" address the same account
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
