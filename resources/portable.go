package resources

import (
	"os"
	"path/filepath"
)

const (
	portableIndicator = "portable.txt"
	portableDir       = "TestDMG_UserData"
)

// the directory containing the executable. empty if it can't be determined
func executableDir() string {
	ex, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(ex)
}

func checkPortable() bool {
	d := executableDir()
	if d == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(d, portableIndicator))
	return err == nil
}

func portablePath() string {
	return filepath.Join(executableDir(), portableDir)
}
