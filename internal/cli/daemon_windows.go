//go:build windows

package cli

import (
	"os/exec"
)

// setSysProcAttr sets platform-specific process attributes for daemon mode.
// Setsid is Unix-only, so Windows needs nothing here.
func setSysProcAttr(cmd *exec.Cmd) {
}
