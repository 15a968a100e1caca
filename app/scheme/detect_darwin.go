//go:build darwin

package scheme

import (
	"os/exec"
	"strings"
)

// osDark checks AppleInterfaceStyle. The key is absent in light mode, so
// a failed read means light.
func osDark() bool {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "Dark"
}
