//go:build !darwin && !linux && !windows

package scheme

// osDark has no known signal on this platform, report light.
func osDark() bool { return false }
