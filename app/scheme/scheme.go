// Package scheme detects the host OS dark-mode signal.
package scheme

// Source reports whether the host currently prefers a dark color scheme.
// The value is read synchronously on demand and owned by the platform.
type Source interface {
	Dark() bool
}

// OS reads the signal from the host operating system. Detection is
// per-platform; hosts without a known signal report light.
type OS struct{}

// Dark implements Source.
func (OS) Dark() bool { return osDark() }

// Fixed is a Source pinned to a constant value, used with the force
// override on headless hosts and in tests.
type Fixed bool

// Dark implements Source.
func (f Fixed) Dark() bool { return bool(f) }
