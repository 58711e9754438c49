//go:build windows

package term

// No termios on Windows; rely on the isatty and raw-mode probes.
func termiosProbe(int) bool { return false }
