//go:build unix

package term

import "golang.org/x/sys/unix"

func termiosProbe(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	return err == nil
}
