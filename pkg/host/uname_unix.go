//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris

package host

import "golang.org/x/sys/unix"

func kernelRelease() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Release[:])
}
