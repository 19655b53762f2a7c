//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris)

package host

func kernelRelease() string { return "" }
