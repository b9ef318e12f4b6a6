//go:build !unix

package zapbackend

import (
	"strconv"
	"syscall"
)

// ErrnoText translates a POSIX error code to its message text.
func (b *Backend) ErrnoText(code int) string {
	if code <= 0 {
		return "unknown error " + strconv.Itoa(code)
	}
	return syscall.Errno(code).Error()
}
