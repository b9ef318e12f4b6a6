//go:build unix

package zapbackend

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// ErrnoText translates a POSIX error code to its message text.
func (b *Backend) ErrnoText(code int) string {
	if code <= 0 {
		return "unknown error " + strconv.Itoa(code)
	}
	return unix.Errno(code).Error()
}
