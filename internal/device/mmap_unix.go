//go:build unix

package device

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile memory-maps the file read-only. Writes are impossible through the
// mapping; the tool only ever reads the image.
func mapFile(f *os.File, size int64) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
}

func unmapFile(data []byte) error {
	return unix.Munmap(data)
}
