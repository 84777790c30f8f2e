//go:build linux || darwin

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// readFile mmaps path read-only, which avoids a full copy for the large
// documents this format is meant for. The returned slice is valid for
// the process lifetime; tlvctl is a short-lived CLI, so it is never
// unmapped.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	sz := st.Size()
	if sz == 0 {
		return nil, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(sz), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap failed: %w", err)
	}
	return data, nil
}
