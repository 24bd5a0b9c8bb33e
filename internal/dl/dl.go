// Package dl loads shared libraries at runtime without cgo.
//
// The platform-specific open function lives in dl_unix.go (purego dlopen)
// and dl_windows.go (LoadLibrary via golang.org/x/sys).
package dl

import "fmt"

// Open loads the first library from candidates that resolves and returns
// its handle. The returned error wraps the loader error of the first
// candidate when none of them could be loaded.
func Open(candidates ...string) (uintptr, error) {
	var firstErr error
	for _, name := range candidates {
		handle, err := open(name)
		if err == nil {
			return handle, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return 0, fmt.Errorf("dl: no candidate library could be loaded (tried %v): %w", candidates, firstErr)
}
