package qpcr

import (
	"io"
	"net/http"
	"os"
	"strings"
)

// OpenFileOrURL consumes a local path or an http(s) URL and returns its full
// contents. Export tables are small (one plate's worth of wells), so slurping
// is fine and lets callers re-read the bytes for delimiter detection.
func OpenFileOrURL(input string) ([]byte, error) {
	var f io.ReadCloser

	if strings.HasPrefix(input, "http") {
		resp, err := http.Get(input)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		f = resp.Body
	} else {
		file, err := os.Open(ExpandHome(input))
		if err != nil {
			return nil, err
		}
		defer file.Close()

		f = file
	}

	return io.ReadAll(f)
}
