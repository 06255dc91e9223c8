package download

import "errors"

var (
	// ErrNoOutput indicates the extractor reported success but left no
	// retrievable file in the download directory.
	ErrNoOutput = errors.New("no output file produced")
)
