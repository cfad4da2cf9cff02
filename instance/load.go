package instance

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Read parses r with ReadRecords and builds the instance with New.
func Read(r io.Reader, opts ...Option) (*Instance, error) {
	recs, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	return New(recs, opts...)
}

// Load opens path and builds the instance it describes.
//
// An unopenable source yields ErrOpen wrapping the os error; the caller
// decides whether that aborts the process.
func Load(path string, opts ...Option) (*Instance, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	defer f.Close()

	in, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("instance %s: %w", path, err)
	}

	o.logger.Info("instance loaded",
		"path", path,
		"nodes", in.N(),
		"vehicles", in.Vehicles(),
		"policy", in.Policy(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	return in, nil
}
