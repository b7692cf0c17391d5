package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers, e.g. stdout and the
// rotating log file. A failing writer does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write returns the total number of bytes written across all writers,
// and all the writer errors combined.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var total int
	var err error
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		total += written
		err = multierr.Append(err, werr)
	}
	return total, err
}
