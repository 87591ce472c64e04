package input

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/lixenwraith/termatrix/constant"
)

// IsPiped reports whether f is not attached to a terminal
func IsPiped(f *os.File) bool {
	return !term.IsTerminal(int(f.Fd()))
}

// Ingest copies normalized bytes from r into ring until EOF, read error or cancellation
// EOF and cancellation return nil; the ring keeps whatever was not yet consumed
func Ingest(ctx context.Context, r io.Reader, ring *Ring) error {
	buf := make([]byte, constant.IngestChunkSize)
	var total int64

	for {
		if ctx.Err() != nil {
			log.Printf("input: ingestion cancelled after %d bytes", total)
			return nil
		}

		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			NormalizeSlice(chunk)
			ring.Write(chunk)
			total += int64(n)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Printf("input: end of input after %d bytes", total)
				return nil
			}
			return err
		}
	}
}
