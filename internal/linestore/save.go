package linestore

import (
	"bufio"
	"io"

	"github.com/dshills/keystorm-dock/internal/coreerr"
)

// Save writes every line's content followed by its own terminator to w, in
// order. A store loaded via Load and saved unmodified reproduces the
// original bytes exactly, including mixed line endings.
func Save(s *Store, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for it := s.Begin(); it.Valid(); it = it.Next() {
		if _, err := bw.WriteString(it.Line().Full()); err != nil {
			return coreerr.NewIoError("save", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return coreerr.NewIoError("save", err)
	}
	return nil
}
