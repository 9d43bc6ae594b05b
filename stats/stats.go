// Package stats carries per-column-family table statistics consumed by
// the query engine.  Statistics are collected server side; clients
// only read them.
package stats

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/sqlgrid/jsonval/sqlerr"
)

// GuidePostsInfo is an opaque record bounding a row-key range within a
// column family.
type GuidePostsInfo struct {
	ByteCount  int64
	RowCount   int64
	GuidePosts [][]byte
}

// Entry associates a column family key with its guide posts.
type Entry struct {
	Family []byte
	Info   *GuidePostsInfo
}

// TableStats is a read-only mapping from column family key to guide
// post information, plus an estimate of its in-memory size.  The
// binary contract writes an entry count followed by each entry;
// reading reconstructs the mapping from the same layout.
type TableStats interface {
	// GuidePosts returns entries sorted by family key.  Callers
	// must not modify the result.
	GuidePosts() []Entry
	// EstimatedSize is the in-memory footprint in bytes.
	EstimatedSize() int
	io.WriterTo
	io.ReaderFrom
}

// Empty is the canonical empty statistics value.  It writes a zero
// entry count and does not support being read into.
var Empty TableStats = emptyStats{}

type emptyStats struct{}

func (emptyStats) GuidePosts() []Entry { return nil }

func (emptyStats) EstimatedSize() int { return 0 }

func (emptyStats) WriteTo(w io.Writer) (int64, error) {
	return writeUvarint(w, 0)
}

func (emptyStats) ReadFrom(io.Reader) (int64, error) {
	return 0, sqlerr.WithCode(sqlerr.UnsupportedOperation,
		"cannot deserialize into empty table stats")
}

type tableStats struct {
	entries []Entry
	size    int
}

// New builds stats from entries, sorting them by family key.
func New(entries []Entry) TableStats {
	ts := &tableStats{
		entries: append([]Entry(nil), entries...),
	}
	sort.Slice(ts.entries, func(i, j int) bool {
		return bytes.Compare(ts.entries[i].Family, ts.entries[j].Family) < 0
	})
	ts.size = ts.estimate()
	return ts
}

// Read reconstructs stats from the binary layout written by WriteTo.
func Read(r io.Reader) (TableStats, error) {
	ts := &tableStats{}
	if _, err := ts.ReadFrom(r); err != nil {
		return nil, err
	}
	return ts, nil
}

func (ts *tableStats) GuidePosts() []Entry { return ts.entries }

func (ts *tableStats) EstimatedSize() int { return ts.size }

func (ts *tableStats) estimate() int {
	size := 0
	for i := range ts.entries {
		e := &ts.entries[i]
		size += len(e.Family) + 16
		for _, gp := range e.Info.GuidePosts {
			size += len(gp)
		}
	}
	return size
}

func (ts *tableStats) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if _, err := writeUvarint(cw, uint64(len(ts.entries))); err != nil {
		return cw.n, err
	}
	for i := range ts.entries {
		e := &ts.entries[i]
		if err := writeBytes(cw, e.Family); err != nil {
			return cw.n, err
		}
		if _, err := writeUvarint(cw, uint64(e.Info.ByteCount)); err != nil {
			return cw.n, err
		}
		if _, err := writeUvarint(cw, uint64(e.Info.RowCount)); err != nil {
			return cw.n, err
		}
		if _, err := writeUvarint(cw, uint64(len(e.Info.GuidePosts))); err != nil {
			return cw.n, err
		}
		for _, gp := range e.Info.GuidePosts {
			if err := writeBytes(cw, gp); err != nil {
				return cw.n, err
			}
		}
	}
	return cw.n, nil
}

func (ts *tableStats) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	count, err := binary.ReadUvarint(cr)
	if err != nil {
		return cr.n, err
	}
	// count is wire data; entries grow as records actually arrive
	var entries []Entry
	for range count {
		family, err := readBytes(cr)
		if err != nil {
			return cr.n, err
		}
		info := &GuidePostsInfo{}
		bc, err := binary.ReadUvarint(cr)
		if err != nil {
			return cr.n, err
		}
		info.ByteCount = int64(bc)
		rc, err := binary.ReadUvarint(cr)
		if err != nil {
			return cr.n, err
		}
		info.RowCount = int64(rc)
		ngp, err := binary.ReadUvarint(cr)
		if err != nil {
			return cr.n, err
		}
		for range ngp {
			gp, err := readBytes(cr)
			if err != nil {
				return cr.n, err
			}
			info.GuidePosts = append(info.GuidePosts, gp)
		}
		entries = append(entries, Entry{Family: family, Info: info})
	}
	ts.entries = entries
	sort.Slice(ts.entries, func(i, j int) bool {
		return bytes.Compare(ts.entries[i].Family, ts.entries[j].Family) < 0
	})
	ts.size = ts.estimate()
	return cr.n, nil
}

func writeUvarint(w io.Writer, v uint64) (int64, error) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	nw, err := w.Write(buf[:n])
	return int64(nw), err
}

func writeBytes(w io.Writer, d []byte) error {
	if _, err := writeUvarint(w, uint64(len(d))); err != nil {
		return err
	}
	_, err := w.Write(d)
	return err
}

// maxRecordLen bounds any single length declared on the wire.  Family
// keys and guide posts are row keys, orders of magnitude below this; a
// larger declaration means a corrupt or hostile stream, and allocating
// for it before reading would let such a stream exhaust memory.
const maxRecordLen = 1 << 20

func readBytes(r *countingReader) ([]byte, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if n > maxRecordLen {
		return nil, sqlerr.WithCode(sqlerr.MalformedStats,
			"declared record length %d exceeds %d", n, maxRecordLen)
	}
	d := make([]byte, n)
	if _, err := io.ReadFull(r, d); err != nil {
		return nil, err
	}
	return d, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(d []byte) (int, error) {
	n, err := cw.w.Write(d)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(d []byte) (int, error) {
	n, err := cr.r.Read(d)
	cr.n += int64(n)
	return n, err
}

func (cr *countingReader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(cr.r, b[:]); err != nil {
		return 0, err
	}
	cr.n++
	return b[0], nil
}
