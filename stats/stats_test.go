package stats

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sqlgrid/jsonval/sqlerr"
)

func sampleEntries() []Entry {
	return []Entry{
		{
			Family: []byte("cf2"),
			Info: &GuidePostsInfo{
				ByteCount: 2048,
				RowCount:  100,
				GuidePosts: [][]byte{
					[]byte("row-050"),
					[]byte("row-100"),
				},
			},
		},
		{
			Family: []byte("cf1"),
			Info: &GuidePostsInfo{
				ByteCount:  512,
				RowCount:   10,
				GuidePosts: nil,
			},
		},
	}
}

func TestNewSortsByFamily(t *testing.T) {
	ts := New(sampleEntries())
	gps := ts.GuidePosts()
	if len(gps) != 2 {
		t.Fatalf("got %d entries", len(gps))
	}
	if string(gps[0].Family) != "cf1" || string(gps[1].Family) != "cf2" {
		t.Errorf("entries not sorted: %q, %q", gps[0].Family, gps[1].Family)
	}
}

func TestRoundTrip(t *testing.T) {
	ts := New(sampleEntries())
	buf := bytes.NewBuffer(nil)
	n, err := ts.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	got, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ts.GuidePosts(), got.GuidePosts()); diff != "" {
		t.Errorf("entries (-want +got):\n%s", diff)
	}
	if got.EstimatedSize() != ts.EstimatedSize() {
		t.Errorf("EstimatedSize = %d, want %d", got.EstimatedSize(), ts.EstimatedSize())
	}
}

func TestEstimatedSize(t *testing.T) {
	ts := New(sampleEntries())
	// per entry: family bytes plus 16, plus guide post bytes
	want := (3 + 16 + 7 + 7) + (3 + 16)
	if ts.EstimatedSize() != want {
		t.Errorf("EstimatedSize = %d, want %d", ts.EstimatedSize(), want)
	}
}

func TestEmpty(t *testing.T) {
	if Empty.GuidePosts() != nil {
		t.Error("Empty has entries")
	}
	if Empty.EstimatedSize() != 0 {
		t.Error("Empty has size")
	}

	buf := bytes.NewBuffer(nil)
	if _, err := Empty.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	got, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.GuidePosts()) != 0 {
		t.Error("reading an empty layout produced entries")
	}

	_, err = Empty.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err == nil {
		t.Fatal("ReadFrom on Empty did not fail")
	}
	if !sqlerr.IsCode(err, sqlerr.UnsupportedOperation) {
		t.Errorf("error %v has no unsupported-operation code", err)
	}
}

func putUvarint(buf *bytes.Buffer, v uint64) {
	var d [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(d[:], v)
	buf.Write(d[:n])
}

func TestReadHostileEntryCount(t *testing.T) {
	// a short stream declaring 1<<62 entries must fail on the missing
	// records, not allocate for the declared count
	buf := bytes.NewBuffer(nil)
	putUvarint(buf, 1<<62)
	if _, err := Read(buf); err == nil {
		t.Fatal("no error")
	}
}

func TestReadHostileRecordLen(t *testing.T) {
	// one entry whose family key claims to be 1TB long
	buf := bytes.NewBuffer(nil)
	putUvarint(buf, 1)
	putUvarint(buf, 1<<40)
	buf.Write([]byte("cf"))
	_, err := Read(buf)
	if err == nil {
		t.Fatal("no error")
	}
	if !sqlerr.IsCode(err, sqlerr.MalformedStats) {
		t.Errorf("error %v has no malformed-stats code", err)
	}
}

func TestReadTruncated(t *testing.T) {
	ts := New(sampleEntries())
	buf := bytes.NewBuffer(nil)
	if _, err := ts.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()
	for _, cut := range []int{1, len(full) / 2, len(full) - 1} {
		if _, err := Read(bytes.NewReader(full[:cut])); err == nil {
			t.Errorf("Read of %d/%d bytes: no error", cut, len(full))
		}
	}
}
