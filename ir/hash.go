package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is fixed per process so that equal trees hash equally for
// the lifetime of the program.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node's structural content.  Object
// entries are combined commutatively so the hash is independent of key
// order, consistent with Equal.  It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		if n.Int64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		} else if n.Float64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float64))
			h.Write(b[:])
		} else {
			h.WriteString(n.Number)
		}
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var entries uint64
		for i, field := range n.Fields {
			var eh maphash.Hash
			eh.SetSeed(hashSeed)
			eh.WriteString(field)
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			eh.Write(b[:])
			entries ^= eh.Sum64()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], entries)
		h.Write(b[:])
	}
	return h.Sum64()
}
