package forge

import (
	"encoding/binary"
)

// fingerprinter accumulates a canonical byte encoding of an entity, used as
// input to content-derived identifiers and header signatures. Fields are
// length-prefixed so that adjacent variable-length fields cannot collide.
type fingerprinter struct {
	buf []byte
}

func (f *fingerprinter) writeBytes(b []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(b)))
	f.buf = append(f.buf, length[:]...)
	f.buf = append(f.buf, b...)
}

func (f *fingerprinter) writeString(s string) {
	f.writeBytes([]byte(s))
}

func (f *fingerprinter) writeUint64(v uint64) {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], v)
	f.buf = append(f.buf, scratch[:]...)
}

func (f *fingerprinter) writeIdentifier(id Identifier) {
	f.buf = append(f.buf, id[:]...)
}

func (f *fingerprinter) writeIdentifiers(ids []Identifier) {
	f.writeUint64(uint64(len(ids)))
	for _, id := range ids {
		f.writeIdentifier(id)
	}
}
