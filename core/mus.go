package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for persisting core types. Handwritten: the type
// surface is two small types, field order below is the wire format.
var (
	IDMUS   = idMUS{}
	NoteMUS = noteMUS{}
)

var (
	_ mus.Serializer[ID]   = IDMUS
	_ mus.Serializer[Note] = NoteMUS
)

var (
	tagsMUS   = ord.NewSliceSer[string](ord.String)
	vectorMUS = ord.NewSliceSer[float32](raw.Float32)
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return ord.String.Marshal(string(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := ord.String.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return ord.String.Size(string(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return ord.String.Skip(bs)
}

type noteMUS struct{}

func (noteMUS) Marshal(note Note, bs []byte) (n int) {
	n = IDMUS.Marshal(note.Id, bs)
	n += ord.String.Marshal(note.UserId, bs[n:])
	n += ord.String.Marshal(note.Title, bs[n:])
	n += ord.String.Marshal(note.Content, bs[n:])
	n += tagsMUS.Marshal(note.Tags, bs[n:])
	n += vectorMUS.Marshal(note.Vector, bs[n:])
	n += marshalTime(note.CreatedAt, bs[n:])
	n += marshalTime(note.UpdatedAt, bs[n:])
	return n
}

func (noteMUS) Unmarshal(bs []byte) (note Note, n int, err error) {
	var n1 int
	note.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	note.UserId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	note.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	note.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	note.Tags, n1, err = tagsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	note.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	note.CreatedAt, n1, err = unmarshalTime(bs[n:])
	n += n1
	if err != nil {
		return
	}
	note.UpdatedAt, n1, err = unmarshalTime(bs[n:])
	n += n1
	return
}

func (noteMUS) Size(note Note) (size int) {
	size = IDMUS.Size(note.Id)
	size += ord.String.Size(note.UserId)
	size += ord.String.Size(note.Title)
	size += ord.String.Size(note.Content)
	size += tagsMUS.Size(note.Tags)
	size += vectorMUS.Size(note.Vector)
	size += sizeTime(note.CreatedAt)
	size += sizeTime(note.UpdatedAt)
	return size
}

func (noteMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for _, skip := range []func([]byte) (int, error){
		IDMUS.Skip,
		ord.String.Skip,
		ord.String.Skip,
		ord.String.Skip,
		tagsMUS.Skip,
		vectorMUS.Skip,
		varint.Int64.Skip,
		varint.Int64.Skip,
	} {
		n1, err = skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

// Timestamps are stored as Unix microseconds.

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}
