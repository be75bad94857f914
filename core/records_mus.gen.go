// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceQTEIj2gDtC4kDITΣr0UHSwΞΞ = ord.NewSliceSer[SynonymSet](SynonymSetMUS)
	sliceozRmcJByNEmGNΔMΣJgMebgΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var TermKindMUS = termKindMUS{}

type termKindMUS struct{}

func (s termKindMUS) Marshal(v TermKind, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s termKindMUS) Unmarshal(bs []byte) (v TermKind, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = TermKind(tmp)
	return
}

func (s termKindMUS) Size(v TermKind) (size int) {
	return varint.Int.Size(int(v))
}

func (s termKindMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var SynonymSetMUS = synonymSetMUS{}

type synonymSetMUS struct{}

func (s synonymSetMUS) Marshal(v SynonymSet, bs []byte) (n int) {
	return sliceozRmcJByNEmGNΔMΣJgMebgΞΞ.Marshal(v.Lemmas, bs)
}

func (s synonymSetMUS) Unmarshal(bs []byte) (v SynonymSet, n int, err error) {
	v.Lemmas, n, err = sliceozRmcJByNEmGNΔMΣJgMebgΞΞ.Unmarshal(bs)
	return
}

func (s synonymSetMUS) Size(v SynonymSet) (size int) {
	return sliceozRmcJByNEmGNΔMΣJgMebgΞΞ.Size(v.Lemmas)
}

func (s synonymSetMUS) Skip(bs []byte) (n int, err error) {
	n, err = sliceozRmcJByNEmGNΔMΣJgMebgΞΞ.Skip(bs)
	return
}

var LexiconEntryMUS = lexiconEntryMUS{}

type lexiconEntryMUS struct{}

func (s lexiconEntryMUS) Marshal(v LexiconEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Term, bs[n:])
	n += TermKindMUS.Marshal(v.Kind, bs[n:])
	n += ord.String.Marshal(v.Canonical, bs[n:])
	n += sliceQTEIj2gDtC4kDITΣr0UHSwΞΞ.Marshal(v.Synsets, bs[n:])
	return n + varint.Uint64.Marshal(v.Frequency, bs[n:])
}

func (s lexiconEntryMUS) Unmarshal(bs []byte) (v LexiconEntry, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Term, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Kind, n1, err = TermKindMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Canonical, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Synsets, n1, err = sliceQTEIj2gDtC4kDITΣr0UHSwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Frequency, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s lexiconEntryMUS) Size(v LexiconEntry) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Term)
	size += TermKindMUS.Size(v.Kind)
	size += ord.String.Size(v.Canonical)
	size += sliceQTEIj2gDtC4kDITΣr0UHSwΞΞ.Size(v.Synsets)
	return size + varint.Uint64.Size(v.Frequency)
}

func (s lexiconEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = TermKindMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceQTEIj2gDtC4kDITΣr0UHSwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Uint64.Skip(bs[n:])
	n += n1
	return
}
