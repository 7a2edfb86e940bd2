// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice2mUJYfHmLu1pwVtrCM7ΣqQΞΞ = ord.NewSliceSer[string](ord.String)
	sliceNDuvDvkQwomuW4ΔΔG6OW8QΞΞ = ord.NewSliceSer[float32](varint.Float32)
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

var EditionCategoryMUS = editionCategoryMUS{}

type editionCategoryMUS struct{}

func (s editionCategoryMUS) Marshal(v EditionCategory, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s editionCategoryMUS) Unmarshal(bs []byte) (v EditionCategory, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = EditionCategory(tmp)
	return
}

func (s editionCategoryMUS) Size(v EditionCategory) (size int) {
	return ord.String.Size(string(v))
}

func (s editionCategoryMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var AvailabilityMUS = availabilityMUS{}

type availabilityMUS struct{}

func (s availabilityMUS) Marshal(v Availability, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s availabilityMUS) Unmarshal(bs []byte) (v Availability, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Availability(tmp)
	return
}

func (s availabilityMUS) Size(v Availability) (size int) {
	return ord.String.Size(string(v))
}

func (s availabilityMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var ListingMUS = listingMUS{}

type listingMUS struct{}

func (s listingMUS) Marshal(v Listing, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Author, bs[n:])
	n += ord.String.Marshal(v.Publisher, bs[n:])
	n += EditionCategoryMUS.Marshal(v.EditionType, bs[n:])
	n += varint.Float64.Marshal(v.Price, bs[n:])
	n += AvailabilityMUS.Marshal(v.Availability, bs[n:])
	n += slice2mUJYfHmLu1pwVtrCM7ΣqQΞΞ.Marshal(v.GenreTags, bs[n:])
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += sliceNDuvDvkQwomuW4ΔΔG6OW8QΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s listingMUS) Unmarshal(bs []byte) (v Listing, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Author, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Publisher, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EditionType, n1, err = EditionCategoryMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Price, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Availability, n1, err = AvailabilityMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.GenreTags, n1, err = slice2mUJYfHmLu1pwVtrCM7ΣqQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceNDuvDvkQwomuW4ΔΔG6OW8QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s listingMUS) Size(v Listing) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Author)
	size += ord.String.Size(v.Publisher)
	size += EditionCategoryMUS.Size(v.EditionType)
	size += varint.Float64.Size(v.Price)
	size += AvailabilityMUS.Size(v.Availability)
	size += slice2mUJYfHmLu1pwVtrCM7ΣqQΞΞ.Size(v.GenreTags)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.Description)
	size += sliceNDuvDvkQwomuW4ΔΔG6OW8QΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s listingMUS) Skip(bs []byte) (n int, err error) {
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
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EditionCategoryMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = AvailabilityMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice2mUJYfHmLu1pwVtrCM7ΣqQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceNDuvDvkQwomuW4ΔΔG6OW8QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
