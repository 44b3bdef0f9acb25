// Package models defines data structures for booklet imposition.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Slot is one position in a sheet side: either a source page or blank filler.
// The zero value is blank.
type Slot struct {
	index  int
	source bool
}

// Blank is the filler slot used to pad a range to a full sheet group.
var Blank = Slot{}

// Source returns a slot holding the 0-based source page index.
func Source(index int) Slot {
	return Slot{index: index, source: true}
}

// IsBlank reports whether the slot carries no source page.
func (s Slot) IsBlank() bool {
	return !s.source
}

// Index returns the 0-based source page index and whether the slot has one.
func (s Slot) Index() (int, bool) {
	return s.index, s.source
}

func (s Slot) String() string {
	if !s.source {
		return "blank"
	}
	return strconv.Itoa(s.index)
}

// MarshalJSON encodes a source slot as its index and a blank slot as null.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.source {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(s.index)), nil
}

// UnmarshalJSON accepts an integer index or null.
func (s *Slot) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = Blank
		return nil
	}
	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return err
	}
	*s = Source(index)
	return nil
}
