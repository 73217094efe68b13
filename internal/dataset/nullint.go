// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// NullInt is an integer cell that may be missing. Empty cells and "NA"
// decode as invalid.
type NullInt struct {
	Value int
	Valid bool
}

// Int returns a valid NullInt holding v.
func Int(v int) NullInt {
	return NullInt{Value: v, Valid: true}
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (n *NullInt) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "NA") || strings.EqualFold(s, "NaN") {
		*n = NullInt{}
		return nil
	}
	// Some exports write integral scores as "2.0".
	s = strings.TrimSuffix(s, ".0")
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*n = Int(v)
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (n NullInt) MarshalCSV() (string, error) {
	if !n.Valid {
		return "NA", nil
	}
	return strconv.Itoa(n.Value), nil
}

func (n NullInt) String() string {
	s, _ := n.MarshalCSV()
	return s
}
