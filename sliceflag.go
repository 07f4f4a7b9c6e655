package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcdc-tools/bexpr/mcdc"
)

// vectorFlag collects the test vectors from a repeatable option.
// Each value is a number in Go syntax, such as 5, 0b101 or 0x5.
type vectorFlag struct {
	values *[]mcdc.TestVector
}

func newVectorFlag(values *[]mcdc.TestVector) *vectorFlag {
	return &vectorFlag{values}
}

func (s *vectorFlag) String() string {
	if s.values == nil {
		return ""
	}
	var strs []string
	for _, v := range *s.values {
		strs = append(strs, strconv.FormatUint(uint64(v), 10))
	}
	return strings.Join(strs, ", ")
}

func (s *vectorFlag) Set(str string) error {
	v, err := strconv.ParseUint(str, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid test vector %q", str)
	}
	*s.values = append(*s.values, mcdc.TestVector(v))
	return nil
}
