package xr

import (
	"fmt"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// enumerate runs the two-call protocol. The first call asks for the count
// with capacity 0 and a nil buffer. The second passes exactly that many
// records, each tagged first when tag is non-nil. A runtime that fills a
// different number of records than it announced breaks the contract and
// panics.
//
// Zero records yield an empty slice with its own backing array.
func enumerate[T any](phase errors.Phase, function string, tag func(*T), call func(capacity uint32, count *uint32, buf []T) abi.Result) ([]T, error) {
	var count uint32
	if r := call(0, &count, nil); r != abi.Success {
		return nil, errors.Status(phase, function, r)
	}
	if count == 0 {
		return []T{}, nil
	}

	buf := make([]T, count)
	if tag != nil {
		for i := range buf {
			tag(&buf[i])
		}
	}

	var filled uint32
	if r := call(count, &filled, buf); r != abi.Success {
		return nil, errors.Status(phase, function, r)
	}
	if filled != count {
		panic(errors.ContractViolation(phase, function,
			fmt.Sprintf("runtime announced %d records but filled %d", count, filled)))
	}
	return buf, nil
}
