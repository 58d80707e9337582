// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package class

import "fmt"

// BeltPages is the number of pages in the belt address space.
const BeltPages = 48

// BeltSize is the total number of addresses in the belt (48*256).
const BeltSize = BeltPages * 256

// BeltAddress is a (page, byte) pair together with its linear address
// 256*page + byte, per spec §3.
type BeltAddress struct {
	Page    int
	Byte    uint8
	Address int
}

// ComputeBeltAddress builds the linear address for (page, b), failing if
// page is out of [0,47].
func ComputeBeltAddress(page int, b uint8) (BeltAddress, error) {
	if page < 0 || page >= BeltPages {
		return BeltAddress{}, fmt.Errorf("class: belt page %d: %w", page, ErrPageRange)
	}
	return BeltAddress{Page: page, Byte: b, Address: 256*page + int(b)}, nil
}

// DecodeBeltAddress is the inverse of ComputeBeltAddress, decomposing a
// linear address back into its (page, byte) pair.
func DecodeBeltAddress(address int) (BeltAddress, error) {
	if address < 0 || address >= BeltSize {
		return BeltAddress{}, fmt.Errorf("class: belt address %d: %w", address, ErrAddressRange)
	}
	page := address / 256
	b := address % 256
	return BeltAddress{Page: page, Byte: uint8(b), Address: address}, nil
}
