// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package class

import "errors"

// Sentinel errors for the range-checked operations in this package. Callers
// should discriminate with errors.Is; the wrapping fmt.Errorf calls attach
// the offending value for debugging context.
var (
	ErrClassRange   = errors.New("class index out of range [0,95]")
	ErrPageRange    = errors.New("belt page out of range [0,47]")
	ErrAddressRange = errors.New("belt address out of range [0,12287]")
)
