// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package istate

// Unit is the empty value type for computations that exist only for their
// effect on the state. [Put] and [Modify] yield Unit values.
type Unit struct{}
