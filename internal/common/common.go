// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"
)

// Stringer is implemented by every type with a text representation.
type Stringer = fmt.Stringer
