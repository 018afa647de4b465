// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package introspect

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Display renders a value the way a generic variant-to-string conversion
// would: strings as-is, numbers in decimal, booleans as true/false, null
// as the empty string. Anything without a string form is rendered as JSON.
func Display(val cty.Value) string {
	if val == cty.NilVal || val.IsNull() {
		return ""
	}
	if !val.IsKnown() {
		return "(unknown)"
	}

	if val.Type().IsPrimitiveType() {
		if s, err := convert.Convert(val, cty.String); err == nil {
			return s.AsString()
		}
	}

	buf, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return val.GoString()
	}
	return string(buf)
}
