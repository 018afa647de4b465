// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file parses HCL type expressions (`string`, `list(number)`) into
// cty types.

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// typeExprToCtyType converts an HCL type expression into its cty.Type equivalent.
func typeExprToCtyType(expr hcl.Expression) (cty.Type, hcl.Diagnostics) {
	if expr == nil {
		return cty.DynamicPseudoType, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		if len(v.Args) != 1 {
			return cty.NilType, typeDiag(expr, fmt.Sprintf("Type constructors (list, map, set) require exactly one argument, got %d.", len(v.Args)))
		}

		elementType, diags := typeExprToCtyType(v.Args[0])
		if diags.HasErrors() {
			return cty.NilType, diags
		}
		if elementType == cty.DynamicPseudoType {
			return cty.NilType, typeDiag(expr, "Collection types cannot contain type 'any'.")
		}

		switch v.Name {
		case "list":
			return cty.List(elementType), nil
		case "map":
			return cty.Map(elementType), nil
		case "set":
			return cty.Set(elementType), nil
		default:
			return cty.NilType, typeDiag(expr, fmt.Sprintf("Unknown type constructor %q.", v.Name))
		}

	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return cty.NilType, typeDiag(expr, "A type keyword must be a single identifier.")
		}
		switch name := v.Traversal.RootName(); name {
		case "string":
			return cty.String, nil
		case "number":
			return cty.Number, nil
		case "bool":
			return cty.Bool, nil
		case "any":
			return cty.DynamicPseudoType, nil
		default:
			return cty.NilType, typeDiag(expr, fmt.Sprintf("The keyword %q is not a valid type. Supported types are: string, number, bool, any, list(T), map(T), set(T).", name))
		}

	default:
		return cty.NilType, typeDiag(expr, fmt.Sprintf("Unsupported expression for a type definition: %T.", v))
	}
}

func typeDiag(expr hcl.Expression, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid type specification",
		Detail:   detail,
		Subject:  expr.Range().Ptr(),
	}}
}
