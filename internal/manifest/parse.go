// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/metaprop/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// rootSchema is the top-level structure of a manifest file.
type rootSchema struct {
	Classes []*hclClass `hcl:"class,block"`
}

// hclClass is a single `class` block, decoded in two steps so that the body
// can be checked against classBodySchema.
type hclClass struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

var classBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "extends"},
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "property", LabelNames: []string{"name"}},
	},
}

var propertyBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// `type` is required, but its presence is checked by hand to give a
		// better message.
		{Name: "type"},
		{Name: "default"},
		{Name: "description"},
		{Name: "readonly"},
	},
}

// ParseFile reads and parses the manifest at path.
func ParseFile(ctx context.Context, path string) ([]*Class, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	classes, diags := decodeFile(ctx, file, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, diags)
	}
	return classes, nil
}

// Parse parses manifest source held in memory, such as an embedded file.
func Parse(ctx context.Context, src []byte, filename string) ([]*Class, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	classes, diags := decodeFile(ctx, file, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid manifest %s: %w", filename, diags)
	}
	return classes, nil
}

func decodeFile(ctx context.Context, file *hcl.File, path string) ([]*Class, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding class manifest.", "file_path", path)

	var root rootSchema
	diags := gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, diags
	}

	classes := make([]*Class, 0, len(root.Classes))
	seen := make(map[string]bool, len(root.Classes))
	for _, hc := range root.Classes {
		if seen[hc.Name] {
			rng := hc.Body.MissingItemRange()
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate class definition",
				Detail:   fmt.Sprintf("A class named '%s' has already been defined in this file.", hc.Name),
				Subject:  &rng,
			})
			continue
		}
		seen[hc.Name] = true

		cls, classDiags := decodeClass(hc, path)
		diags = append(diags, classDiags...)
		if classDiags.HasErrors() {
			continue // keep collecting diagnostics from the remaining classes
		}
		classes = append(classes, cls)
	}

	if diags.HasErrors() {
		return nil, diags
	}
	logger.Debug("Decoded class manifest.", "file_path", path, "classes", len(classes))
	return classes, diags
}

func decodeClass(hc *hclClass, path string) (*Class, hcl.Diagnostics) {
	content, diags := hc.Body.Content(classBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	cls := &Class{Name: hc.Name, FilePath: path}
	if attr, ok := content.Attributes["extends"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &cls.Extends)...)
	}
	if attr, ok := content.Attributes["description"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &cls.Description)...)
	}

	for _, block := range content.Blocks.OfType("property") {
		name := block.Labels[0]
		if cls.Property(name) != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate property definition",
				Detail:   fmt.Sprintf("A property named '%s' has already been defined in class '%s'.", name, cls.Name),
				Subject:  &block.DefRange,
			})
			continue
		}

		prop, propDiags := decodeProperty(block)
		diags = append(diags, propDiags...)
		if prop != nil {
			cls.Properties = append(cls.Properties, prop)
		}
	}

	return cls, diags
}

func decodeProperty(block *hcl.Block) (*PropertyDef, hcl.Diagnostics) {
	content, diags := block.Body.Content(propertyBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	prop := &PropertyDef{Name: block.Labels[0]}

	typeAttr, ok := content.Attributes["type"]
	if !ok {
		rng := block.Body.MissingItemRange()
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'type' attribute",
			Detail:   "The 'type' attribute is required for all property blocks.",
			Subject:  &rng,
		})
	}
	typ, typeDiags := typeExprToCtyType(typeAttr.Expr)
	diags = append(diags, typeDiags...)
	if typeDiags.HasErrors() {
		return nil, diags
	}
	prop.Type = typ
	prop.Default = cty.NullVal(typ)

	if attr, ok := content.Attributes["description"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &prop.Description)...)
	}
	if attr, ok := content.Attributes["readonly"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &prop.ReadOnly)...)
	}

	if attr, ok := content.Attributes["default"]; ok {
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			return nil, diags
		}
		converted, err := convert.Convert(val, typ)
		if err != nil {
			return nil, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid default value",
				Detail:   fmt.Sprintf("The default for property '%s' is not a valid %s: %s.", prop.Name, typ.FriendlyName(), err),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
		prop.Default = converted
	}

	return prop, diags
}
