// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/metaprop/internal/ctxlog"
	"github.com/specialistvlad/metaprop/internal/meta"
	"github.com/zclconf/go-cty/cty"
)

// Validate performs a strict parity check between a manifest and a compiled
// class: same superclass, same own properties in the same order, same types
// and writability, and a fresh instance must carry the declared defaults.
func Validate(ctx context.Context, def *Class, mo *meta.MetaObject, fresh meta.Instance) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	if mo.ClassName() != def.Name {
		errs = append(errs, fmt.Sprintf("manifest declares class '%s' but Go code registers '%s'", def.Name, mo.ClassName()))
	}

	superName := ""
	if mo.SuperClass() != nil {
		superName = mo.SuperClass().ClassName()
	}
	if superName != def.SuperClass() {
		errs = append(errs, fmt.Sprintf("manifest extends '%s' but Go code extends '%s'", def.SuperClass(), superName))
	}

	own := mo.PropertyCount() - mo.PropertyOffset()
	if own != len(def.Properties) {
		errs = append(errs, fmt.Sprintf("manifest declares %d properties but Go code registers %d", len(def.Properties), own))
	}

	for i, pd := range def.Properties {
		if i >= own {
			errs = append(errs, fmt.Sprintf("property '%s' is declared in the manifest but not registered in Go code", pd.Name))
			continue
		}
		prop, err := mo.Property(mo.PropertyOffset() + i)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if prop.Name != pd.Name {
			errs = append(errs, fmt.Sprintf("property #%d: manifest declares '%s' but Go code registers '%s'", i, pd.Name, prop.Name))
			continue
		}

		if pd.Type == cty.DynamicPseudoType {
			logger.Warn("Manifest property has 'type = any', which disables static type checking.", "class", def.Name, "property", pd.Name)
		} else if !pd.Type.Equals(prop.Type) {
			errs = append(errs, fmt.Sprintf("property '%s': type mismatch, manifest requires '%s' but Go code provides '%s'",
				pd.Name, pd.Type.FriendlyName(), prop.Type.FriendlyName()))
		}

		if pd.ReadOnly == prop.Writable() {
			errs = append(errs, fmt.Sprintf("property '%s': manifest readonly=%t but Go code writable=%t", pd.Name, pd.ReadOnly, prop.Writable()))
		}

		if pd.Default.IsNull() || fresh == nil {
			continue
		}
		got, err := prop.Read(fresh)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if !got.RawEquals(pd.Default) {
			errs = append(errs, fmt.Sprintf("property '%s': manifest default is %#v but a new instance holds %#v",
				pd.Name, pd.Default, got))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("class '%s' does not match its manifest %s:\n- %s", def.Name, def.FilePath, strings.Join(errs, "\n- "))
	}
	return nil
}
