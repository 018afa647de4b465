// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package introspect

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/metaprop/internal/ctxlog"
	"github.com/specialistvlad/metaprop/internal/meta"
)

// Print writes the class name of obj, then one `<name> :  "<value>"` line
// per property in index order.
func Print(ctx context.Context, w io.Writer, obj meta.Instance) error {
	mo := obj.MetaObject()
	logger := ctxlog.FromContext(ctx).With("class", mo.ClassName())
	logger.Debug("Printing properties.", "count", mo.PropertyCount())

	if _, err := fmt.Fprintln(w, mo.ClassName()); err != nil {
		return err
	}

	for i := 0; i < mo.PropertyCount(); i++ {
		p, err := mo.Property(i)
		if err != nil {
			return err
		}
		val, err := Value(obj, p.Name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s :  %q\n", p.Name, val); err != nil {
			return err
		}
	}
	return nil
}
