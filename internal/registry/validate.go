package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/metaprop/internal/ctxlog"
	"github.com/specialistvlad/metaprop/internal/manifest"
)

// ValidateRegistry performs a strict parity check between every compiled
// class that ships a manifest and that manifest.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.order {
		c := r.classes[name]
		if len(c.Manifest) == 0 {
			continue
		}

		filename := c.ManifestName
		if filename == "" {
			filename = name + ".hcl"
		}
		defs, err := manifest.Parse(ctx, c.Manifest, filename)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}

		var def *manifest.Class
		for _, d := range defs {
			if d.Name == name {
				def = d
				break
			}
		}
		if def == nil {
			errs = append(errs, fmt.Sprintf("class '%s': manifest %s does not declare it", name, filename))
			continue
		}

		if err := manifest.Validate(ctx, def, c.Meta, c.New()); err != nil {
			errs = append(errs, err.Error())
			continue
		}
		logger.Debug("Class matches its manifest.", "class", name, "manifest", filename)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
