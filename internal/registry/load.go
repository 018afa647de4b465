package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/metaprop/internal/ctxlog"
	"github.com/specialistvlad/metaprop/internal/fsutil"
	"github.com/specialistvlad/metaprop/internal/manifest"
)

// LoadManifests registers every class declared in the .hcl files found under
// path. path may also name a single file.
func (r *Registry) LoadManifests(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading class manifests...", "path", path)

	filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifests path", "path", path, "error", err)
		return err
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", path)
		return nil
	}

	logger.Debug("Found HCL files to load", "files", filePaths)

	var classes []*manifest.Class
	for _, filePath := range filePaths {
		parsed, err := manifest.ParseFile(ctx, filePath)
		if err != nil {
			return err
		}
		classes = append(classes, parsed...)
	}

	built, err := manifest.BuildClasses(ctx, classes, r.MetaObject)
	if err != nil {
		return fmt.Errorf("failed to build manifest classes: %w", err)
	}
	for _, dc := range built {
		r.RegisterClass(&Class{Meta: dc.Meta, New: dc.New})
	}

	logger.Info("Manifests loaded successfully.", "classes_loaded", len(built))
	return nil
}
