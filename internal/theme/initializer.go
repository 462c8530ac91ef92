package theme

import (
	"fmt"
	"path"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Layer is an override theme registered on top of the default one.
type Layer struct {
	Name string // registry name; derived from Path when empty
	Path string // file or directory
}

// InitOptions configures Initialize.
type InitOptions struct {
	DefaultPath string
	Overrides   []Layer
	Variant     string // initial variant, DefaultName when empty
	Logger      *zap.Logger
}

// Initialize loads the default theme and every override layer into registry
// and returns a context switched to the initial variant. Each override is
// registered as the default theme with the layer merged on top. All layer
// failures are reported together.
func Initialize(loader *Loader, registry *Registry, opts InitOptions) (*Context, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("themes")

	base, err := loader.LoadPath(opts.DefaultPath)
	if err != nil {
		return nil, fmt.Errorf("load default theme: %w", err)
	}
	registry.Register(DefaultName, base)

	var errs error
	for _, layer := range opts.Overrides {
		name := LayerName(layer)
		if name == DefaultName {
			errs = multierr.Append(errs, fmt.Errorf("override %s: name %q is reserved", layer.Path, name))
			continue
		}

		merged, err := loader.Load(opts.DefaultPath, layer.Path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("override %s: %w", name, err))
			continue
		}

		registry.Register(name, merged)
		log.Debug("Registered theme", zap.String("name", name), zap.String("path", layer.Path))
	}
	if errs != nil {
		return nil, errs
	}

	variant := opts.Variant
	if variant == "" {
		variant = DefaultName
	}

	ctx := NewContext(registry)
	if err := ctx.SetVariant(variant); err != nil {
		return nil, err
	}

	log.Debug("Themes ready", zap.Strings("names", registry.Names()), zap.String("variant", variant))
	return ctx, nil
}

// LayerName returns the registry name of layer, falling back to a slug of
// its file name.
func LayerName(layer Layer) string {
	if layer.Name != "" {
		return layer.Name
	}
	base := path.Base(strings.TrimSuffix(layer.Path, "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	return slug.Make(base)
}
