package tokencss

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/yacobolo/tokencss/internal/resolver"
	"github.com/yacobolo/tokencss/internal/schema"
	"github.com/yacobolo/tokencss/internal/theme"
)

// Engine resolves styles against the active theme variant. Switching the
// variant swaps in a new resolver with its own empty cache.
type Engine struct {
	registry *theme.Registry
	context  *theme.Context
	opts     []resolver.Option
	log      *zap.Logger

	mu  sync.RWMutex
	res *resolver.Resolver
}

// NewEngine loads the configured themes and activates the initial variant.
func NewEngine(config Config) (*Engine, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	fsys, root, err := themeRoot(config.ThemePath)
	if err != nil {
		return nil, err
	}

	defaultPath, err := fsPath(root, config.ThemePath)
	if err != nil {
		return nil, err
	}

	layers, err := overrideLayers(root, config.Overrides)
	if err != nil {
		return nil, err
	}

	loader := theme.NewLoader(fsys, theme.LoaderConfig{
		CacheThemes:   config.CacheEnabled,
		CacheDuration: config.CacheDuration,
		Logger:        log,
	})

	e := &Engine{
		registry: theme.NewRegistry(),
		log:      log.Named("engine"),
	}

	if config.CacheEnabled {
		e.opts = append(e.opts, resolver.WithTTL(config.CacheDuration))
	} else {
		e.opts = append(e.opts, resolver.WithoutCache())
	}
	if config.Strict {
		e.opts = append(e.opts, resolver.WithStrictTokens())
	}

	e.context, err = theme.Initialize(loader, e.registry, theme.InitOptions{
		DefaultPath: defaultPath,
		Overrides:   layers,
		Variant:     config.Variant,
		Logger:      log,
	})
	if err != nil {
		return nil, err
	}

	e.res = resolver.New(e.context.Theme(), e.opts...)
	e.context.OnChange(e.onThemeChange)

	return e, nil
}

// onThemeChange never touches the old resolver's cache, so lookups still
// running against it cannot leak into the new one.
func (e *Engine) onThemeChange(variant string, th *schema.Theme) {
	r := resolver.New(th, e.opts...)
	e.mu.Lock()
	e.res = r
	e.mu.Unlock()

	e.log.Debug("Theme variant switched", zap.String("variant", variant))
}

func (e *Engine) current() *resolver.Resolver {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.res
}

// GetStyles resolves path against the active theme.
func (e *Engine) GetStyles(path, variant string) *resolver.StyleResult {
	return e.current().GetStyles(path, variant)
}

// SetVariant switches to a registered theme.
func (e *Engine) SetVariant(name string) error {
	return e.context.SetVariant(name)
}

// Variant returns the active variant name.
func (e *Engine) Variant() string {
	return e.context.Variant()
}

// Theme returns the active theme.
func (e *Engine) Theme() *schema.Theme {
	return e.context.Theme()
}

// Unresolved lists token names that failed to resolve since the last switch.
// It is always empty unless Config.Strict is set.
func (e *Engine) Unresolved() []string {
	return e.current().Unresolved()
}

// Themes describes every registered theme, sorted by name.
func (e *Engine) Themes() []ThemeInfo {
	active := e.Variant()
	names := e.registry.Names()

	infos := make([]ThemeInfo, 0, len(names))
	for _, name := range names {
		th, ok := e.registry.Get(name)
		if !ok {
			continue
		}
		infos = append(infos, ThemeInfo{
			Name:       name,
			Active:     name == active,
			Tokens:     len(th.Tokens),
			Components: len(th.Components),
			Styles:     len(th.Styles),
		})
	}
	return infos
}

// themeRoot opens the file system root that contains path. Theme paths are
// made absolute so overrides outside the working directory still load.
func themeRoot(path string) (fs.FS, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("theme path is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolve theme path %s: %w", path, err)
	}

	root := filepath.VolumeName(abs) + string(filepath.Separator)
	return os.DirFS(root), root, nil
}

// fsPath converts an OS path to a slash separated path relative to root.
func fsPath(root, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	if !strings.HasPrefix(abs, root) {
		return "", fmt.Errorf("path %s is not on the same volume as the theme", path)
	}

	rel := filepath.ToSlash(strings.TrimPrefix(abs, root))
	if rel == "" {
		rel = "."
	}
	return rel, nil
}

func overrideLayers(root string, overrides map[string]string) ([]theme.Layer, error) {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	layers := make([]theme.Layer, 0, len(names))
	for _, name := range names {
		p, err := fsPath(root, overrides[name])
		if err != nil {
			return nil, err
		}
		layers = append(layers, theme.Layer{Name: name, Path: p})
	}
	return layers, nil
}
