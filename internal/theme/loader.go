package theme

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"

	"github.com/yacobolo/tokencss/internal/schema"
)

// TokensFile is loaded before every other file of a theme directory.
const TokensFile = "tokens.yaml"

// DefaultCacheDuration is used when caching is on and no duration is set.
const DefaultCacheDuration = time.Hour

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	CacheThemes   bool          // memoize Load results per path pair
	CacheDuration time.Duration // lifetime of a memoized load
	Logger        *zap.Logger   // nil disables logging
}

type loadKey struct {
	base, override string
}

type loadEntry struct {
	theme   *schema.Theme
	expires time.Time
}

// Loader reads theme files and directories from a file system.
// Paths are slash separated and relative to the file system root.
type Loader struct {
	fsys   fs.FS
	cfg    LoaderConfig
	log    *zap.Logger
	loaded *xsync.Map[loadKey, loadEntry]
	now    func() time.Time
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS, cfg LoaderConfig) *Loader {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.CacheThemes && cfg.CacheDuration <= 0 {
		cfg.CacheDuration = DefaultCacheDuration
	}

	return &Loader{
		fsys:   fsys,
		cfg:    cfg,
		log:    log.Named("theme-loader"),
		loaded: xsync.NewMap[loadKey, loadEntry](),
		now:    time.Now,
	}
}

// Load reads the default layer and, when overridePath is not empty, merges
// the override layer on top. Each path may name a file or a directory.
func (l *Loader) Load(defaultPath, overridePath string) (*schema.Theme, error) {
	key := loadKey{base: defaultPath, override: overridePath}
	if l.cfg.CacheThemes {
		if e, ok := l.loaded.Load(key); ok && l.now().Before(e.expires) {
			l.log.Debug("Theme cache hit", zap.String("path", defaultPath), zap.String("override", overridePath))
			return e.theme, nil
		}
	}

	base, err := l.LoadPath(defaultPath)
	if err != nil {
		return nil, err
	}

	result := base
	if overridePath != "" {
		override, err := l.LoadPath(overridePath)
		if err != nil {
			return nil, err
		}
		result = Merge(base, override)
	}

	if l.cfg.CacheThemes {
		l.loaded.Store(key, loadEntry{theme: result, expires: l.now().Add(l.cfg.CacheDuration)})
	}
	return result, nil
}

// LoadPath loads p as a directory when it is one, as a single file otherwise.
func (l *Loader) LoadPath(p string) (*schema.Theme, error) {
	info, err := fs.Stat(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", p, err)
	}
	if info.IsDir() {
		return l.LoadDir(p)
	}
	return l.LoadFile(p)
}

// LoadFile parses a single YAML file.
func (l *Loader) LoadFile(p string) (*schema.Theme, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", p, err)
	}

	theme, err := schema.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", p, err)
	}

	l.log.Debug("Loaded theme file",
		zap.String("path", p),
		zap.Int("tokens", len(theme.Tokens)),
		zap.Int("components", len(theme.Components)),
		zap.Int("styles", len(theme.Styles)))
	return theme, nil
}

// LoadDir merges every YAML file directly inside dir. tokens.yaml goes first,
// the rest follow in name order, each layered over the previous ones.
func (l *Loader) LoadDir(dir string) (*schema.Theme, error) {
	files, err := l.themeFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		l.log.Warn("Theme directory has no YAML files", zap.String("dir", dir))
		return schema.NewTheme(), nil
	}

	var merged *schema.Theme
	for _, f := range files {
		layer, err := l.LoadFile(f)
		if err != nil {
			return nil, err
		}
		merged = Merge(merged, layer)
	}
	return merged, nil
}

// Forget drops memoized loads.
func (l *Loader) Forget() {
	l.loaded.Clear()
}

func (l *Loader) themeFiles(dir string) ([]string, error) {
	info, err := fs.Stat(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("theme directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("theme directory %s: not a directory", dir)
	}

	// Glob inside the directory so metacharacters in its name stay literal
	sub, err := fs.Sub(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("theme directory %s: %w", dir, err)
	}
	names, err := doublestar.Glob(sub, "*.{yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("list theme directory %s: %w", dir, err)
	}

	matches := make([]string, 0, len(names))
	for _, name := range names {
		matches = append(matches, path.Join(dir, name))
	}

	sort.Slice(matches, func(i, j int) bool {
		ti, tj := path.Base(matches[i]) == TokensFile, path.Base(matches[j]) == TokensFile
		if ti != tj {
			return ti
		}
		return natural.Less(matches[i], matches[j])
	})
	return matches, nil
}
