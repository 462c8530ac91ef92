package tokencss

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/tokencss/internal/cssgen"
	"github.com/yacobolo/tokencss/internal/resolver"
	"github.com/yacobolo/tokencss/internal/usage"
)

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("generator")

	result := &GenerateResult{}

	// 1. Load themes and activate the variant
	engine, err := NewEngine(config)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	result.Summary.Variant = engine.Variant()
	for _, info := range engine.Themes() {
		result.Summary.Themes = append(result.Summary.Themes, info.Name)
	}

	// 2. Scan sources for class references
	refs, stats, err := ScanFiles(config.ScanPatterns, config.Logger)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.References = len(refs)
	result.Summary.FilesScanned = stats.FilesScanned
	if len(config.ScanPatterns) > 0 && stats.FilesScanned == 0 {
		result.Warnings = append(result.Warnings, "scan patterns matched no files")
	}

	// 3. Collect usage in one session
	snap, err := collectUsage(refs)
	if err != nil {
		return nil, err
	}
	result.Summary.ClassesUsed = len(snap.UsedClasses)
	result.Summary.MediaQueries = len(snap.MediaQueries)

	// 4. Render CSS
	css, rs := cssgen.Render(snap, engine, cssgen.Options{
		States:      config.States,
		SchemaMedia: config.SchemaMedia,
	})
	result.CSS = css
	result.Summary.Rules = rs.Rules
	result.Summary.MediaBlocks = rs.MediaBlocks
	result.Summary.Skipped = rs.SkippedClass
	result.Summary.Bytes = len(css)

	log.Debug("Rendered CSS",
		zap.Int("rules", rs.Rules),
		zap.Int("media", rs.MediaBlocks),
		zap.Int("skipped", rs.SkippedClass))

	// 5. Strict mode rejects unresolved tokens
	result.Summary.Unresolved = engine.Unresolved()
	if config.Strict && len(result.Summary.Unresolved) > 0 {
		return result, fmt.Errorf("%w: %s", ErrUnresolvedTokens, strings.Join(result.Summary.Unresolved, ", "))
	}

	if err := cssgen.Validate(css); err != nil {
		return result, fmt.Errorf("generated CSS is malformed: %w", err)
	}

	// 6. Write output
	if config.OutputPath != "" {
		if err := writeFile(config.OutputPath, css); err != nil {
			return result, fmt.Errorf("write failed: %w", err)
		}
		result.Summary.OutputPath = config.OutputPath
		log.Info("CSS written", zap.String("output", config.OutputPath), zap.Int("bytes", len(css)))
	}

	return result, nil
}

func collectUsage(refs []ClassReference) (usage.Snapshot, error) {
	tracker := usage.NewTracker()
	session, err := tracker.StartCollecting()
	if err != nil {
		return usage.Snapshot{}, err
	}

	Track(session, refs)

	if err := session.Stop(); err != nil {
		return usage.Snapshot{}, err
	}
	return tracker.Snapshot(), nil
}

func writeFile(path, content string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// #nosec G304 - path comes from trusted configuration
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	_, err = f.WriteString(content)
	return err
}

// Check validates the structure of a CSS file.
func Check(path string) (string, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	content := string(data)
	return content, cssgen.Validate(content)
}

// Inspect resolves a single style path against the configured theme.
func Inspect(config Config, path, variant string) (*resolver.StyleResult, error) {
	engine, err := NewEngine(config)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	return engine.GetStyles(path, variant), nil
}

// Themes lists the themes the configuration registers.
func Themes(config Config) ([]ThemeInfo, error) {
	engine, err := NewEngine(config)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	return engine.Themes(), nil
}
