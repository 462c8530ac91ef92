package tokencss

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"

	"github.com/yacobolo/tokencss/internal/cssgen"
	"github.com/yacobolo/tokencss/internal/usage"
)

// ClassReference is one class found in source code
type ClassReference struct {
	Class    string       // class token as written: "btn", "md:btn", "button.icon"
	Selector string       // media selector for prefixed tokens like "md:btn"
	Location FileLocation // Where it was found
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the attribute or call
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern is a regex whose first group captures a class list
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Ordered from most specific to least specific
	patterns = []scanPattern{
		{
			name:  "class attribute with double quotes",
			regex: regexp.MustCompile(`\bclass(?:Name)?="([^"]+)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`\bclass(?:Name)?='([^']+)'`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`\bclass(?:Name)?=\{\s*"([^"]+)"`),
		},
		{
			name:  "style lookup",
			regex: regexp.MustCompile(`GetStyles\(\s*"([^"]+)"`),
		},
	}

	// templ.Classes and templ.KV take comma-separated values
	templClassesMulti = regexp.MustCompile(`templ\.Classes\(([^)]+)\)`)
	templKVMulti      = regexp.MustCompile(`templ\.KV\(([^)]+)\)`)

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)

	// templ expressions inside attribute values, e.g. "card { extra }"
	templExpr = regexp.MustCompile(`\{[^}]*\}`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file
// Handles both _templ.go and .templ.go suffix variations
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a file is excluded from scanning:
// templ output always, gitignored files when the path is relative.
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for class references
func ScanFiles(scanPatterns []string, log *zap.Logger) ([]ClassReference, ScanStats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("scanner")

	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	if stats.FilesSkipped > 0 {
		log.Debug("Skipped generated or ignored files", zap.Int("skipped", stats.FilesSkipped))
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			log.Warn("Unable to scan file", zap.String("file", GetRelativePath(file)), zap.Error(err))
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	log.Debug("Scan complete",
		zap.Int("files", stats.FilesScanned),
		zap.Int("references", len(allRefs)))
	return allRefs, stats, nil
}

// Track reports every reference to a collection session. Prefixed tokens
// are recorded as media query usage.
func Track(s *usage.Session, refs []ClassReference) {
	for _, ref := range refs {
		if ref.Selector != "" {
			s.TrackMediaQuery(ref.Selector, ref.Class)
			continue
		}
		s.TrackClass(ref.Class)
	}
}

// expandGlobPatterns expands globs to regular files and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class references
func scanFile(filePath string) ([]ClassReference, error) {
	// #nosec G304 - path comes from trusted configuration
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// extractClassesFromLine extracts all class references from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	loc := FileLocation{File: file, Line: lineNum, Text: strings.TrimSpace(line)}

	hasTemplClasses := strings.Contains(line, "templ.Classes(")
	hasTemplKV := strings.Contains(line, "templ.KV(")

	var refs []ClassReference
	if hasTemplClasses {
		refs = append(refs, extractFromTemplClasses(line, loc)...)
	}
	if hasTemplKV && !hasTemplClasses {
		refs = append(refs, extractFromTemplKV(line, loc)...)
	}

	// templ calls are handled above; other patterns would double count them
	if hasTemplClasses || hasTemplKV {
		return refs
	}

	for _, pattern := range patterns {
		for _, match := range pattern.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(match) < 4 {
				continue
			}
			loc.Column = match[0] + 1
			refs = append(refs, splitClasses(line[match[2]:match[3]], loc)...)
		}
	}

	return refs
}

// extractFromTemplClasses extracts classes from templ.Classes(...) calls,
// including templ.KV arguments nested inside them
func extractFromTemplClasses(line string, loc FileLocation) []ClassReference {
	var refs []ClassReference

	for _, match := range templClassesMulti.FindAllStringSubmatchIndex(line, -1) {
		if len(match) < 4 {
			continue
		}
		loc.Column = match[0] + 1

		for _, part := range splitTemplArgs(line[match[2]:match[3]]) {
			part = strings.TrimSpace(part)
			if strings.HasPrefix(part, "templ.KV(") {
				part = strings.TrimPrefix(part, "templ.KV(")
				if args := splitTemplArgs(part); len(args) > 0 {
					part = strings.TrimSpace(args[0])
				}
			}
			if lit, ok := stringLiteral(part); ok {
				refs = append(refs, splitClasses(lit, loc)...)
			}
		}
	}

	return refs
}

// extractFromTemplKV extracts the class argument of templ.KV(...) calls
// Handles: templ.KV("foo", condition)
func extractFromTemplKV(line string, loc FileLocation) []ClassReference {
	var refs []ClassReference

	for _, match := range templKVMulti.FindAllStringSubmatchIndex(line, -1) {
		if len(match) < 4 {
			continue
		}
		loc.Column = match[0] + 1

		parts := splitTemplArgs(line[match[2]:match[3]])
		if len(parts) == 0 {
			continue
		}
		if lit, ok := stringLiteral(strings.TrimSpace(parts[0])); ok {
			refs = append(refs, splitClasses(lit, loc)...)
		}
	}

	return refs
}

func stringLiteral(s string) (string, bool) {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// splitClasses turns a class attribute value into references. Tokens with a
// responsive prefix ("md:card") keep the prefix and carry the matching
// media selector.
func splitClasses(value string, loc FileLocation) []ClassReference {
	fields := strings.Fields(templExpr.ReplaceAllString(value, " "))
	refs := make([]ClassReference, 0, len(fields))

	for _, token := range fields {
		if strings.ContainsAny(token, "{}$") {
			continue
		}
		ref := ClassReference{Class: token, Location: loc}
		if selector, _, ok := cssgen.PrefixSelector(token); ok {
			ref.Selector = selector
		}
		refs = append(refs, ref)
	}

	return refs
}

// splitTemplArgs splits comma-separated arguments at the top nesting level
func splitTemplArgs(s string) []string {
	var parts []string
	var current strings.Builder
	parenDepth := 0
	inString := false

	for _, r := range s {
		switch {
		case r == '"':
			inString = !inString
			current.WriteRune(r)
		case inString:
			current.WriteRune(r)
		case r == '(':
			parenDepth++
			current.WriteRune(r)
		case r == ')':
			parenDepth--
			current.WriteRune(r)
		case r == ',' && parenDepth == 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
