package tokencss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Themes    []string    `json:"themes"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains generation counts
type JSONSummary struct {
	Variant      string   `json:"variant"`
	FilesScanned int      `json:"files_scanned"`
	References   int      `json:"references"`
	ClassesUsed  int      `json:"classes_used"`
	MediaQueries int      `json:"media_queries"`
	Rules        int      `json:"rules"`
	MediaBlocks  int      `json:"media_blocks"`
	Skipped      int      `json:"skipped"`
	Unresolved   []string `json:"unresolved_tokens"`
	Output       string   `json:"output,omitempty"`
	Bytes        int      `json:"bytes"`
}

// WriteJSON writes the generate result as JSON
func WriteJSON(w io.Writer, result *GenerateResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

// buildJSONOutput converts GenerateResult to JSONOutput
func buildJSONOutput(result *GenerateResult, now time.Time) JSONOutput {
	s := result.Summary

	unresolved := s.Unresolved
	if unresolved == nil {
		unresolved = []string{}
	}
	themes := s.Themes
	if themes == nil {
		themes = []string{}
	}
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			Variant:      s.Variant,
			FilesScanned: s.FilesScanned,
			References:   result.References,
			ClassesUsed:  s.ClassesUsed,
			MediaQueries: s.MediaQueries,
			Rules:        s.Rules,
			MediaBlocks:  s.MediaBlocks,
			Skipped:      s.Skipped,
			Unresolved:   unresolved,
			Output:       s.OutputPath,
			Bytes:        s.Bytes,
		},
		Themes:   themes,
		Warnings: warnings,
	}
}

// WriteThemesJSON writes theme descriptions as JSON
func WriteThemesJSON(w io.Writer, themes []ThemeInfo) error {
	if themes == nil {
		themes = []ThemeInfo{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(themes)
}
