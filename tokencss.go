// Package tokencss turns a YAML design-token and component schema into the
// CSS a project actually uses.
//
// # Schema
//
// A theme file declares tokens, BEM components and flat styles:
//
//	tokens:
//	  color-primary: '#007bff'
//	components:
//	  button:
//	    base:
//	      class: btn
//	      styles:
//	        - color: var(--color-primary)
//	    variants:
//	      primary:
//	        class: btn--primary
//
// # Generation
//
// Generate scans markup for class references and writes only the rules they
// need:
//
//	result, err := tokencss.Generate(tokencss.Config{
//		ThemePath:    "styles/theme.yaml",
//		ScanPatterns: []string{"web/**/*.{templ,html}"},
//		OutputPath:   "web/static/app.css",
//	})
//
// # Runtime lookups
//
// An Engine resolves style paths against the active theme variant and can be
// switched between registered variants:
//
//	engine, err := tokencss.NewEngine(config)
//	styles := engine.GetStyles("button.icon", "primary")
//	err = engine.SetVariant("dark")
//
// # CLI Tool
//
// Install the command line tool with:
//
//	go install github.com/yacobolo/tokencss/cmd/tokencss@latest
package tokencss
