// generate_index renders README.md and the column reference into
// <dist-dir>/index.html, listing the release archives found in dist-dir.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/oakwood-commons/tasklist/internal/column"
	"github.com/oakwood-commons/tasklist/internal/i18n"
)

// Pattern: tasklist_VERSION_OS_ARCH.ext
var archivePattern = regexp.MustCompile(`^tasklist_([^_]+)_(Darwin|Linux|Windows)_(arm64|x86_64)\.(?:tar\.gz|zip)$`)

var platformNames = map[string]string{
	"Darwin_arm64":   "macOS (Apple Silicon)",
	"Darwin_x86_64":  "macOS (Intel)",
	"Linux_arm64":    "Linux (ARM64)",
	"Linux_x86_64":   "Linux (x86_64)",
	"Windows_arm64":  "Windows (ARM64)",
	"Windows_x86_64": "Windows (x86_64)",
}

type archive struct {
	platform string
	file     string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dist-dir>\n", os.Args[0])
		os.Exit(1)
	}
	distDir := os.Args[1]

	readme, err := os.ReadFile("README.md")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading README.md: %v\n", err)
		os.Exit(1)
	}
	page := append(readme, columnsMarkdown(column.NewRegistry(i18n.Default()))...)

	version, archives := scanDist(distDir)

	indexPath := filepath.Join(distDir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating index.html: %v\n", err)
		os.Exit(1)
	}
	if err := writePage(f, renderMarkdown(page), version, archives); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error writing index.html: %v\n", err)
		os.Exit(1)
	}
	f.Close()
	fmt.Fprintf(os.Stderr, "Generated %s\n", indexPath)
}

func renderMarkdown(md []byte) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	doc := parser.NewWithExtensions(extensions).Parse(md)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return markdown.Render(doc, renderer)
}

// columnsMarkdown documents every registered column as a markdown table.
func columnsMarkdown(reg *column.Registry) []byte {
	var sb strings.Builder
	sb.WriteString("\n## Column reference\n\n| Column | Type | Format | Example |\n|---|---|---|---|\n")
	for _, name := range reg.Names() {
		col, err := reg.New(name)
		if err != nil {
			continue
		}
		examples := col.Examples()
		for i, style := range col.Styles() {
			spec := name + "." + style
			if style == col.Style() {
				spec += " (default)"
			}
			example := ""
			if i < len(examples) {
				example = examples[i]
			}
			fmt.Fprintf(&sb, "| %s | %s | `%s` | `%s` |\n", name, col.Type(), spec, example)
		}
	}
	return []byte(sb.String())
}

// scanDist finds the release version and one archive per platform in the
// flat goreleaser dist directory.
func scanDist(distDir string) (string, []archive) {
	version := "unknown"
	files, err := os.ReadDir(distDir)
	if err != nil {
		return version, nil
	}

	seen := make(map[string]bool)
	var archives []archive
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		m := archivePattern.FindStringSubmatch(file.Name())
		if m == nil {
			continue
		}
		version = m[1]
		key := m[2] + "_" + m[3]
		if seen[key] {
			continue
		}
		seen[key] = true
		archives = append(archives, archive{platform: platformNames[key], file: file.Name()})
	}
	sort.Slice(archives, func(i, j int) bool { return archives[i].platform < archives[j].platform })
	return version, archives
}

func writePage(w io.Writer, body []byte, version string, archives []archive) error {
	var sb strings.Builder
	sb.WriteString(`<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>tasklist - Task Reports</title>
  <style>
    body { font-family: system-ui, -apple-system, sans-serif; max-width: 900px; margin: 40px auto; padding: 0 20px; line-height: 1.6; color: #333; }
    h1 { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
    code { background: #f1f5f9; padding: 2px 6px; border-radius: 3px; font-family: Monaco, Menlo, monospace; font-size: 0.9em; }
    pre { background: #1e293b; color: #e2e8f0; padding: 16px; border-radius: 6px; overflow-x: auto; }
    pre code { background: none; color: inherit; padding: 0; }
    table { border-collapse: collapse; }
    td, th { padding: 6px 8px; text-align: left; }
    .downloads { background: #eff6ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #2563eb; }
  </style>
</head>
<body>
`)
	sb.WriteString("  <div class=\"downloads\">\n    <h2>Downloads</h2>\n")
	fmt.Fprintf(&sb, "    <h3>%s</h3>\n    <table>\n", version)
	for _, a := range archives {
		fmt.Fprintf(&sb, "      <tr><td>%s</td><td><a href=\"%s\">download</a></td></tr>\n", a.platform, a.file)
	}
	sb.WriteString("    </table>\n  </div>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
