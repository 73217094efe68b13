// Copyright 2026 The Matchplot Authors
// SPDX-License-Identifier: MIT

package output

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Matchplot Charts</title>
<style>
:root { --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6; --muted: #6c757d; }
@media (prefers-color-scheme: dark) {
  :root { --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057; --muted: #adb5bd; }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p, .skipped { color: var(--muted); font-size: .875rem; }
.charts { display: grid; grid-template-columns: 1fr; gap: 1rem; margin-bottom: 1.5rem; }
figure { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
figure img, figure object { width: 100%; height: auto; }
figcaption { font-size: .875rem; margin-top: .5rem; }
</style>
</head>
<body>
<header>
<h1>Matchplot Charts</h1>
<p>{{.DataDir}} &middot; generated {{.Generated}} &middot; run {{.RunID}}</p>
</header>
{{- if .Charts}}
<section class="charts">
{{- range .Charts}}
<figure id="{{.Section}}">
{{- if eq $.Format "pdf" "eps" "tif" "tiff"}}
<a href="{{.File}}">{{.File}}</a>
{{- else}}
<img src="{{.File}}" alt="{{.Description}}">
{{- end}}
<figcaption><strong>{{.Section}}</strong> &middot; {{.Description}}</figcaption>
</figure>
{{- end}}
</section>
{{- else}}
<p class="skipped">No charts were produced.</p>
{{- end}}
{{- if .Skipped}}
<section class="skipped">
<h2>Skipped</h2>
<ul>
{{- range .Skipped}}
<li>{{.Section}}{{if .Reason}}: {{.Reason}}{{end}}</li>
{{- end}}
</ul>
</section>
{{- end}}
</body>
</html>
`
