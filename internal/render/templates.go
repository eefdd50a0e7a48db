package render

// fragmentTemplates holds the content fragments swapped into the shell.
const fragmentTemplates = `
{{define "entry-body"}}<h3 class="timeline-title">{{.Title}}</h3>
<div class="timeline-meta"><span class="institution">{{.Institution}}</span>{{if .Location}} <span class="location">{{.Location}}</span>{{end}}</div>
{{- if .Description}}
<p class="timeline-description">{{.Description}}</p>
{{- end}}{{end}}

{{define "section"}}<section class="cv-section">
<h2>{{.Title}}</h2>
{{- if .Error}}
<div class="error-message">Could not load {{.Title}}: {{.Error}}</div>
{{- else}}
<div class="timeline">
{{- range .Rows}}
<div class="timeline-item">
<div class="timeline-date{{if .Primary.Current}} current{{end}}">{{.Primary.DateRange}}</div>
<div class="timeline-content">
{{template "entry-body" .Primary}}
{{- range .Concurrent}}
<div class="timeline-concurrent">
<span class="concurrent-marker">Concurrent</span>
<div class="timeline-date">{{.DateRange}}</div>
{{template "entry-body" .}}
</div>
{{- end}}
</div>
</div>
{{- end}}
</div>
{{- end}}
</section>
{{end}}

{{define "cv"}}<div class="cv">
{{range .}}{{template "section" .}}{{end}}</div>
{{end}}

{{define "photos"}}<div class="photo-gallery" data-scroll-offset="{{.ScrollOffset}}">
<button class="scroll-btn" data-scroll="-1" aria-label="Scroll left">&#8249;</button>
<div class="photo-strip" id="photo-strip">
{{- range .Photos}}
<img src="{{.URL}}" alt="{{.Name}}" loading="lazy">
{{- end}}
</div>
<button class="scroll-btn" data-scroll="1" aria-label="Scroll right">&#8250;</button>
</div>
{{end}}

{{define "error"}}<div class="error-message">{{.}}</div>
{{end}}
`

// shellTemplate is the full page wrapping a fragment.
const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteTitle}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body{{if .DarkMode}} class="dark-mode"{{end}}{{if .LiveReload}} data-live-reload="true"{{end}}>
  <header class="site-header">
    <a class="site-title" href="/">{{.SiteTitle}}</a>
    <nav>
      {{- range .Nav}}
      <a href="{{.Href}}" data-page="{{.ID}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a>
      {{- end}}
    </nav>
    <button id="darkModeToggle" class="theme-toggle">{{if .DarkMode}}&#9728;&#65039; Light{{else}}&#127769; Dark{{end}}</button>
  </header>
  <main id="content" data-current-page="{{.PageID}}">
{{.Content}}
  </main>
  <script src="/static/script.js"></script>
</body>
</html>`
