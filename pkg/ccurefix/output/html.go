package output

import (
	"html/template"
	"io"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
)

// Page is the data rendered by RenderHTML.
type Page struct {
	// FileName is the name of the held upload, if any.
	FileName string
	// Preview holds the records to list.
	Preview Preview
	// DownloadName is the file name offered for the corrected workbook.
	DownloadName string
}

// Columns returns the table headings.
func (Page) Columns() []string { return models.Columns }

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Corrector de Reportes C-CURE</title>
<style>
body { font-family: sans-serif; background: #f3f4f6; margin: 0; }
main { max-width: 72rem; margin: 0 auto; padding: 1.5rem; }
table { border-collapse: collapse; font-size: .875rem; width: 100%; background: #fff; }
th, td { border: 1px solid #e5e7eb; padding: .5rem .75rem; text-align: left; white-space: pre-wrap; }
tbody tr:nth-child(even) { background: #f9fafb; }
.note { color: #6b7280; font-size: .75rem; margin-top: .5rem; }
</style>
</head>
<body>
<main>
<h1>Corrector de Reportes C-CURE &rarr; Excel</h1>
<form method="post" action="/upload" enctype="multipart/form-data">
<label>Subir archivo (.xls / .xlsx / .csv)
<input type="file" name="file" accept=".xls,.xlsx,.xlsm,.csv">
</label>
<button type="submit">Convertir</button>
</form>
{{- if .FileName}}
<p>{{.FileName}}: {{.Preview.Total}} registros.
<a href="/download" download="{{.DownloadName}}">Descargar Excel corregido</a></p>
<form method="post" action="/reset"><button type="submit">Limpiar</button></form>
{{- end}}
{{- if .Preview.Records}}
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Preview.Records}}
<tr>{{range .Values}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- with .Preview.Footer}}
<div class="note">{{.}}</div>
{{- end}}
{{- end}}
</main>
</body>
</html>
`))

// RenderHTML writes the upload form and record preview.
func RenderHTML(w io.Writer, page Page) error {
	return pageTemplate.Execute(w, page)
}
