package view

import (
	"embed"
	"html/template"
)

// AreaPage 省份下拉页面
const AreaPage = "area.tmpl"

//go:embed *.tmpl
var files embed.FS

// Load parses the embedded pages for gin.Engine.SetHTMLTemplate
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.tmpl")
}
