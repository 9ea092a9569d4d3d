package dashboard

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"

	"github.com/luxsports/datahub/internal/config"
	"github.com/luxsports/datahub/internal/workbook"
)

// Title is the dashboard page title.
const Title = "Lux Sports Data Hub"

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"logo": func(team string) string { return "/logos/" + url.PathEscape(team) },
	"fileURL": func(sport, file string) string {
		return "/sports/" + url.PathEscape(sport) + "/files/" + url.PathEscape(file)
	},
	"chartData": func(id string, c Chart) map[string]interface{} {
		return map[string]interface{}{"ID": id, "Chart": c}
	},
}).ParseFS(templateFS, "templates/*.html"))

// ViewLink is one entry of the view switcher.
type ViewLink struct {
	Label   string
	Href    string
	Current bool
}

// Page is the data every template receives.
type Page struct {
	Title    string
	Tabs     []Tab
	Sport    config.SportConfig
	Files    []workbook.Info
	File     *workbook.Info
	Views    []ViewLink
	Stat     *StatView
	Team     *TeamView
	Sections []ChipSection
	Heading  string
	Intro    string
	Empty    string
}

// Render executes a page template into a buffer so a template error never
// leaves a half-written response.
func Render(name string, p Page) ([]byte, error) {
	if p.Title == "" {
		p.Title = Title
	}
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
