package dashboard

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/luxsports/datahub/internal/config"
	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/trend"
	"github.com/luxsports/datahub/internal/workbook"
)

// Tab is one sport tab.
type Tab struct {
	config.SportConfig
	Current bool
}

// Tabs lists the sport tabs in display order.
func Tabs(current string) []Tab {
	tabs := make([]Tab, 0, len(config.SportOrder))
	for _, id := range config.SportOrder {
		tabs = append(tabs, Tab{SportConfig: config.SportRegistry[id], Current: id == current})
	}
	return tabs
}

// Perfects reads every workbook of a sport and returns the 100%ers per
// stat, sorted across teams. Unreadable files are logged and skipped.
func Perfects(dir, sport string, thresholds trend.Thresholds, logger *slog.Logger) (map[provider.Stat][]trend.Perfect, error) {
	if logger == nil {
		logger = slog.Default()
	}
	files, err := workbook.ListSport(dir, sport)
	if err != nil {
		return nil, err
	}

	out := make(map[provider.Stat][]trend.Perfect, len(provider.AllStats))
	for _, info := range files {
		book, err := workbook.Read(filepath.Join(dir, info.File))
		if err != nil {
			logger.Warn("skipping unreadable workbook", "file", info.File, "error", err)
			continue
		}
		for _, stat := range provider.AllStats {
			out[stat] = append(out[stat], trend.Perfects(book.Tables.Table(stat), thresholds.For(stat), info.Team)...)
		}
	}
	for _, stat := range provider.AllStats {
		trend.SortPerfects(out[stat])
	}
	return out, nil
}

// LogoFile is the logo path of a team: "Los Angeles Lakers" ->
// <dir>/los_angeles_lakers.png.
func LogoFile(dir, team string) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(team), " ", "_"))
	return filepath.Join(dir, filepath.Base(name)+".png")
}
