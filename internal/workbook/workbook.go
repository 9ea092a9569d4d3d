// Package workbook persists a team season as a multi-sheet xlsx file and
// loads it back for the dashboard.
//
// Layout: one wide sheet per stat (Points, Assists, Rebounds, 3PM), one
// average sheet per stat (Avg Points, ...) and, when the provider reports
// final scores, a Team Points sheet. Every sheet starts with a header row.
package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/luxsports/datahub/internal/aggregate"
	"github.com/luxsports/datahub/internal/provider"
)

// Column headers.
const (
	HeaderGameTime       = "Game Time (PST)"
	HeaderGameDate       = "Game Date"
	HeaderOpponent       = "Opponent"
	HeaderPlayer         = "Player"
	HeaderTeamPoints     = "Team Points"
	HeaderOpponentPoints = "Opponent Points"
	HeaderGameTotal      = "Game Total Points"
)

// SheetTeamPoints is the optional final-score sheet.
const SheetTeamPoints = "Team Points"

// ErrNoGames is returned by Write when the Points table has no rows.
var ErrNoGames = errors.New("no games to write")

// Book is a workbook loaded from disk.
type Book struct {
	Info
	Path   string
	Tables aggregate.Tables
}

// HasTeamPoints reports whether the workbook carried a Team Points sheet.
func (b *Book) HasTeamPoints() bool {
	return len(b.Tables.Team) > 0
}

// Write saves tables to path, replacing any existing file. The Points table
// gates the export: when it is empty nothing is written and ErrNoGames is
// returned.
func Write(path string, t aggregate.Tables) error {
	if t.Table(provider.StatPoints).Empty() {
		return ErrNoGames
	}

	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	w := &sheetWriter{f: f, header: header}

	first := true
	for _, s := range provider.AllStats {
		w.wide(string(s), t.Table(s), first)
		first = false
	}
	for _, s := range provider.AllStats {
		w.averages(s, t.Averages[s])
	}
	if len(t.Team) > 0 {
		w.team(t.Team)
	}
	if w.err != nil {
		return w.err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", filepath.Base(path), err)
	}
	return nil
}

// sheetWriter keeps the first error so the sheet builders read linearly.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) sheet(name string, rename bool) {
	if w.err != nil {
		return
	}
	if rename {
		w.err = w.f.SetSheetName(w.f.GetSheetName(0), name)
		return
	}
	if _, err := w.f.NewSheet(name); err != nil {
		w.err = fmt.Errorf("create sheet %s: %w", name, err)
	}
}

func (w *sheetWriter) row(sheet string, n int, values []interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("write %s row %d: %w", sheet, n, err)
	}
}

func (w *sheetWriter) headerRow(sheet string, cols []string) {
	values := make([]interface{}, len(cols))
	for i, c := range cols {
		values[i] = c
	}
	w.row(sheet, 1, values)
	if w.err != nil {
		return
	}
	if err := w.f.SetRowStyle(sheet, 1, 1, w.header); err != nil {
		w.err = fmt.Errorf("style %s header: %w", sheet, err)
		return
	}
	last, _ := excelize.ColumnNumberToName(max(len(cols), 1))
	_ = w.f.SetColWidth(sheet, "A", last, 16)
}

func (w *sheetWriter) wide(name string, t aggregate.WideTable, first bool) {
	w.sheet(name, first)
	w.headerRow(name, append([]string{HeaderGameTime, HeaderOpponent}, t.Players...))
	for i, r := range t.Rows {
		values := make([]interface{}, 0, 2+len(t.Players))
		values = append(values, r.GameDate, r.Opponent)
		for c := range t.Players {
			var v float64
			if c < len(r.Cells) {
				v = r.Cells[c].Float()
			}
			values = append(values, v)
		}
		w.row(name, i+2, values)
	}
}

func (w *sheetWriter) averages(s provider.Stat, avgs []aggregate.SeasonAverage) {
	name := s.AverageHeader()
	w.sheet(name, false)
	w.headerRow(name, []string{HeaderPlayer, s.AverageHeader()})
	for i, a := range avgs {
		w.row(name, i+2, []interface{}{a.Player, a.Average})
	}
}

func (w *sheetWriter) team(games []provider.TeamGameRecord) {
	w.sheet(SheetTeamPoints, false)
	w.headerRow(SheetTeamPoints, []string{
		HeaderGameTime, HeaderOpponent, HeaderTeamPoints, HeaderOpponentPoints, HeaderGameTotal,
	})
	for i, g := range games {
		w.row(SheetTeamPoints, i+2, []interface{}{g.GameDate, g.Opponent, g.TeamPoints, g.OpponentPoints, g.Total()})
	}
}

// Read loads a workbook. A missing sheet or column yields an empty table for
// that part; only an unreadable file is an error.
func Read(path string) (*Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	b := &Book{
		Info: ParseFileName(path),
		Path: path,
		Tables: aggregate.Tables{
			Wide:     make(map[provider.Stat]aggregate.WideTable, len(provider.AllStats)),
			Averages: make(map[provider.Stat][]aggregate.SeasonAverage, len(provider.AllStats)),
		},
	}
	for _, s := range provider.AllStats {
		b.Tables.Wide[s] = readWide(rows(f, string(s)), s)
		b.Tables.Averages[s] = readAverages(rows(f, s.AverageHeader()), s)
	}
	b.Tables.Team = readTeam(rows(f, SheetTeamPoints))
	return b, nil
}

// rows returns a sheet's raw cell text, or nil when the sheet is missing.
func rows(f *excelize.File, sheet string) [][]string {
	out, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil
	}
	return out
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

func at(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// blank reports whether every cell of a sheet row is empty. Rows with an
// empty date are still games.
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func number(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func readWide(data [][]string, s provider.Stat) aggregate.WideTable {
	t := aggregate.WideTable{Stat: s}
	if len(data) == 0 {
		return t
	}
	idx := headerIndex(data[0])
	dateCol, ok := idx[HeaderGameTime]
	if !ok {
		if dateCol, ok = idx[HeaderGameDate]; !ok {
			return t
		}
	}
	oppCol, ok := idx[HeaderOpponent]
	if !ok {
		oppCol = -1
	}

	var playerCols []int
	for i, h := range data[0] {
		h = strings.TrimSpace(h)
		if i == dateCol || i == oppCol || h == "" {
			continue
		}
		t.Players = append(t.Players, h)
		playerCols = append(playerCols, i)
	}

	for _, r := range data[1:] {
		if blank(r) {
			continue
		}
		row := aggregate.Row{GameDate: at(r, dateCol), Opponent: at(r, oppCol), Cells: make([]aggregate.Cell, len(playerCols))}
		for c, col := range playerCols {
			if v, ok := number(at(r, col)); ok {
				row.Cells[c] = aggregate.Cell{Value: v, Present: true}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func readAverages(data [][]string, s provider.Stat) []aggregate.SeasonAverage {
	if len(data) == 0 {
		return nil
	}
	idx := headerIndex(data[0])
	playerCol, ok := idx[HeaderPlayer]
	if !ok {
		return nil
	}
	valueCol, ok := idx[s.AverageHeader()]
	if !ok {
		valueCol = len(data[0]) - 1
	}
	if valueCol == playerCol {
		return nil
	}

	var out []aggregate.SeasonAverage
	for _, r := range data[1:] {
		player := at(r, playerCol)
		v, ok := number(at(r, valueCol))
		if player == "" || !ok {
			continue
		}
		out = append(out, aggregate.SeasonAverage{Player: player, Average: v})
	}
	return out
}

func readTeam(data [][]string) []provider.TeamGameRecord {
	if len(data) == 0 {
		return nil
	}
	idx := headerIndex(data[0])
	dateCol, ok := idx[HeaderGameTime]
	if !ok {
		if dateCol, ok = idx[HeaderGameDate]; !ok {
			return nil
		}
	}
	teamCol, ok1 := idx[HeaderTeamPoints]
	oppPtsCol, ok2 := idx[HeaderOpponentPoints]
	if !ok1 || !ok2 {
		return nil
	}
	oppCol, ok := idx[HeaderOpponent]
	if !ok {
		oppCol = -1
	}

	var out []provider.TeamGameRecord
	for _, r := range data[1:] {
		us, ok1 := number(at(r, teamCol))
		them, ok2 := number(at(r, oppPtsCol))
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, provider.TeamGameRecord{
			GameDate:       at(r, dateCol),
			Opponent:       at(r, oppCol),
			TeamPoints:     int(us),
			OpponentPoints: int(them),
		})
	}
	return out
}
