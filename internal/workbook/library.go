package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// List returns every workbook in dir, sorted by picker label. A missing
// directory is an empty library.
func List(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	var out []Info
	for _, e := range entries {
		if e.IsDir() || !IsWorkbook(e.Name()) {
			continue
		}
		out = append(out, ParseFileName(e.Name()))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Label() < out[j].Label()
	})
	return out, nil
}

// ListSport filters List to one sport.
func ListSport(dir, sport string) ([]Info, error) {
	all, err := List(dir)
	if err != nil {
		return nil, err
	}
	var out []Info
	for _, info := range all {
		if info.Sport == sport {
			out = append(out, info)
		}
	}
	return out, nil
}

// Lookup returns the info for file if it is a workbook of sport in dir.
func Lookup(dir, sport, file string) (Info, bool) {
	if file != filepath.Base(file) || !IsWorkbook(file) {
		return Info{}, false
	}
	info := ParseFileName(file)
	if info.Sport != sport {
		return Info{}, false
	}
	if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
		return Info{}, false
	}
	return info, true
}
