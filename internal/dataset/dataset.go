package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrConfiguration marks unusable reference data or settings; fatal to a run.
var ErrConfiguration = errors.New("invalid configuration")

// Reference holds the sampling pools every generation stage draws from.
type Reference struct {
	FirstNames []string
	LastNames  []string
	Categories []string
	Locations  []string
	BookTitles []string
}

// Load reads all reference lists from dir. Every file is required and must
// contain at least one non-blank line.
func Load(dir string) (*Reference, error) {
	ref := &Reference{}
	files := []struct {
		name   string
		target *[]string
	}{
		{"first_names.txt", &ref.FirstNames},
		{"last_names.txt", &ref.LastNames},
		{"categories.txt", &ref.Categories},
		{"locations.txt", &ref.Locations},
		{"book_titles.txt", &ref.BookTitles},
	}

	for _, file := range files {
		values, err := readLines(filepath.Join(dir, file.name))
		if err != nil {
			return nil, err
		}
		*file.target = values
	}
	return ref, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reference file %s: %v", ErrConfiguration, path, err)
	}
	defer f.Close()

	var values []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			values = append(values, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reference file %s: %v", ErrConfiguration, path, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: reference file %s is empty", ErrConfiguration, path)
	}
	return values, nil
}
