// Package sources turns a list of source locators into raw swatch records.
// It covers the three front stages of a build: loading the locator list,
// fetching each locator's text, and parsing that text as JSON or CSV.
package sources

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/agentstation/swatchmap/pkg/errors"
)

// Locator references one source: an HTTP(S) URL or a local file path.
type Locator string

// String returns the locator text.
func (l Locator) String() string {
	return string(l)
}

// IsRemote reports whether the locator is fetched over HTTP(S).
func (l Locator) IsRemote() bool {
	s := string(l)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// LoadLocators reads the locator list at path. A missing file is a
// *errors.ConfigError; the caller must not start fetching in that case.
func LoadLocators(path string) ([]Locator, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError("sources", "sources file not found: "+path, err)
		}
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	locators, err := ParseLocators(f)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return locators, nil
}

// ParseLocators reads one locator per line, trimming whitespace and skipping
// blank lines and lines starting with '#'.
func ParseLocators(r io.Reader) ([]Locator, error) {
	var locators []Locator
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		locators = append(locators, Locator(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return locators, nil
}
