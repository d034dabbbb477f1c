// Package config loads raw key/value sources from .env-style files and
// keeps a validated configuration snapshot fresh via hot reload.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/artpar/envschema/core/validation"
)

// LoadEnvFile reads a .env-style file into a source: one KEY=VALUE pair
// per line, # comments and blank lines ignored, optional "export "
// prefix tolerated, single or double quotes around the value stripped.
func LoadEnvFile(path string) (validation.MapSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	src := validation.MapSource{}
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("parse env file: line %d: missing '='", lineNo)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("parse env file: line %d: empty key", lineNo)
		}

		src[key] = unquote(strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}

	return src, nil
}

// unquote strips one matching pair of single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
