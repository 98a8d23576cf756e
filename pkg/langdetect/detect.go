// Package langdetect decides whether a file holds Ruby source. It uses
// go-enry for shebang, filename, and classifier based detection, so that
// extensionless executables like bin/console are still discovered.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langRuby = "ruby"

// rubyExtensions are file extensions treated as Ruby without inspecting
// content.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rubyExtensions = map[string]struct{}{
	".rb":      {},
	".rake":    {},
	".gemspec": {},
	".ru":      {},
	".podspec": {},
}

// rubyFilenames are well-known extensionless Ruby files.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rubyFilenames = map[string]struct{}{
	"Gemfile":   {},
	"Rakefile":  {},
	"Guardfile": {},
	"Capfile":   {},
	"Vagrantfile": {},
	"Brewfile":  {},
}

// IsRubyPath reports whether the path alone identifies a Ruby file, via
// extension or well-known filename.
func IsRubyPath(path string) bool {
	if _, ok := rubyExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return true
	}
	_, ok := rubyFilenames[filepath.Base(path)]
	return ok
}

// IsRuby reports whether the file at path with the given content is Ruby.
// Detection strategies, in order of reliability:
//  1. Path: extension or well-known filename.
//  2. Shebang: '#!/usr/bin/env ruby' and friends.
//  3. Classifier: enry's Bayesian classifier over common candidates.
func IsRuby(path string, content []byte) bool {
	if IsRubyPath(path) {
		return true
	}

	if len(content) == 0 {
		return false
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return strings.EqualFold(lang, langRuby)
	}

	candidates := []string{
		"Ruby", "Go", "Python", "Shell", "JavaScript", "Perl", "PHP",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		return strings.EqualFold(lang, langRuby)
	}

	return false
}
