package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shkm/rubyfmt/pkg/langdetect"
)

func TestIsRubyPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"foo.rb", true},
		{"lib/tasks/db.rake", true},
		{"mygem.gemspec", true},
		{"config.ru", true},
		{"Pod.podspec", true},
		{"FOO.RB", true},
		{"Gemfile", true},
		{"Rakefile", true},
		{"deep/nested/Gemfile", true},
		{"Vagrantfile", true},
		{"foo.py", false},
		{"foo.rbx", false},
		{"gemfile", false},
		{"README.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, langdetect.IsRubyPath(tt.path))
		})
	}
}

func TestIsRubyByShebang(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.IsRuby("bin/console", []byte("#!/usr/bin/env ruby\nputs 1\n")))
	assert.False(t, langdetect.IsRuby("bin/setup", []byte("#!/bin/sh\necho hi\n")))
}

func TestIsRubyEmptyContent(t *testing.T) {
	t.Parallel()

	assert.False(t, langdetect.IsRuby("mystery", nil))
	assert.True(t, langdetect.IsRuby("known.rb", nil), "path wins before content")
}
