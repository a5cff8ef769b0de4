package server_test

import (
	"testing"

	"verdex/core/server"

	"github.com/stretchr/testify/assert"
)

func TestIsSeedLanguage(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"English", server.LangEnglish, true},
		{"French", server.LangFrench, true},
		{"Pidgin", server.LangPidgin, true},
		{"Unknown", "de", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, server.IsSeedLanguage(tt.code))
		})
	}
}

func TestSeedLanguageCodes(t *testing.T) {
	codes := server.SeedLanguageCodes()
	assert.Equal(t, []string{"en", "fr", "pg"}, codes)
}
