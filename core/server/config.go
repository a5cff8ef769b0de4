package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// DefaultLanguage is the language code used for the sync projection.
	DefaultLanguage string `mapstructure:"default_language" default:"en"`
}

const (
	LangEnglish = "en"
	LangFrench  = "fr"
	LangPidgin  = "pg"
)

// SeedLanguageCodes returns the language codes bundled with the seeder.
// The authoritative set lives in the languages table; this is the fallback
// used before that table is populated.
func SeedLanguageCodes() []string {
	return []string{LangEnglish, LangFrench, LangPidgin}
}

// IsSeedLanguage checks if the given code is one of the bundled languages.
func IsSeedLanguage(code string) bool {
	switch code {
	case LangEnglish, LangFrench, LangPidgin:
		return true
	default:
		return false
	}
}
