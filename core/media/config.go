package media

// Config holds configuration for the plant media filesystem.
type Config struct {
	// Root is the directory holding one folder per plant.
	Root string `mapstructure:"root" default:"storage/app/public/plants"`
	// PublicPrefix is the URL prefix under which the media root is served.
	PublicPrefix string `mapstructure:"public_prefix" default:"/storage/plants"`
	// ScanTimeoutSeconds bounds the scan of a single plant folder.
	ScanTimeoutSeconds int `mapstructure:"scan_timeout_seconds" default:"10"`
}
