package config

const (
	defaultStatsDir         = "~/.local/share/playtally/stats"
	defaultLogDir           = "~/.local/share/playtally/logs"
	defaultEncodingFallback = "windows-1252"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

func defaultScanExtensions() []string {
	return []string{".m3u", ".m3u8", ".txt"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StatsDir: defaultStatsDir,
			LogDir:   defaultLogDir,
		},
		Scan: Scan{
			Extensions: defaultScanExtensions(),
		},
		Header: Header{
			TimezoneOffsetHours: 0,
		},
		Encoding: Encoding{
			Fallback: defaultEncodingFallback,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
