package config

const (
	defaultSourceDir = "~/.local/share/gavel/source"
	defaultOutputDir = "~/.local/share/gavel/data"
	defaultLogDir    = "~/.local/share/gavel/logs"

	defaultAlignmentMinShared    = 10
	defaultCloseVoteMargin       = 2
	defaultMaxTopics             = 3
	defaultFulltextClassifyBytes = 500
	defaultPreviewBytes          = 200

	defaultArchivePath = "~/.local/share/gavel/archive.db"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir: defaultSourceDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Pipeline: Pipeline{
			AlignmentMinShared:    defaultAlignmentMinShared,
			CloseVoteMargin:       defaultCloseVoteMargin,
			MaxTopics:             defaultMaxTopics,
			FulltextClassifyBytes: defaultFulltextClassifyBytes,
			PreviewBytes:          defaultPreviewBytes,
		},
		Archive: Archive{
			Enabled: false,
			Path:    defaultArchivePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
