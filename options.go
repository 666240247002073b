package threadsplit

import (
	"github.com/riverfjs/threadsplit-go/internal/script"
)

// ScriptConverter 繁简转换器，可替换为自定义实现
type ScriptConverter = script.Converter

// ProcessOptions holds options for text processing.
type ProcessOptions struct {
	Config    *Config
	Converter ScriptConverter
}

// Option is a function that configures ProcessOptions.
//
// Options are applied in order; WithConfig replaces everything set before it.
type Option func(*ProcessOptions)

// WithConfig sets a custom Config. The config is copied when the option is
// created, so later changes to config do not leak into it.
func WithConfig(config *Config) Option {
	if config == nil {
		return func(*ProcessOptions) {}
	}
	cp := config.Clone()
	return func(opts *ProcessOptions) {
		opts.Config = cp.Clone()
	}
}

// WithMaxLength switches to custom length mode with the given limit.
func WithMaxLength(n int) Option {
	return func(opts *ProcessOptions) {
		opts.Config.LengthMode = LengthModeCustom
		opts.Config.MaxLength = n
	}
}

// WithNoSplit disables segmentation; the transformed text is returned whole.
func WithNoSplit() Option {
	return func(opts *ProcessOptions) {
		opts.Config.LengthMode = LengthModeNone
	}
}

// WithCountCJKAsTwo sets whether CJK characters count as two.
func WithCountCJKAsTwo(enable bool) Option {
	return func(opts *ProcessOptions) {
		opts.Config.Policy.CountCJKAsTwo = enable
	}
}

// WithMarkdown enables markdown conversion with the given symbols.
func WithMarkdown(settings MarkdownSettings) Option {
	return func(opts *ProcessOptions) {
		opts.Config.ConvertMarkdown = true
		opts.Config.Markdown = settings
	}
}

// WithoutMarkdown disables markdown conversion.
func WithoutMarkdown() Option {
	return func(opts *ProcessOptions) {
		opts.Config.ConvertMarkdown = false
	}
}

// WithPageMarker enables page markers with the given format.
func WithPageMarker(format PageMarkerFormat) Option {
	return func(opts *ProcessOptions) {
		if format.Position == "" {
			format.Position = PositionBottom
		}
		opts.Config.PageMarkerEnabled = true
		opts.Config.PageMarker = format
	}
}

// WithoutPageMarker disables page markers.
func WithoutPageMarker() Option {
	return func(opts *ProcessOptions) {
		opts.Config.PageMarkerEnabled = false
	}
}

// WithRemoveReferences sets whether ([text](url)) references are removed.
func WithRemoveReferences(enable bool) Option {
	return func(opts *ProcessOptions) {
		opts.Config.RemoveReferences = enable
	}
}

// WithScriptConversion sets the Traditional/Simplified conversion direction.
func WithScriptConversion(dir ScriptDirection) Option {
	return func(opts *ProcessOptions) {
		opts.Config.Script = dir
	}
}

// WithConverter sets the script converter used when conversion is requested.
func WithConverter(c ScriptConverter) Option {
	return func(opts *ProcessOptions) {
		opts.Converter = c
	}
}

// defaultProcessOptions returns the default processing options.
func defaultProcessOptions() *ProcessOptions {
	return &ProcessOptions{
		Config: DefaultConfig().Clone(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ProcessOptions {
	options := defaultProcessOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Converter == nil {
		options.Converter = script.Default()
	}
	return options
}
