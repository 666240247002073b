package threadsplit

import (
	"sync"

	"github.com/riverfjs/threadsplit-go/internal/types"
)

// 导出类型别名
type Config = types.Config
type LengthPolicy = types.LengthPolicy
type LengthMode = types.LengthMode
type SymbolPair = types.SymbolPair
type ListSettings = types.ListSettings
type NumberStyle = types.NumberStyle
type MarkdownSettings = types.MarkdownSettings
type Position = types.Position
type PageMarkerFormat = types.PageMarkerFormat
type ScriptDirection = types.ScriptDirection

const (
	ThreadsMaxLength = types.ThreadsMaxLength

	LengthModeThreads = types.LengthModeThreads
	LengthModeCustom  = types.LengthModeCustom
	LengthModeNone    = types.LengthModeNone

	NumberStyleNone          = types.NumberStyleNone
	NumberStyleCircled       = types.NumberStyleCircled
	NumberStyleParenthesized = types.NumberStyleParenthesized

	PositionTop    = types.PositionTop
	PositionBottom = types.PositionBottom

	ScriptNone          = types.ScriptNone
	ScriptToSimplified  = types.ScriptToSimplified
	ScriptToTraditional = types.ScriptToTraditional

	CustomBullet = types.CustomBullet
)

// ErrInvalidConfig 配置校验失败，用 errors.Is 判断
var ErrInvalidConfig = types.ErrInvalidConfig

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
//
// The returned value is shared; options always work on a copy, never modify it.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}

// DefaultMarkdownSettings returns the default markdown symbols.
func DefaultMarkdownSettings() MarkdownSettings {
	return types.DefaultMarkdownSettings()
}

// DefaultPageMarkerFormat returns the default "Page (n/m)" marker.
func DefaultPageMarkerFormat() PageMarkerFormat {
	return types.DefaultPageMarkerFormat()
}
