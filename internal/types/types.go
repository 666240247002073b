package types

import (
	"errors"
	"fmt"
)

// ThreadsMaxLength Threads 平台单条贴文的字数上限
const ThreadsMaxLength = 500

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid config")

// LengthPolicy 长度计算策略，同一次拆分中必须保持一致
type LengthPolicy struct {
	CountCJKAsTwo bool `mapstructure:"count_cjk_as_two" toml:"count_cjk_as_two" json:"count_cjk_as_two"`
}

// BracketPair 一组开/闭括号
type BracketPair struct {
	Open  rune
	Close rune
}

// BracketPairs 拆分时不允许切开的括号对，各组之间不共享字符
var BracketPairs = []BracketPair{
	{'「', '」'},
	{'（', '）'},
	{'《', '》'},
	{'[', ']'},
	{'(', ')'},
	{'{', '}'},
}

// SymbolPair 定义 Markdown 元素替换用的左右符号
type SymbolPair struct {
	Left    string `mapstructure:"left" toml:"left" json:"left"`
	Right   string `mapstructure:"right" toml:"right" json:"right"`
	UseLeft bool   `mapstructure:"use_left" toml:"use_left" json:"use_left"`
}

// Wrap 用符号包裹内容；UseLeft 时两侧都使用左符号
func (p SymbolPair) Wrap(content string) string {
	if p.UseLeft {
		return p.Left + content + p.Left
	}
	return p.Left + content + p.Right
}

// NumberStyle 有序列表的编号样式
type NumberStyle string

const (
	NumberStyleNone          NumberStyle = "none"
	NumberStyleCircled       NumberStyle = "circled"
	NumberStyleParenthesized NumberStyle = "parenthesized"
)

// CustomBullet 选择自定义项目符号时 Bullet 的取值
const CustomBullet = "custom"

// BulletOptions 内置的项目符号，第一个为默认值
var BulletOptions = []string{"🔹", "•", "▪", "▫", "‣", "►", "▸", "➢", "➣"}

// CircledNumbers 圆圈数字，仅覆盖 1-10
var CircledNumbers = []string{"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩"}

// ParenthesizedNumbers 括号数字，仅覆盖 1-10
var ParenthesizedNumbers = []string{"⑴", "⑵", "⑶", "⑷", "⑸", "⑹", "⑺", "⑻", "⑼", "⑽"}

// ListSettings 列表替换配置
type ListSettings struct {
	Bullet       string      `mapstructure:"bullet" toml:"bullet" json:"bullet"`
	CustomBullet string      `mapstructure:"custom_bullet" toml:"custom_bullet" json:"custom_bullet,omitempty"`
	NumberStyle  NumberStyle `mapstructure:"number_style" toml:"number_style" json:"number_style"`
}

// BulletSymbol 返回实际使用的项目符号
func (l ListSettings) BulletSymbol() string {
	if l.Bullet == CustomBullet {
		return l.CustomBullet
	}
	return l.Bullet
}

// NumberTable 返回编号样式对应的符号表，none 返回 nil
func (l ListSettings) NumberTable() []string {
	switch l.NumberStyle {
	case NumberStyleCircled:
		return CircledNumbers
	case NumberStyleParenthesized:
		return ParenthesizedNumbers
	default:
		return nil
	}
}

// MarkdownSettings Markdown 转符号的配置
type MarkdownSettings struct {
	H1             SymbolPair   `mapstructure:"h1" toml:"h1" json:"h1"`
	H2             SymbolPair   `mapstructure:"h2" toml:"h2" json:"h2"`
	H3             SymbolPair   `mapstructure:"h3" toml:"h3" json:"h3"`
	Bold           SymbolPair   `mapstructure:"bold" toml:"bold" json:"bold"`
	Italic         SymbolPair   `mapstructure:"italic" toml:"italic" json:"italic"`
	List           ListSettings `mapstructure:"list" toml:"list" json:"list"`
	HeadingNewline bool         `mapstructure:"heading_newline" toml:"heading_newline" json:"heading_newline"`
	ProtectCode    bool         `mapstructure:"protect_code" toml:"protect_code" json:"protect_code"`
}

// DefaultMarkdownSettings 返回默认 Markdown 配置
func DefaultMarkdownSettings() MarkdownSettings {
	return MarkdownSettings{
		H1:     SymbolPair{Left: "【", Right: "】"},
		H2:     SymbolPair{Left: "《", Right: "》"},
		H3:     SymbolPair{Left: "『", Right: "』"},
		Bold:   SymbolPair{Left: "「", Right: "」"},
		Italic: SymbolPair{Left: "`", Right: "`", UseLeft: true},
		List: ListSettings{
			Bullet:      BulletOptions[0],
			NumberStyle: NumberStyleCircled,
		},
		HeadingNewline: true,
	}
}

// Position 页码标记的位置
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

const (
	MinNewlineCount = 1
	MaxNewlineCount = 5
)

// PageMarkerFormat 页码标记配置，Format 中的 n/m 分别替换为当前页与总页数
type PageMarkerFormat struct {
	Format       string   `mapstructure:"format" toml:"format" json:"format"`
	Position     Position `mapstructure:"position" toml:"position" json:"position"`
	NewlineCount int      `mapstructure:"newline_count" toml:"newline_count" json:"newline_count"`
}

// DefaultPageMarkerFormat 返回默认页码配置
func DefaultPageMarkerFormat() PageMarkerFormat {
	return PageMarkerFormat{
		Format:       "Page (n/m)",
		Position:     PositionBottom,
		NewlineCount: 2,
	}
}

// Normalize 将换行数限制在 [1,5]，未知位置回退到 bottom
func (f PageMarkerFormat) Normalize() PageMarkerFormat {
	if f.NewlineCount < MinNewlineCount {
		f.NewlineCount = MinNewlineCount
	}
	if f.NewlineCount > MaxNewlineCount {
		f.NewlineCount = MaxNewlineCount
	}
	if f.Position != PositionTop {
		f.Position = PositionBottom
	}
	return f
}

// LengthMode 长度模式：threads 固定 500，custom 使用自定义值，none 不拆分
type LengthMode string

const (
	LengthModeThreads LengthMode = "threads"
	LengthModeCustom  LengthMode = "custom"
	LengthModeNone    LengthMode = "none"
)

// ScriptDirection 繁简转换方向
type ScriptDirection string

const (
	ScriptNone          ScriptDirection = "none"
	ScriptToSimplified  ScriptDirection = "to-simplified"
	ScriptToTraditional ScriptDirection = "to-traditional"
)

// Config 一次处理所需的全部配置，按值传递，不共享可变状态
type Config struct {
	LengthMode        LengthMode       `mapstructure:"length_mode" toml:"length_mode" json:"length_mode"`
	MaxLength         int              `mapstructure:"max_length" toml:"max_length" json:"max_length"`
	Policy            LengthPolicy     `mapstructure:"policy" toml:"policy" json:"policy"`
	RemoveReferences  bool             `mapstructure:"remove_references" toml:"remove_references" json:"remove_references"`
	ConvertMarkdown   bool             `mapstructure:"convert_markdown" toml:"convert_markdown" json:"convert_markdown"`
	Markdown          MarkdownSettings `mapstructure:"markdown" toml:"markdown" json:"markdown"`
	PageMarkerEnabled bool             `mapstructure:"page_marker_enabled" toml:"page_marker_enabled" json:"page_marker_enabled"`
	PageMarker        PageMarkerFormat `mapstructure:"page_marker" toml:"page_marker" json:"page_marker"`
	Script            ScriptDirection  `mapstructure:"script" toml:"script" json:"script"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		LengthMode:        LengthModeThreads,
		MaxLength:         ThreadsMaxLength,
		RemoveReferences:  true,
		ConvertMarkdown:   true,
		Markdown:          DefaultMarkdownSettings(),
		PageMarkerEnabled: true,
		PageMarker:        DefaultPageMarkerFormat(),
		Script:            ScriptNone,
	}
}

// EffectiveMaxLength 根据长度模式返回实际上限；none 模式返回 0
func (c *Config) EffectiveMaxLength() int {
	switch c.LengthMode {
	case LengthModeNone:
		return 0
	case LengthModeCustom:
		if c.MaxLength < 1 {
			return 1
		}
		return c.MaxLength
	default:
		return ThreadsMaxLength
	}
}

// Split 是否需要拆分
func (c *Config) Split() bool {
	return c.LengthMode != LengthModeNone
}

// Clone 返回配置的副本
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate 校验枚举字段
func (c *Config) Validate() error {
	switch c.LengthMode {
	case LengthModeThreads, LengthModeCustom, LengthModeNone:
	default:
		return fmt.Errorf("%w: length_mode %q", ErrInvalidConfig, c.LengthMode)
	}
	if c.LengthMode == LengthModeCustom && c.MaxLength < 1 {
		return fmt.Errorf("%w: max_length must be positive, got %d", ErrInvalidConfig, c.MaxLength)
	}
	switch c.Markdown.List.NumberStyle {
	case NumberStyleNone, NumberStyleCircled, NumberStyleParenthesized, "":
	default:
		return fmt.Errorf("%w: markdown.list.number_style %q", ErrInvalidConfig, c.Markdown.List.NumberStyle)
	}
	if c.Markdown.List.Bullet == CustomBullet && c.Markdown.List.CustomBullet == "" {
		return fmt.Errorf("%w: markdown.list.custom_bullet is empty", ErrInvalidConfig)
	}
	// 空位置与 Normalize 一致，按 bottom 处理
	switch c.PageMarker.Position {
	case PositionTop, PositionBottom, "":
	default:
		return fmt.Errorf("%w: page_marker.position %q", ErrInvalidConfig, c.PageMarker.Position)
	}
	switch c.Script {
	case ScriptNone, ScriptToSimplified, ScriptToTraditional, "":
	default:
		return fmt.Errorf("%w: script %q", ErrInvalidConfig, c.Script)
	}
	return nil
}
