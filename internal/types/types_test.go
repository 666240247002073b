package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSymbolPair_Wrap 测试左右符号
func TestSymbolPair_Wrap(t *testing.T) {
	assert.Equal(t, "【x】", SymbolPair{Left: "【", Right: "】"}.Wrap("x"))
	assert.Equal(t, "`x`", SymbolPair{Left: "`", Right: "'", UseLeft: true}.Wrap("x"))
}

// TestListSettings 测试项目符号与编号表
func TestListSettings(t *testing.T) {
	l := ListSettings{Bullet: "•", CustomBullet: "👉"}
	assert.Equal(t, "•", l.BulletSymbol())
	l.Bullet = CustomBullet
	assert.Equal(t, "👉", l.BulletSymbol())

	assert.Nil(t, ListSettings{NumberStyle: NumberStyleNone}.NumberTable())
	assert.Len(t, ListSettings{NumberStyle: NumberStyleCircled}.NumberTable(), 10)
	assert.Equal(t, "⑽", ListSettings{NumberStyle: NumberStyleParenthesized}.NumberTable()[9])
}

// TestBracketPairs_Disjoint 括号对之间不共享字符
func TestBracketPairs_Disjoint(t *testing.T) {
	seen := map[rune]bool{}
	for _, p := range BracketPairs {
		assert.False(t, seen[p.Open], "%q", p.Open)
		assert.False(t, seen[p.Close], "%q", p.Close)
		seen[p.Open], seen[p.Close] = true, true
	}
}

// TestPageMarkerFormat_Normalize 换行数限制在 [1,5]
func TestPageMarkerFormat_Normalize(t *testing.T) {
	assert.Equal(t, 1, PageMarkerFormat{NewlineCount: 0}.Normalize().NewlineCount)
	assert.Equal(t, 5, PageMarkerFormat{NewlineCount: 9}.Normalize().NewlineCount)
	assert.Equal(t, 3, PageMarkerFormat{NewlineCount: 3}.Normalize().NewlineCount)
	assert.Equal(t, PositionBottom, PageMarkerFormat{Position: "left"}.Normalize().Position)
	assert.Equal(t, PositionTop, PageMarkerFormat{Position: PositionTop}.Normalize().Position)
}

// TestConfig_EffectiveMaxLength 测试长度模式
func TestConfig_EffectiveMaxLength(t *testing.T) {
	c := DefaultConfig()
	c.MaxLength = 100
	assert.Equal(t, ThreadsMaxLength, c.EffectiveMaxLength())
	assert.True(t, c.Split())

	c.LengthMode = LengthModeCustom
	assert.Equal(t, 100, c.EffectiveMaxLength())
	c.MaxLength = -3
	assert.Equal(t, 1, c.EffectiveMaxLength())

	c.LengthMode = LengthModeNone
	assert.Equal(t, 0, c.EffectiveMaxLength())
	assert.False(t, c.Split())
}

// TestConfig_Clone 副本互不影响
func TestConfig_Clone(t *testing.T) {
	c := DefaultConfig()
	cp := c.Clone()
	cp.Markdown.H1.Left = "X"
	cp.PageMarker.Format = "n"
	assert.Equal(t, "【", c.Markdown.H1.Left)
	assert.Equal(t, "Page (n/m)", c.PageMarker.Format)
}

// TestConfig_Validate 测试配置校验
func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
		key    string
	}{
		{"length mode", func(c *Config) { c.LengthMode = "huge" }, "length_mode"},
		{"custom max length", func(c *Config) { c.LengthMode = LengthModeCustom; c.MaxLength = 0 }, "max_length"},
		{"number style", func(c *Config) { c.Markdown.List.NumberStyle = "roman" }, "number_style"},
		{"custom bullet", func(c *Config) { c.Markdown.List.Bullet = CustomBullet }, "custom_bullet"},
		{"position", func(c *Config) { c.PageMarker.Position = "left" }, "position"},
		{"script", func(c *Config) { c.Script = "klingon" }, "script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

// TestConfig_ValidateEmptyPosition 未设置位置按 bottom 处理
func TestConfig_ValidateEmptyPosition(t *testing.T) {
	c := &Config{LengthMode: LengthModeCustom, MaxLength: 100}
	require.NoError(t, c.Validate())

	c.PageMarkerEnabled = true
	require.NoError(t, c.Validate())
	assert.Equal(t, PositionBottom, c.PageMarker.Normalize().Position)
}
