package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/riverfjs/threadsplit-go/internal/types"
)

// EnvPrefix 环境变量前缀，例如 THREADSPLIT_MAX_LENGTH
const EnvPrefix = "THREADSPLIT"

// FileName 默认配置文件名（不含扩展名），支持 .yaml 与 .toml
const FileName = ".threadsplit"

// SetDefaults 注册所有配置项的默认值
//
// 环境变量只对注册过的键生效，所以每个键都要在这里出现。
func SetDefaults(v *viper.Viper) {
	d := types.DefaultConfig()

	v.SetDefault("length_mode", string(d.LengthMode))
	v.SetDefault("max_length", d.MaxLength)
	v.SetDefault("policy.count_cjk_as_two", d.Policy.CountCJKAsTwo)
	v.SetDefault("remove_references", d.RemoveReferences)
	v.SetDefault("convert_markdown", d.ConvertMarkdown)
	v.SetDefault("script", string(d.Script))

	pairs := map[string]types.SymbolPair{
		"h1":     d.Markdown.H1,
		"h2":     d.Markdown.H2,
		"h3":     d.Markdown.H3,
		"bold":   d.Markdown.Bold,
		"italic": d.Markdown.Italic,
	}
	for name, p := range pairs {
		v.SetDefault("markdown."+name+".left", p.Left)
		v.SetDefault("markdown."+name+".right", p.Right)
		v.SetDefault("markdown."+name+".use_left", p.UseLeft)
	}
	v.SetDefault("markdown.list.bullet", d.Markdown.List.Bullet)
	v.SetDefault("markdown.list.custom_bullet", d.Markdown.List.CustomBullet)
	v.SetDefault("markdown.list.number_style", string(d.Markdown.List.NumberStyle))
	v.SetDefault("markdown.heading_newline", d.Markdown.HeadingNewline)
	v.SetDefault("markdown.protect_code", d.Markdown.ProtectCode)

	v.SetDefault("page_marker_enabled", d.PageMarkerEnabled)
	v.SetDefault("page_marker.format", d.PageMarker.Format)
	v.SetDefault("page_marker.position", string(d.PageMarker.Position))
	v.SetDefault("page_marker.newline_count", d.PageMarker.NewlineCount)
}

// Load 读取配置文件与环境变量
//
// configPath 为空时依次在 home 目录和当前目录查找 .threadsplit.{yaml,toml}，
// 找不到文件不算错误。返回实际使用的配置文件路径（可能为空）。
func Load(configPath string) (*types.Config, string, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, v.ConfigFileUsed(), nil
}

// Encode 以 TOML 格式输出配置
func Encode(w io.Writer, cfg *types.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
