package threadsplit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/riverfjs/threadsplit-go/internal/converter"
	"github.com/riverfjs/threadsplit-go/internal/types"
)

// Convert 执行拆分前的文本转换，不拆分
//
// 顺序固定：移除参考链接 → 繁简转换 → Markdown 转符号。
// 各步骤是否执行由配置决定。
//
// 参数:
//   - text: 原始文本
//   - opts: 配置选项
//
// 返回:
//   - string: 转换后的文本
//   - error: 配置无效或繁简转换失败
func Convert(text string, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	if err := options.Config.Validate(); err != nil {
		return "", err
	}
	return transform(text, options)
}

func transform(text string, options *ProcessOptions) (string, error) {
	cfg := options.Config

	if cfg.RemoveReferences {
		stripped := converter.StripReferenceLinks(text)
		if len(stripped) != len(text) {
			Logger.Debug("removed reference links", zap.Int("bytes", len(text)-len(stripped)))
		}
		text = stripped
	}

	if cfg.Script != "" && cfg.Script != types.ScriptNone {
		converted, err := options.Converter.Convert(text, cfg.Script)
		if err != nil {
			return "", fmt.Errorf("script conversion %s: %w", cfg.Script, err)
		}
		Logger.Debug("converted script", zap.String("direction", string(cfg.Script)))
		text = converted
	}

	if cfg.ConvertMarkdown {
		text = converter.TransformMarkup(text, cfg.Markdown)
		Logger.Debug("transformed markup",
			zap.Strings("rules", converter.RuleNames()),
			zap.Bool("protect_code", cfg.Markdown.ProtectCode))
	}

	return text, nil
}
