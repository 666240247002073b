package threadsplit

import (
	"go.uber.org/zap"

	"github.com/riverfjs/threadsplit-go/internal/splitter"
	"github.com/riverfjs/threadsplit-go/internal/types"
)

// Process 完整管道：原始文本 → 转换 → 拆分 → 加页码
//
// 步骤：
//  1. 按配置移除参考链接、繁简转换、Markdown 转符号
//  2. 不拆分模式直接返回转换后的全文
//  3. 否则按上限拆分；启用页码时预留页码长度，必要时再拆一次
//
// 拆分本身不会失败：极小的上限会退化为逐字切分。
// 返回的错误只来自配置校验和繁简转换。
//
// 拆分直接切原字符串，非法 UTF-8 字节按一个字符计长并原样保留；
// 但 Markdown 转换与繁简转换按字符处理，可能把它们替换为 U+FFFD。
func Process(text string, opts ...Option) (*Result, error) {
	options := applyOptions(opts...)
	cfg := options.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transformed, err := transform(text, options)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Input:       text,
		Transformed: transformed,
	}
	cjk := cfg.Policy.CountCJKAsTwo

	if !cfg.Split() {
		result.Segments = []Segment{{
			Index:  1,
			Total:  1,
			Body:   transformed,
			Text:   transformed,
			Length: Length(transformed, cjk),
		}}
		Logger.Debug("split disabled", zap.Int("length", result.Segments[0].Length))
		return result, nil
	}

	var marker *types.PageMarkerFormat
	if cfg.PageMarkerEnabled {
		m := cfg.PageMarker
		marker = &m
	}

	maxLength := cfg.EffectiveMaxLength()
	pagination := splitter.Paginate(transformed, maxLength, marker, cjk)
	result.Passes = pagination.Passes
	result.Segments = make([]Segment, len(pagination.Pages))
	for i, p := range pagination.Pages {
		result.Segments[i] = Segment{
			Index:  p.Index,
			Total:  p.Total,
			Body:   p.Body,
			Marker: p.Marker,
			Text:   p.Text,
			Length: p.Length,
		}
		if p.Length > maxLength {
			Logger.Warn("segment exceeds max length",
				zap.Int("index", p.Index),
				zap.Int("length", p.Length),
				zap.Int("max", maxLength))
		}
	}

	Logger.Debug("split done",
		zap.Int("segments", len(result.Segments)),
		zap.Int("passes", result.Passes),
		zap.Int("max_length", maxLength),
		zap.Bool("cjk_as_two", cjk))
	return result, nil
}
