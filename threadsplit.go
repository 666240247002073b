// Package threadsplit 把长文本拆分为适合社交平台贴文的片段
//
// 这个包提供了将任意文本（包括 LLM 输出、Markdown 笔记等）拆分为
// 若干条长度受限的贴文的功能，默认按 Threads 的 500 字上限。
//
// 核心功能：
//   - 按句子边界（\n、。、.）拆分，不切开括号内的内容
//   - 可选把中日文字符按 2 个长度计算
//   - 自动添加页码标记，例如 "Page (1/3)"
//   - 将 Markdown 标题、粗体、斜体、列表替换为符号
//   - 移除 ([文字](URL)) 形式的参考链接
//   - 繁简转换（OpenCC）
//
// 主要 API：
//   - Split(): 返回拆分后的文本列表
//   - Process(): 返回完整结果，包括每段的正文、页码与长度
//   - Convert(): 只做拆分前的文本转换
//
// 示例：
//
//	// 按默认配置拆分
//	parts, err := threadsplit.Split(text)
//
//	// 自定义长度并关闭页码
//	result, err := threadsplit.Process(text,
//	    threadsplit.WithMaxLength(280),
//	    threadsplit.WithoutPageMarker(),
//	)
//	for _, seg := range result.Segments {
//	    fmt.Println(seg.Index, seg.Length, seg.Text)
//	}
package threadsplit

// Split 将文本拆分为贴文片段
//
// 这是 Process 的简化版本，只返回每段最终显示的文本（含页码标记）。
// 不拆分模式下返回只含转换后全文的单元素列表。空输入返回一个空字符串。
// 输入应为合法 UTF-8，非法字节的处理见 Process。
//
// 参数：
//   - text: 原始文本
//   - opts: 配置选项，未指定时使用 DefaultConfig()
//
// 返回：
//   - []string: 按顺序排列的片段
//   - error: 配置无效或繁简转换失败
func Split(text string, opts ...Option) ([]string, error) {
	result, err := Process(text, opts...)
	if err != nil {
		return nil, err
	}
	return result.Texts(), nil
}
