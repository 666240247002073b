package threadsplit

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestProcess_Fits 整段放得下时不拆分也不加页码
func TestProcess_Fits(t *testing.T) {
	result, err := Process("# Title\n**bold** ([src](http://x.y))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "【Title】\n\n「bold」 "
	if result.Transformed != want {
		t.Errorf("Transformed = %q, want %q", result.Transformed, want)
	}
	if len(result.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result.Segments))
	}
	seg := result.Segments[0]
	if seg.HasMarker() {
		t.Errorf("single segment should carry no marker, got %q", seg.Marker)
	}
	if seg.Text != want || seg.Index != 1 || seg.Total != 1 {
		t.Errorf("unexpected segment %+v", seg)
	}
	if result.Passes != 0 {
		t.Errorf("Passes = %d, want 0", result.Passes)
	}
}

// TestProcess_Empty 空输入返回一个空片段
func TestProcess_Empty(t *testing.T) {
	parts, err := Split("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 1 || parts[0] != "" {
		t.Errorf("expected one empty segment, got %q", parts)
	}
}

// TestSplit_SentenceBoundary 在句点后切开
func TestSplit_SentenceBoundary(t *testing.T) {
	parts, err := Split("Hello. World.", WithMaxLength(7), WithoutPageMarker())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Hello.", " World."}
	if strings.Join(parts, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", parts, want)
	}
}

// TestSplit_TightBudget 溢出字符本身不是边界时，下一段在上限处硬切
func TestSplit_TightBudget(t *testing.T) {
	parts, err := Split("Hello. World.", WithMaxLength(5), WithoutPageMarker())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 第一段切在溢出位置的句点之后，比上限多 1
	want := []string{"Hello.", " Worl", "d."}
	if strings.Join(parts, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", parts, want)
	}
}

// TestSplit_InvalidUTF8 不做 Markdown 转换时保留原始字节
func TestSplit_InvalidUTF8(t *testing.T) {
	text := "a\xffb. c"
	parts, err := Split(text, WithMaxLength(4), WithoutPageMarker(), WithoutMarkdown())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(parts, "") != text {
		t.Errorf("got %q, want pieces of %q", parts, text)
	}
	if len(parts) != 2 || parts[0] != "a\xffb." {
		t.Errorf("unexpected split %q", parts)
	}
}

// TestProcess_PageMarkers 页码长度变化触发第二轮拆分
func TestProcess_PageMarkers(t *testing.T) {
	result, err := Process(strings.Repeat("a", 50), WithMaxLength(30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Passes != 2 {
		t.Errorf("Passes = %d, want 2", result.Passes)
	}
	want := []string{
		strings.Repeat("a", 18) + "\n\nPage (1/3)",
		strings.Repeat("a", 18) + "\n\nPage (2/3)",
		strings.Repeat("a", 14) + "\n\nPage (3/3)",
	}
	texts := result.Texts()
	if len(texts) != len(want) {
		t.Fatalf("expected %d segments, got %d: %q", len(want), len(texts), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, texts[i], want[i])
		}
	}
	if result.MaxLength() != 30 {
		t.Errorf("MaxLength() = %d, want 30", result.MaxLength())
	}
}

// TestProcess_TopMarker 页码放在顶部
func TestProcess_TopMarker(t *testing.T) {
	parts, err := Split("Hello. World. Again.",
		WithMaxLength(19),
		WithPageMarker(PageMarkerFormat{Format: "(n/m)", Position: PositionTop, NewlineCount: 1}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"(1/2)\nHello. World.", "(2/2)\n Again."}
	if strings.Join(parts, "|") != strings.Join(want, "|") {
		t.Errorf("got %q, want %q", parts, want)
	}
}

// TestProcess_MarkerConsistency 每个页码的 m 等于总数，n 依次递增
func TestProcess_MarkerConsistency(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, "Sentence number %d is here. ", i)
	}
	result, err := Process(sb.String(), WithMaxLength(120))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k := len(result.Segments)
	if k < 2 {
		t.Fatalf("expected pagination, got %d segment", k)
	}
	for i, seg := range result.Segments {
		want := fmt.Sprintf("Page (%d/%d)", i+1, k)
		if seg.Marker != want {
			t.Errorf("segment %d marker = %q, want %q", i, seg.Marker, want)
		}
		if seg.Total != k || seg.Index != i+1 {
			t.Errorf("segment %d index/total = %d/%d", i, seg.Index, seg.Total)
		}
	}
	if strings.Join(result.Bodies(), "") != result.Transformed {
		t.Error("bodies do not reproduce the transformed text")
	}
}

// TestProcess_Reconcatenation 关闭页码时拼接片段还原转换后的文本
func TestProcess_Reconcatenation(t *testing.T) {
	input := "# 标题\n\n第一段。（括号里的。内容）继续。\n\n- 项目一\n- 项目二\n\n1. 第一\n2. 第二\n\nEnd. [x] done."
	for _, max := range []int{3, 7, 15, 40} {
		result, err := Process(input, WithMaxLength(max), WithoutPageMarker(), WithCountCJKAsTwo(true))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.Join(result.Texts(), ""); got != result.Transformed {
			t.Errorf("max %d: joined %q, want %q", max, got, result.Transformed)
		}
	}
}

// TestProcess_NoSplit 不拆分模式返回全文
func TestProcess_NoSplit(t *testing.T) {
	text := strings.Repeat("a", 600)
	result, err := Process(text, WithNoSplit())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Segments) != 1 || result.Segments[0].Text != text {
		t.Fatalf("expected whole text as one segment")
	}
	if result.Segments[0].Length != 600 || result.Passes != 0 {
		t.Errorf("unexpected segment %d / passes %d", result.Segments[0].Length, result.Passes)
	}
}

// TestProcess_HardCut 520 个无边界字符按 500 硬切
func TestProcess_HardCut(t *testing.T) {
	parts, err := Split(strings.Repeat("a", 520), WithoutPageMarker())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 2 || len(parts[0]) != 500 || len(parts[1]) != 20 {
		t.Errorf("unexpected split: %d parts", len(parts))
	}
}

// TestProcess_InvalidConfig 配置无效时返回 ErrInvalidConfig
func TestProcess_InvalidConfig(t *testing.T) {
	if _, err := Process("x", WithMaxLength(0)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	cfg := DefaultConfig().Clone()
	cfg.Script = "sideways"
	if _, err := Process("x", WithConfig(cfg)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

// TestOptions_DoNotMutateDefault 选项只修改副本
func TestOptions_DoNotMutateDefault(t *testing.T) {
	if _, err := Process("abc", WithMaxLength(10), WithCountCJKAsTwo(true), WithoutMarkdown()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := DefaultConfig()
	if cfg.LengthMode != LengthModeThreads || cfg.MaxLength != ThreadsMaxLength {
		t.Errorf("default config mutated: %+v", cfg)
	}
	if cfg.Policy.CountCJKAsTwo || !cfg.ConvertMarkdown {
		t.Errorf("default config mutated: %+v", cfg)
	}
}

// TestWithConfig_Copied WithConfig 之后修改原配置不影响结果
func TestWithConfig_Copied(t *testing.T) {
	cfg := DefaultConfig().Clone()
	cfg.ConvertMarkdown = false
	opt := WithConfig(cfg)
	cfg.ConvertMarkdown = true

	out, err := Convert("**x**", opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "**x**" {
		t.Errorf("got %q, want markdown untouched", out)
	}

	// 同一个 option 多次使用，每次都拿到独立副本
	if _, err := Process("**y**", opt, WithMaxLength(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err = Convert("**x**", opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "**x**" {
		t.Errorf("reused option: got %q, want markdown untouched", out)
	}
}

// TestWithConfig_Nil nil 配置保持默认
func TestWithConfig_Nil(t *testing.T) {
	out, err := Convert("**x**", WithConfig(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "「x」" {
		t.Errorf("got %q, want default markdown conversion", out)
	}
}

// TestLength CJK 宽度策略
func TestLength(t *testing.T) {
	if got := Length("A中", true); got != 3 {
		t.Errorf("Length(A中, true) = %d, want 3", got)
	}
	if got := Length("A中", false); got != 2 {
		t.Errorf("Length(A中, false) = %d, want 2", got)
	}
	if got := CountText("かな", WithCountCJKAsTwo(true)); got != 4 {
		t.Errorf("CountText = %d, want 4", got)
	}
	if got := CountText(""); got != 0 {
		t.Errorf("CountText(empty) = %d, want 0", got)
	}
}

// TestProcess_Logging 调试日志记录拆分结果
func TestProcess_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	if _, err := Process(strings.Repeat("a", 50), WithMaxLength(30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := logs.FilterMessage("split done").All()
	if len(entries) != 1 {
		t.Fatalf("expected one split log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["segments"]; got != int64(3) {
		t.Errorf("segments field = %v, want 3", got)
	}
}
