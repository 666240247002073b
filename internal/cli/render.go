package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	threadsplit "github.com/riverfjs/threadsplit-go"
)

// previewWidth --stats 预览列的显示宽度
const previewWidth = 40

// renderSegments 输出每段内容，段前加标题行 "── 1/3 · 482 ──"
func renderSegments(w io.Writer, result *threadsplit.Result, noColor bool) {
	header := color.New(color.FgCyan, color.Bold)
	if noColor {
		header.DisableColor()
	}
	for i, seg := range result.Segments {
		header.Fprintf(w, "── %d/%d · %d ──\n", seg.Index, seg.Total, seg.Length)
		fmt.Fprintln(w, seg.Text)
		if i < len(result.Segments)-1 {
			fmt.Fprintln(w)
		}
	}
}

// renderStats 输出每段长度与预览
func renderStats(w io.Writer, result *threadsplit.Result, maxLength int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	tw.AppendHeader(table.Row{"#", "LENGTH", "PREVIEW"})
	for _, seg := range result.Segments {
		tw.AppendRow(table.Row{seg.Index, seg.Length, preview(seg.Body)})
	}
	tw.AppendSeparator()
	footer := fmt.Sprintf("%d segments, %d passes", len(result.Segments), result.Passes)
	if maxLength > 0 {
		footer += fmt.Sprintf(", max %d", maxLength)
	}
	tw.AppendRow(table.Row{"", result.MaxLength(), footer})

	tw.SetStyle(table.StyleLight)
	fmt.Fprintln(w)
	tw.Render()
}

// preview 把正文压成一行并按显示宽度截断
func preview(body string) string {
	line := strings.Join(strings.Fields(body), " ")
	return runewidth.Truncate(line, previewWidth, "…")
}

func renderJSON(w io.Writer, result *threadsplit.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
