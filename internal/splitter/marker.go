package splitter

import (
	"strconv"
	"strings"

	"github.com/riverfjs/threadsplit-go/internal/buffer"
	"github.com/riverfjs/threadsplit-go/internal/types"
	"github.com/riverfjs/threadsplit-go/internal/util"
)

// guessPageCount 首轮估算页码长度时假定的页数
const guessPageCount = 99

// Page 一个最终片段
type Page struct {
	Index  int    // 从 1 开始
	Total  int    // 生成时的总片段数
	Body   string // 原文部分
	Marker string // 页码标记，未加标记时为空
	Text   string // Body + 换行 + Marker（或 Marker + 换行 + Body）
	Length int    // Text 的显示长度
}

// Pagination 分页结果
type Pagination struct {
	Pages  []Page
	Passes int // 实际执行的拆分轮数：0 表示整段放得下，未拆分
}

// FormatMarker 把格式中第一个 n 替换为 current、第一个 m 替换为 total
func FormatMarker(format string, current, total int) string {
	marker := strings.Replace(format, "n", strconv.Itoa(current), 1)
	return strings.Replace(marker, "m", strconv.Itoa(total), 1)
}

// MarkerLength 返回 total 页时页码标记占用的长度（含换行）
func MarkerLength(f types.PageMarkerFormat, total int, countCJKAsTwo bool) int {
	return util.DisplayLength(FormatMarker(f.Format, total, total), countCJKAsTwo) + f.NewlineCount
}

// Paginate 拆分 text 并在每段加上页码标记
//
// 页码长度取决于总页数，而总页数又取决于留给正文的长度。先按 99 页估算
// 页码长度拆一次；若实际页数对应的页码长度不同，用实际长度再拆一次。
// marker 为 nil 时不加页码，直接按 maxLength 拆分。
func Paginate(text string, maxLength int, marker *types.PageMarkerFormat, countCJKAsTwo bool) Pagination {
	if util.DisplayLength(text, countCJKAsTwo) <= maxLength {
		return Pagination{Pages: []Page{plainPage(text, 1, 1, countCJKAsTwo)}}
	}

	if marker == nil {
		bodies := Segment(text, clampAllowed(maxLength), countCJKAsTwo)
		pages := make([]Page, len(bodies))
		for i, body := range bodies {
			pages[i] = plainPage(body, i+1, len(bodies), countCJKAsTwo)
		}
		return Pagination{Pages: pages, Passes: 1}
	}

	f := marker.Normalize()
	guess := MarkerLength(f, guessPageCount, countCJKAsTwo)
	bodies := Segment(text, clampAllowed(maxLength-guess), countCJKAsTwo)
	passes := 1

	if actual := MarkerLength(f, len(bodies), countCJKAsTwo); actual != guess {
		bodies = Segment(text, clampAllowed(maxLength-actual), countCJKAsTwo)
		passes++
	}

	total := len(bodies)
	pages := make([]Page, total)
	tb := buffer.New(countCJKAsTwo)
	for i, body := range bodies {
		tb.Reset()
		m := FormatMarker(f.Format, i+1, total)
		if f.Position == types.PositionTop {
			tb.Write(m)
			tb.WriteRepeat("\n", f.NewlineCount)
			tb.Write(body)
		} else {
			tb.Write(body)
			tb.WriteRepeat("\n", f.NewlineCount)
			tb.Write(m)
		}
		pages[i] = Page{
			Index:  i + 1,
			Total:  total,
			Body:   body,
			Marker: m,
			Text:   tb.String(),
			Length: tb.Length(),
		}
	}
	return Pagination{Pages: pages, Passes: passes}
}

func plainPage(body string, index, total int, countCJKAsTwo bool) Page {
	return Page{
		Index:  index,
		Total:  total,
		Body:   body,
		Text:   body,
		Length: util.DisplayLength(body, countCJKAsTwo),
	}
}

func clampAllowed(allowed int) int {
	if allowed < 1 {
		return 1
	}
	return allowed
}
