package converter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/riverfjs/threadsplit-go/internal/parser"
)

var (
	// referenceLinkRe 匹配 ([文字](URL)) 形式的参考链接
	referenceLinkRe = regexp.MustCompile(`\(\[[^\]]*\]\([^)]*\)\)`)
)

const (
	placeholderOpen  = "\uE000"
	placeholderClose = "\uE001"
)

// StripReferenceLinks 移除 ([文字](URL)) 形式的参考链接
func StripReferenceLinks(text string) string {
	return referenceLinkRe.ReplaceAllString(text, "")
}

// CodeGuard 记录被占位符替换掉的代码内容
type CodeGuard struct {
	originals []string
}

// ProtectCode 将代码块与行内代码替换为占位符，避免被 Markdown 规则改写
//
// 占位符使用私有区字符，不含任何规则会匹配的符号。
func ProtectCode(text string) (string, *CodeGuard) {
	guard := &CodeGuard{}
	regions := parser.CodeRegions(text)
	if len(regions) == 0 {
		return text, guard
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, r := range regions {
		if r.Start < last {
			continue
		}
		sb.WriteString(text[last:r.Start])
		sb.WriteString(guard.placeholder(len(guard.originals)))
		guard.originals = append(guard.originals, text[r.Start:r.Stop])
		last = r.Stop
	}
	sb.WriteString(text[last:])
	return sb.String(), guard
}

// Len 被保护的代码片段数
func (g *CodeGuard) Len() int {
	return len(g.originals)
}

// Restore 还原所有占位符
func (g *CodeGuard) Restore(text string) string {
	if len(g.originals) == 0 {
		return text
	}
	pairs := make([]string, 0, len(g.originals)*2)
	for i, original := range g.originals {
		pairs = append(pairs, g.placeholder(i), original)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func (g *CodeGuard) placeholder(i int) string {
	return placeholderOpen + strconv.Itoa(i) + placeholderClose
}
