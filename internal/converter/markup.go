package converter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/riverfjs/threadsplit-go/internal/types"
)

var (
	h1Re = regexp.MustCompile(`(?m)^# (.+)$`)
	h2Re = regexp.MustCompile(`(?m)^## (.+)$`)
	h3Re = regexp.MustCompile(`(?m)^### (.+)$`)

	// 粗体与斜体需要跳过转义的星号，RE2 不支持后行断言，改用 regexp2
	boldRe   = regexp2.MustCompile(`(?<!\\)\*\*(.+?)(?<!\\)\*\*`, regexp2.None)
	italicRe = regexp2.MustCompile(`(?<!\\)\*(.+?)(?<!\\)\*`, regexp2.None)

	unorderedRe = regexp.MustCompile(`(?m)^([ \t]*)[-*+] `)
	orderedRe   = regexp.MustCompile(`(?m)^([ \t]*)(\d+)\. `)
)

// markupRule 一条改写规则，按 markupRules 中的顺序依次执行
type markupRule struct {
	name  string
	apply func(text string, s *types.MarkdownSettings) string
}

// markupRules Markdown 改写管道
//
// 顺序是约定的一部分：标题先于强调；粗体必须先于斜体，
// 否则 ** 会被斜体规则拆开；列表最后处理。
var markupRules = []markupRule{
	{"h1", headingRule(h1Re, func(s *types.MarkdownSettings) types.SymbolPair { return s.H1 })},
	{"h2", headingRule(h2Re, func(s *types.MarkdownSettings) types.SymbolPair { return s.H2 })},
	{"h3", headingRule(h3Re, func(s *types.MarkdownSettings) types.SymbolPair { return s.H3 })},
	{"bold", emphasisRule(boldRe, func(s *types.MarkdownSettings) types.SymbolPair { return s.Bold })},
	{"italic", emphasisRule(italicRe, func(s *types.MarkdownSettings) types.SymbolPair { return s.Italic })},
	{"unordered_list", unorderedListRule},
	{"ordered_list", orderedListRule},
}

// RuleNames 返回改写规则的执行顺序
func RuleNames() []string {
	names := make([]string, len(markupRules))
	for i, r := range markupRules {
		names[i] = r.name
	}
	return names
}

// TransformMarkup 将标题、强调、列表语法替换为配置的符号
//
// 这是按行的正则改写，不是完整的 Markdown 解析；嵌套或不规范的语法只做尽力处理。
func TransformMarkup(text string, settings types.MarkdownSettings) string {
	var guard *CodeGuard
	if settings.ProtectCode {
		text, guard = ProtectCode(text)
	}
	for _, rule := range markupRules {
		text = rule.apply(text, &settings)
	}
	if guard != nil {
		text = guard.Restore(text)
	}
	return text
}

func headingRule(re *regexp.Regexp, pick func(*types.MarkdownSettings) types.SymbolPair) func(string, *types.MarkdownSettings) string {
	return func(text string, s *types.MarkdownSettings) string {
		pair := pick(s)
		newline := ""
		if s.HeadingNewline {
			newline = "\n"
		}
		return replaceGroups(re, text, func(groups []string) string {
			return pair.Wrap(groups[1]) + newline
		})
	}
}

func emphasisRule(re *regexp2.Regexp, pick func(*types.MarkdownSettings) types.SymbolPair) func(string, *types.MarkdownSettings) string {
	return func(text string, s *types.MarkdownSettings) string {
		pair := pick(s)
		out, err := re.ReplaceFunc(text, func(m regexp2.Match) string {
			return pair.Wrap(m.GroupByNumber(1).String())
		}, -1, -1)
		if err != nil {
			return text
		}
		return out
	}
}

func unorderedListRule(text string, s *types.MarkdownSettings) string {
	bullet := s.List.BulletSymbol()
	return replaceGroups(unorderedRe, text, func(groups []string) string {
		return groups[1] + bullet
	})
}

// orderedListRule 1-10 换成编号符号，超过 10 或未启用时保留原样
func orderedListRule(text string, s *types.MarkdownSettings) string {
	table := s.List.NumberTable()
	if table == nil {
		return text
	}
	return replaceGroups(orderedRe, text, func(groups []string) string {
		n, err := strconv.Atoi(groups[2])
		if err != nil || n < 1 || n > len(table) {
			return groups[0]
		}
		return groups[1] + table[n-1] + " "
	})
}

// replaceGroups 用 fn 的返回值替换 re 的每个匹配，groups[0] 为整个匹配
func replaceGroups(re *regexp.Regexp, text string, fn func(groups []string) string) string {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, loc := range locs {
		sb.WriteString(text[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for g := range groups {
			if loc[2*g] >= 0 {
				groups[g] = text[loc[2*g]:loc[2*g+1]]
			}
		}
		sb.WriteString(fn(groups))
		last = loc[1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}
