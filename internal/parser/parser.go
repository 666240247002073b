package parser

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
	),
}

// Region 源文本中的字节区间 [Start, Stop)
type Region struct {
	Start int
	Stop  int
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(markdown string) (ast.Node, []byte) {
	md := goldmark.New(StandardOptions...)
	source := []byte(markdown)
	return md.Parser().Parse(text.NewReader(source)), source
}

// CodeRegions 返回代码块与行内代码内容所在的区间，按起始位置排序
//
// 围栏代码块与缩进代码块取第一行开头到最后一行结尾；行内代码取反引号之间的内容。
// 围栏本身不在区间内。
func CodeRegions(markdown string) []Region {
	root, _ := ParseAST(markdown)
	regions := make([]Region, 0)

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			if lines.Len() > 0 {
				regions = append(regions, Region{
					Start: lines.At(0).Start,
					Stop:  lines.At(lines.Len() - 1).Stop,
				})
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			start, stop := -1, -1
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				t, ok := c.(*ast.Text)
				if !ok {
					continue
				}
				if start < 0 {
					start = t.Segment.Start
				}
				stop = t.Segment.Stop
			}
			if start >= 0 && stop > start {
				regions = append(regions, Region{Start: start, Stop: stop})
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Start < regions[j].Start
	})
	return regions
}
