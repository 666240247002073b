package splitter

import "github.com/riverfjs/threadsplit-go/internal/util"

// isBoundary 句子边界字符：换行、全角句号、半角句点
func isBoundary(r rune) bool {
	return r == '\n' || r == '。' || r == '.'
}

// Cutter 查找安全切割点，内部缓冲在多次调用间复用
type Cutter struct {
	tracker bracketTracker
	inside  []bool // inside[k]: 处理完 text[k] 后是否仍在括号内
}

// FindCut 使用一次性的 Cutter 查找切割点
func FindCut(text []rune, allowed int, countCJKAsTwo bool) int {
	var c Cutter
	return c.Find(text, allowed, countCJKAsTwo)
}

// Find 返回下一段的结束位置（rune 下标，不含）
//
// 整段放得下时返回 len(text)。否则向前累计长度，一旦超过 allowed，
// 就从当前位置往回找最近的、不在括号内的边界字符，切在它后面；
// 找不到时在当前位置硬切。
// 开头的空格和制表符总是归入本段，不作为切割点。
// 非空输入的返回值至少为 1。
func (c *Cutter) Find(text []rune, allowed int, countCJKAsTwo bool) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	c.tracker.reset()
	c.inside = c.inside[:0]

	i := 0
	for i < n && (text[i] == ' ' || text[i] == '\t') {
		c.inside = append(c.inside, false)
		i++
	}
	accumulated := i

	for ; i < n; i++ {
		r := text[i]
		c.tracker.feed(r)
		c.inside = append(c.inside, c.tracker.inside())
		accumulated += util.RuneLength(r, countCJKAsTwo)

		if accumulated > allowed {
			for j := i; j >= 0; j-- {
				if isBoundary(text[j]) && !c.inside[j] {
					return j + 1
				}
			}
			// 此前所有不在括号内的边界都已被上面的回扫覆盖
			if i == 0 {
				return 1
			}
			return i
		}
	}
	return n
}
