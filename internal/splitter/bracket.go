package splitter

import "github.com/riverfjs/threadsplit-go/internal/types"

// IsInsideBracket 报告 text[pos] 处是否位于未闭合的括号对内
//
// 从头扫描 text[0..pos]：遇到开括号入栈，遇到与栈顶配对的闭括号出栈，
// 不配对的闭括号直接忽略。扫描结束时栈非空即视为在括号内。
// 每次调用都是 O(pos)，拆分过程使用 bracketTracker 增量维护同样的状态。
func IsInsideBracket(text []rune, pos int) bool {
	if pos < 0 {
		return false
	}
	var t bracketTracker
	for i := 0; i <= pos && i < len(text); i++ {
		t.feed(text[i])
	}
	return t.inside()
}

// bracketTracker 增量维护括号栈
type bracketTracker struct {
	stack []rune
}

// feed 处理一个字符
func (t *bracketTracker) feed(r rune) {
	for _, pair := range types.BracketPairs {
		if r == pair.Open {
			t.stack = append(t.stack, pair.Open)
			return
		}
		if r == pair.Close {
			if n := len(t.stack); n > 0 && t.stack[n-1] == pair.Open {
				t.stack = t.stack[:n-1]
			}
			return
		}
	}
}

func (t *bracketTracker) inside() bool {
	return len(t.stack) > 0
}

func (t *bracketTracker) reset() {
	t.stack = t.stack[:0]
}
