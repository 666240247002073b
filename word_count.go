package threadsplit

import (
	"github.com/riverfjs/threadsplit-go/internal/util"
)

// Length 计算文本的显示长度
//
// countCJKAsTwo 为 false 时等于字符数；为 true 时汉字、平假名、片假名各算 2。
func Length(text string, countCJKAsTwo bool) int {
	return util.DisplayLength(text, countCJKAsTwo)
}

// CountText 按配置的长度策略计算文本长度
//
// 参数：
//   - text: 要计数的文本
//   - opts: 只有 WithCountCJKAsTwo / WithConfig 会影响结果
//
// 返回：
//   - int: 显示长度
func CountText(text string, opts ...Option) int {
	options := applyOptions(opts...)
	return Length(text, options.Config.Policy.CountCJKAsTwo)
}
