package splitter

import "unicode/utf8"

// Segment 按 allowed 把 text 切成有序片段
//
// 片段边界不做任何 trim，依次拼接即还原输入。空输入返回一个空片段。
// 片段直接切自原字符串，非法 UTF-8 字节按一个字符计长并原样保留。
func Segment(text string, allowed int, countCJKAsTwo bool) []string {
	if text == "" {
		return []string{""}
	}
	if allowed < 1 {
		allowed = 1
	}

	runes, offsets := decodeRunes(text)
	segments := make([]string, 0, len(runes)/allowed+1)
	var cutter Cutter
	for start := 0; start < len(runes); {
		cut := cutter.Find(runes[start:], allowed, countCJKAsTwo)
		segments = append(segments, text[offsets[start]:offsets[start+cut]])
		start += cut
	}
	return segments
}

// decodeRunes 解码 text，offsets[k] 为第 k 个字符的字节起点，末尾追加 len(text)
func decodeRunes(text string) ([]rune, []int) {
	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		runes = append(runes, r)
		offsets = append(offsets, i)
		i += w
	}
	return runes, append(offsets, len(text))
}
