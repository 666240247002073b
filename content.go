package threadsplit

// Segment 一条最终贴文
type Segment struct {
	Index  int    `json:"index"`  // 从 1 开始
	Total  int    `json:"total"`  // 片段总数
	Body   string `json:"body"`   // 原文部分
	Marker string `json:"marker"` // 页码标记，未加标记时为空
	Text   string `json:"text"`   // 实际显示的文本
	Length int    `json:"length"` // Text 的显示长度
}

// String returns the displayed text.
func (s Segment) String() string {
	return s.Text
}

// HasMarker reports whether a page marker was added.
func (s Segment) HasMarker() bool {
	return s.Marker != ""
}

// Result 一次处理的完整结果
type Result struct {
	Input       string    `json:"input"`
	Transformed string    `json:"transformed"` // 拆分前转换后的文本
	Segments    []Segment `json:"segments"`
	Passes      int       `json:"passes"` // 拆分轮数：0 未拆分，1 或 2
}

// Texts returns the displayed text of every segment in order.
func (r *Result) Texts() []string {
	texts := make([]string, len(r.Segments))
	for i, s := range r.Segments {
		texts[i] = s.Text
	}
	return texts
}

// Bodies returns the segment bodies without markers.
//
// Joining the bodies reproduces Transformed exactly.
func (r *Result) Bodies() []string {
	bodies := make([]string, len(r.Segments))
	for i, s := range r.Segments {
		bodies[i] = s.Body
	}
	return bodies
}

// MaxLength returns the longest segment length.
func (r *Result) MaxLength() int {
	longest := 0
	for _, s := range r.Segments {
		if s.Length > longest {
			longest = s.Length
		}
	}
	return longest
}
