package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// inputEncodings 支持的输入编码；utf-8 会去掉 BOM
var inputEncodings = map[string]encoding.Encoding{
	"utf-8":     xunicode.UTF8BOM,
	"gbk":       simplifiedchinese.GBK,
	"gb18030":   simplifiedchinese.GB18030,
	"big5":      traditionalchinese.Big5,
	"shift_jis": japanese.ShiftJIS,
	"euc-jp":    japanese.EUCJP,
	"euc-kr":    korean.EUCKR,
	"utf-16le":  xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM),
	"utf-16be":  xunicode.UTF16(xunicode.BigEndian, xunicode.UseBOM),
}

func encodingNames() []string {
	names := make([]string, 0, len(inputEncodings))
	for name := range inputEncodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// readInput 读取文件或 stdin（path 为空或 "-"），按编码解码为 UTF-8
func readInput(path string, stdin io.Reader, encodingName string) (string, error) {
	enc, ok := inputEncodings[encodingName]
	if !ok {
		return "", checkChoice("encoding", encodingName, encodingNames())
	}

	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
