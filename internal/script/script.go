package script

import (
	"fmt"
	"sync"

	"github.com/longbridgeapp/opencc"

	"github.com/riverfjs/threadsplit-go/internal/types"
)

// Converter 繁简转换
type Converter interface {
	Convert(text string, dir types.ScriptDirection) (string, error)
}

// OpenCC 配置名：台湾正体与简体互转
const (
	configToTraditional = "s2tw"
	configToSimplified  = "tw2s"
)

// ConfigName 返回方向对应的 OpenCC 配置名，none 返回空串
func ConfigName(dir types.ScriptDirection) (string, error) {
	switch dir {
	case types.ScriptNone, "":
		return "", nil
	case types.ScriptToTraditional:
		return configToTraditional, nil
	case types.ScriptToSimplified:
		return configToSimplified, nil
	default:
		return "", fmt.Errorf("unknown script direction %q", dir)
	}
}

type lazyDict struct {
	once sync.Once
	cc   *opencc.OpenCC
	err  error
}

func (d *lazyDict) load(name string) (*opencc.OpenCC, error) {
	d.once.Do(func() {
		d.cc, d.err = opencc.New(name)
	})
	return d.cc, d.err
}

// OpenCCConverter 基于 OpenCC 词典的 Converter，词典按方向首次使用时加载
type OpenCCConverter struct {
	toTraditional lazyDict
	toSimplified  lazyDict
}

// NewOpenCC 创建 OpenCCConverter
func NewOpenCC() *OpenCCConverter {
	return &OpenCCConverter{}
}

// Convert 按方向转换文本；none 原样返回
func (c *OpenCCConverter) Convert(text string, dir types.ScriptDirection) (string, error) {
	name, err := ConfigName(dir)
	if err != nil {
		return "", err
	}
	if name == "" || text == "" {
		return text, nil
	}

	dict := &c.toSimplified
	if dir == types.ScriptToTraditional {
		dict = &c.toTraditional
	}
	cc, err := dict.load(name)
	if err != nil {
		return "", fmt.Errorf("load opencc %s: %w", name, err)
	}
	out, err := cc.Convert(text)
	if err != nil {
		return "", fmt.Errorf("opencc %s: %w", name, err)
	}
	return out, nil
}

var (
	defaultConverter     *OpenCCConverter
	defaultConverterOnce sync.Once
)

// Default 返回共享的 OpenCCConverter
func Default() *OpenCCConverter {
	defaultConverterOnce.Do(func() {
		defaultConverter = NewOpenCC()
	})
	return defaultConverter
}

// ConverterFunc 把普通函数适配为 Converter
type ConverterFunc func(text string, dir types.ScriptDirection) (string, error)

// Convert 调用 f
func (f ConverterFunc) Convert(text string, dir types.ScriptDirection) (string, error) {
	return f(text, dir)
}
