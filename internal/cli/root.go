package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	threadsplit "github.com/riverfjs/threadsplit-go"
	"github.com/riverfjs/threadsplit-go/internal/config"
	"github.com/riverfjs/threadsplit-go/internal/logger"
	"github.com/riverfjs/threadsplit-go/internal/types"
)

// flagValues 命令行标志
type flagValues struct {
	cfgFile string
	debug   bool

	// 长度
	maxLength  int
	lengthMode string
	noSplit    bool
	cjkDouble  bool

	// 文本转换
	keepReferences   bool
	noMarkdown       bool
	protectCode      bool
	bullet           string
	customBullet     string
	numberStyle      string
	noHeadingNewline bool
	convert          string

	// 页码
	pageFormat   string
	pagePosition string
	pageNewlines int
	noPageMarker bool

	// 输入输出
	encoding string
	stats    bool
	jsonOut  bool
	noColor  bool
}

var (
	lengthModeChoices  = []string{string(types.LengthModeThreads), string(types.LengthModeCustom), string(types.LengthModeNone)}
	numberStyleChoices = []string{string(types.NumberStyleNone), string(types.NumberStyleCircled), string(types.NumberStyleParenthesized)}
	positionChoices    = []string{string(types.PositionTop), string(types.PositionBottom)}
	convertChoices     = []string{"none", "to-tw", "to-cn"}
)

// convertDirections --convert 取值到转换方向
var convertDirections = map[string]types.ScriptDirection{
	"none":  types.ScriptNone,
	"to-tw": types.ScriptToTraditional,
	"to-cn": types.ScriptToSimplified,
}

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	f := &flagValues{}

	rootCmd := &cobra.Command{
		Use:   "threadsplit [flags] [file]",
		Short: "把长文本拆分为 Threads 等平台的贴文",
		Long: `threadsplit 把长文本拆分为长度受限的贴文片段。

拆分只发生在句子边界（换行、。、.）之后，且不会切开括号内的内容；
每段可附加 "Page (n/m)" 形式的页码。拆分前可以移除参考链接、
进行繁简转换，并把 Markdown 标题、粗体、斜体、列表替换为符号。

不指定文件或文件为 "-" 时从标准输入读取。`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := setupLogger(f.debug)
			defer func() {
				_ = log.Sync()
			}()

			cfg, err := buildConfig(cmd, f, log)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readInput(path, cmd.InOrStdin(), f.encoding)
			if err != nil {
				return err
			}
			log.Debug("读取输入", zap.String("file", path), zap.Int("bytes", len(text)))

			result, err := threadsplit.Process(text, threadsplit.WithConfig(cfg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f.jsonOut {
				return renderJSON(out, result)
			}
			renderSegments(out, result, f.noColor)
			if f.stats {
				renderStats(out, result, cfg.EffectiveMaxLength())
			}
			return nil
		},
	}

	bindFlags(rootCmd, f)
	rootCmd.AddCommand(newConfigCommand(f))
	return rootCmd
}

func bindFlags(cmd *cobra.Command, f *flagValues) {
	d := types.DefaultConfig()
	pf := cmd.PersistentFlags()

	pf.StringVarP(&f.cfgFile, "config", "c", "", "配置文件路径（默认查找 ~/.threadsplit.{yaml,toml} 与 ./.threadsplit.{yaml,toml}）")
	pf.BoolVar(&f.debug, "debug", false, "输出调试日志")

	pf.IntVarP(&f.maxLength, "max-length", "n", d.MaxLength, "每段最大长度（隐含 --length-mode custom）")
	pf.StringVar(&f.lengthMode, "length-mode", string(d.LengthMode), "长度模式: threads|custom|none")
	pf.BoolVar(&f.noSplit, "no-split", false, "不拆分，只输出转换后的文本")
	pf.BoolVar(&f.cjkDouble, "cjk-double", d.Policy.CountCJKAsTwo, "中日文字符按 2 个长度计算")

	pf.BoolVar(&f.keepReferences, "keep-references", false, "保留 ([文字](URL)) 形式的参考链接")
	pf.BoolVar(&f.noMarkdown, "no-markdown", false, "不转换 Markdown 语法")
	pf.BoolVar(&f.protectCode, "protect-code", d.Markdown.ProtectCode, "代码块与行内代码不做 Markdown 转换")
	pf.StringVar(&f.bullet, "bullet", d.Markdown.List.Bullet, "无序列表符号，或 custom")
	pf.StringVar(&f.customBullet, "custom-bullet", "", "自定义无序列表符号（隐含 --bullet custom）")
	pf.StringVar(&f.numberStyle, "number-style", string(d.Markdown.List.NumberStyle), "有序列表编号: none|circled|parenthesized")
	pf.BoolVar(&f.noHeadingNewline, "no-heading-newline", false, "标题后不额外换行")
	pf.StringVar(&f.convert, "convert", "none", "繁简转换: none|to-tw|to-cn")

	pf.StringVar(&f.pageFormat, "page-format", d.PageMarker.Format, "页码格式，n 为当前页，m 为总页数")
	pf.StringVar(&f.pagePosition, "page-position", string(d.PageMarker.Position), "页码位置: top|bottom")
	pf.IntVar(&f.pageNewlines, "page-newlines", d.PageMarker.NewlineCount, "页码与正文之间的换行数 (1-5)")
	pf.BoolVar(&f.noPageMarker, "no-page-marker", false, "不添加页码")

	cmd.Flags().StringVarP(&f.encoding, "encoding", "e", "utf-8", "输入编码")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "输出每段长度统计")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "以 JSON 输出完整结果")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "禁用颜色")
}

func setupLogger(debug bool) *zap.Logger {
	log := logger.NewLogger(debug)
	threadsplit.SetLogger(log)
	return log
}

// buildConfig 加载配置文件，再用显式给出的命令行标志覆盖
func buildConfig(cmd *cobra.Command, f *flagValues, log *zap.Logger) (*types.Config, error) {
	cfg, used, err := config.Load(f.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if used != "" {
		log.Debug("使用配置文件", zap.String("file", used))
	}

	changed := cmd.Flags().Changed

	if changed("length-mode") {
		if err := checkChoice("length-mode", f.lengthMode, lengthModeChoices); err != nil {
			return nil, err
		}
		cfg.LengthMode = types.LengthMode(f.lengthMode)
	}
	if changed("max-length") {
		cfg.MaxLength = f.maxLength
		if !changed("length-mode") {
			cfg.LengthMode = types.LengthModeCustom
		}
	}
	if f.noSplit {
		cfg.LengthMode = types.LengthModeNone
	}
	if changed("cjk-double") {
		cfg.Policy.CountCJKAsTwo = f.cjkDouble
	}

	if f.keepReferences {
		cfg.RemoveReferences = false
	}
	if f.noMarkdown {
		cfg.ConvertMarkdown = false
	}
	if changed("protect-code") {
		cfg.Markdown.ProtectCode = f.protectCode
	}
	if changed("bullet") {
		choices := append(append([]string{}, types.BulletOptions...), types.CustomBullet)
		if err := checkChoice("bullet", f.bullet, choices); err != nil {
			return nil, err
		}
		cfg.Markdown.List.Bullet = f.bullet
	}
	if changed("custom-bullet") {
		cfg.Markdown.List.CustomBullet = f.customBullet
		if !changed("bullet") {
			cfg.Markdown.List.Bullet = types.CustomBullet
		}
	}
	if changed("number-style") {
		if err := checkChoice("number-style", f.numberStyle, numberStyleChoices); err != nil {
			return nil, err
		}
		cfg.Markdown.List.NumberStyle = types.NumberStyle(f.numberStyle)
	}
	if f.noHeadingNewline {
		cfg.Markdown.HeadingNewline = false
	}
	if changed("convert") {
		if err := checkChoice("convert", f.convert, convertChoices); err != nil {
			return nil, err
		}
		cfg.Script = convertDirections[f.convert]
	}

	if changed("page-format") {
		cfg.PageMarker.Format = f.pageFormat
	}
	if changed("page-position") {
		if err := checkChoice("page-position", f.pagePosition, positionChoices); err != nil {
			return nil, err
		}
		cfg.PageMarker.Position = types.Position(f.pagePosition)
	}
	if changed("page-newlines") {
		cfg.PageMarker.NewlineCount = f.pageNewlines
	}
	cfg.PageMarker = cfg.PageMarker.Normalize()
	if f.noPageMarker {
		cfg.PageMarkerEnabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug("生效配置",
		zap.String("length_mode", string(cfg.LengthMode)),
		zap.Int("max_length", cfg.EffectiveMaxLength()),
		zap.Bool("cjk_as_two", cfg.Policy.CountCJKAsTwo),
		zap.Bool("markdown", cfg.ConvertMarkdown),
		zap.Bool("page_marker", cfg.PageMarkerEnabled),
		zap.String("script", string(cfg.Script)))
	return cfg, nil
}
