package cli

import (
	"github.com/spf13/cobra"

	"github.com/riverfjs/threadsplit-go/internal/config"
)

func newConfigCommand(f *flagValues) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "配置相关命令",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "以 TOML 格式显示生效的配置（配置文件、环境变量与命令行标志合并后）",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := setupLogger(f.debug)
			defer func() {
				_ = log.Sync()
			}()

			cfg, err := buildConfig(cmd, f, log)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}

	configCmd.AddCommand(showCmd)
	return configCmd
}
