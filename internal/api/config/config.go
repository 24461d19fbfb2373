package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量可覆盖敏感项
// 例如 INSTALENS_INSTAGRAM_ACCESS_TOKEN、INSTALENS_LLM_API_KEY
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("instalens")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("instagram.base_url", "https://graph.instagram.com")
	viper.SetDefault("instagram.timeout", 20)
	viper.SetDefault("ingest.cron", "@hourly")
	viper.SetDefault("ingest.weighted_engagement", true)
	viper.SetDefault("query.recent_limit", 7)
	viper.SetDefault("llm.prompts_path.analytics_chat", "./prompts/analytics-chat.txt")
}
