package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Instagram InstagramConfig `mapstructure:"instagram"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Ingest    IngestConfig    `mapstructure:"ingest"`
	Query     QueryConfig     `mapstructure:"query"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// InstagramConfig Instagram Graph API 配置
type InstagramConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	UserID      string `mapstructure:"user_id"`
	AccessToken string `mapstructure:"access_token"`
	Timeout     int    `mapstructure:"timeout"`
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	TextModel   string           `mapstructure:"text_model"`
	ApiKey      string           `mapstructure:"api_key"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	AnalyticsChat string `mapstructure:"analytics_chat"`
}

// IngestConfig 采集任务配置
type IngestConfig struct {
	Cron               string `mapstructure:"cron"`
	WeightedEngagement bool   `mapstructure:"weighted_engagement"`
}

// QueryConfig 查询配置，RecentLimit 为 0 时表示不限制条数
type QueryConfig struct {
	RecentLimit int `mapstructure:"recent_limit"`
}
