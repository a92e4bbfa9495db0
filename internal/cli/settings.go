package cli

import (
	"github.com/clear-checky/checky-BE/internal/model"
	"github.com/spf13/viper"
)

// loadConfig builds the effective configuration: defaults overlaid with
// config-file and CHECKY_* environment values
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetString("upload.dir"); v != "" {
		cfg.Upload.Dir = v
	}
	if v := viper.GetInt64("upload.max_file_bytes"); v > 0 {
		cfg.Upload.MaxFileBytes = v
	}
	if v := viper.GetDuration("upload.ttl"); v > 0 {
		cfg.Upload.TTL = v
	}
	if v := viper.GetString("upload.sweep_schedule"); v != "" {
		cfg.Upload.SweepSchedule = v
	}
	if viper.IsSet("llm.provider") {
		cfg.LLM.Provider = viper.GetString("llm.provider")
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetInt("llm.timeout"); v > 0 {
		cfg.LLM.Timeout = v
	}
	if v := viper.GetInt("llm.max_tokens"); v > 0 {
		cfg.LLM.MaxTokens = v
	}
	if v := viper.GetFloat64("llm.requests_per_second"); v > 0 {
		cfg.LLM.RequestsPerSecond = v
	}
	if v := viper.GetInt("llm.burst"); v > 0 {
		cfg.LLM.Burst = v
	}
	if v := viper.GetInt("concurrency.classify_workers"); v > 0 {
		cfg.Concurrency.ClassifyWorkers = v
	}
	if v := viper.GetString("rules.file"); v != "" {
		cfg.Rules.File = v
	}
	// API key comes from the environment only
	if v := viper.GetString("llm.api_key"); v != "" {
		cfg.LLM.APIKey = v
	}

	return cfg
}
