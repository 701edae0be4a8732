package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"resume-builder-go/internal/logger"
)

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Host string `yaml:"host"` // 监听地址，本地工具默认127.0.0.1
	Port int    `yaml:"port"`
}

// SQLiteConfig 本地简历库配置
type SQLiteConfig struct {
	Path string `yaml:"path"` // 数据库文件路径
}

// ImportConfig 导入流水线的可调参数
type ImportConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"` // 单次导入总超时(秒)
	MinTextLength  int `yaml:"min_text_length"` // 低于该字符数触发OCR回退
}

// OCRConfig OCR回退配置
type OCRConfig struct {
	Enabled     bool    `yaml:"enabled"`      // 关闭后短文本直接报EmptyText
	Tesseract   string  `yaml:"tesseract"`    // 可执行文件名或绝对路径，空则用 "tesseract"
	Languages   string  `yaml:"languages"`    // tesseract语言包，默认 "eng+chi_sim"
	ScaleFactor float64 `yaml:"scale_factor"` // 页面位图放大倍数
}

// Config 应用程序配置
type Config struct {
	Server ServerConfig  `yaml:"server"`
	SQLite SQLiteConfig  `yaml:"sqlite"`
	Import ImportConfig  `yaml:"import"`
	OCR    OCRConfig     `yaml:"ocr"`
	Logger logger.Config `yaml:"logger"`
}

// Default 返回内置默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8888},
		SQLite: SQLiteConfig{Path: "resume-builder.db"},
		Import: ImportConfig{TimeoutSeconds: 10, MinTextLength: 50},
		OCR:    OCRConfig{Enabled: true, Tesseract: "tesseract", Languages: "eng+chi_sim", ScaleFactor: 2.0},
		Logger: logger.Config{Level: "info", Format: "pretty"},
	}
}

// LoadConfig 从YAML文件加载配置，文件缺失字段沿用默认值
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides 少量环境变量覆盖，便于不改文件调整部署
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RESUME_SQLITE_PATH"); v != "" {
		cfg.SQLite.Path = v
	}
	if v := os.Getenv("RESUME_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RESUME_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("RESUME_TESSERACT_PATH"); v != "" {
		cfg.OCR.Tesseract = v
	}
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", c.Server.Port)
	}
	if c.SQLite.Path == "" {
		return fmt.Errorf("sqlite.path 不能为空")
	}
	if c.Import.TimeoutSeconds <= 0 {
		c.Import.TimeoutSeconds = 10
	}
	if c.Import.MinTextLength <= 0 {
		c.Import.MinTextLength = 50
	}
	if c.OCR.ScaleFactor <= 0 {
		c.OCR.ScaleFactor = 2.0
	}
	if c.OCR.Languages == "" {
		c.OCR.Languages = "eng+chi_sim"
	}
	return nil
}
