package storage

import (
	"context"
	"fmt"

	"resume-builder-go/internal/config"
	"resume-builder-go/internal/logger"
)

// Storage 聚合所有存储组件，目前只有本地SQLite
type Storage struct {
	SQLite *SQLite
}

// NewStorage 按配置初始化存储层
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	sqliteStore, err := NewSQLite(&cfg.SQLite)
	if err != nil {
		return nil, fmt.Errorf("初始化SQLite存储失败: %w", err)
	}
	logger.Info().Str("path", cfg.SQLite.Path).Msg("SQLite存储初始化成功")

	return &Storage{SQLite: sqliteStore}, nil
}

// Close 依次关闭所有存储组件
func (s *Storage) Close() error {
	if s.SQLite != nil {
		return s.SQLite.Close()
	}
	return nil
}
