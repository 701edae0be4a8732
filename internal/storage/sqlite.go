package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"resume-builder-go/internal/config"
	"resume-builder-go/internal/logger"
	"resume-builder-go/internal/storage/models"
	"resume-builder-go/internal/types"
	"resume-builder-go/pkg/utils"
)

// ErrResumeNotFound 简历或版本不存在
var ErrResumeNotFound = errors.New("简历不存在")

// SQLite 本地简历库。导入流水线不碰这里：
// 只有经确认界面合并后的简历才会被调用方显式保存进来。
type SQLite struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// ResumeSummary 列表展示用的摘要行
type ResumeSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	UpdatedAt int64  `json:"updatedAt"`
}

// VersionSummary 版本历史摘要行
type VersionSummary struct {
	VersionID string `json:"versionId"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"`
}

// NewSQLite 打开（必要时创建）数据库文件并迁移表结构
func NewSQLite(cfg *config.SQLiteConfig) (*SQLite, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, fmt.Errorf("SQLite配置不能为空")
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("打开SQLite数据库 %s 失败: %w", cfg.Path, err)
	}

	if err := db.AutoMigrate(&models.ResumeRecord{}, &models.ResumeVersion{}); err != nil {
		return nil, fmt.Errorf("迁移表结构失败: %w", err)
	}

	return &SQLite{
		db:     db,
		logger: logger.Logger.With().Str("component", "sqlite_storage").Logger(),
	}, nil
}

// SaveResume 保存简历：主表upsert，同时追加一条版本快照。
// 内容与最新版本完全一致（MD5相同）时不再追加版本行。
func (s *SQLite) SaveResume(ctx context.Context, resume *types.Resume) error {
	if resume == nil || resume.ID == "" {
		return fmt.Errorf("简历或简历ID不能为空")
	}

	payload, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("序列化简历失败: %w", err)
	}
	contentMD5 := utils.CalculateMD5(payload)

	record := models.ResumeRecord{
		ResumeID:    resume.ID,
		Title:       resume.Title,
		Language:    resume.Language,
		ContentJSON: payload,
		ContentMD5:  contentMD5,
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resume_id"}},
			UpdateAll: true,
		}).Create(&record).Error; err != nil {
			return fmt.Errorf("写入简历主表失败: %w", err)
		}

		// 最新版本内容相同就跳过追加
		var latest models.ResumeVersion
		err := tx.Where("resume_id = ?", resume.ID).
			Order("created_at DESC").
			First(&latest).Error
		if err == nil && latest.ContentMD5 == contentMD5 {
			s.logger.Debug().Str("resume_id", resume.ID).Msg("内容未变化，跳过版本追加")
			return nil
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("查询最新版本失败: %w", err)
		}

		version := models.ResumeVersion{
			VersionID:   newVersionID(),
			ResumeID:    resume.ID,
			Title:       resume.Title,
			ContentJSON: payload,
			ContentMD5:  contentMD5,
		}
		if err := tx.Create(&version).Error; err != nil {
			return fmt.Errorf("追加版本快照失败: %w", err)
		}
		return nil
	})
}

// GetResume 按ID取完整简历
func (s *SQLite) GetResume(ctx context.Context, resumeID string) (*types.Resume, error) {
	var record models.ResumeRecord
	err := s.db.WithContext(ctx).First(&record, "resume_id = ?", resumeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, resumeID)
	}
	if err != nil {
		return nil, fmt.Errorf("查询简历失败: %w", err)
	}
	return unmarshalResume(record.ContentJSON)
}

// ListResumes 按更新时间倒序列出摘要
func (s *SQLite) ListResumes(ctx context.Context) ([]ResumeSummary, error) {
	var records []models.ResumeRecord
	err := s.db.WithContext(ctx).
		Select("resume_id", "title", "language", "updated_at").
		Order("updated_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("查询简历列表失败: %w", err)
	}

	summaries := make([]ResumeSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, ResumeSummary{
			ID:        r.ResumeID,
			Title:     r.Title,
			Language:  r.Language,
			UpdatedAt: r.UpdatedAt.UnixMilli(),
		})
	}
	return summaries, nil
}

// DeleteResume 删除简历及其全部版本
func (s *SQLite) DeleteResume(ctx context.Context, resumeID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.ResumeRecord{}, "resume_id = ?", resumeID)
		if result.Error != nil {
			return fmt.Errorf("删除简历失败: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrResumeNotFound, resumeID)
		}
		if err := tx.Delete(&models.ResumeVersion{}, "resume_id = ?", resumeID).Error; err != nil {
			return fmt.Errorf("删除版本快照失败: %w", err)
		}
		return nil
	})
}

// ListVersions 按时间倒序列出某份简历的版本历史
func (s *SQLite) ListVersions(ctx context.Context, resumeID string) ([]VersionSummary, error) {
	var versions []models.ResumeVersion
	err := s.db.WithContext(ctx).
		Where("resume_id = ?", resumeID).
		Order("created_at DESC").
		Find(&versions).Error
	if err != nil {
		return nil, fmt.Errorf("查询版本历史失败: %w", err)
	}

	summaries := make([]VersionSummary, 0, len(versions))
	for _, v := range versions {
		summaries = append(summaries, VersionSummary{
			VersionID: v.VersionID,
			Title:     v.Title,
			CreatedAt: v.CreatedAt.UnixMilli(),
		})
	}
	return summaries, nil
}

// GetVersion 取某个历史版本的完整内容
func (s *SQLite) GetVersion(ctx context.Context, versionID string) (*types.Resume, error) {
	var version models.ResumeVersion
	err := s.db.WithContext(ctx).First(&version, "version_id = ?", versionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: 版本 %s", ErrResumeNotFound, versionID)
	}
	if err != nil {
		return nil, fmt.Errorf("查询版本失败: %w", err)
	}
	return unmarshalResume(version.ContentJSON)
}

// Close 关闭底层连接
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func unmarshalResume(data []byte) (*types.Resume, error) {
	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("反序列化简历内容失败: %w", err)
	}
	return &resume, nil
}

func newVersionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// V7基于时间戳，极少失败；兜底用V4
		return uuid.Must(uuid.NewV4()).String()
	}
	return id.String()
}
