package handler

import (
	"context"
	"fmt"
	"time"

	googleuuid "github.com/google/uuid"

	"resume-builder-go/internal/storage"
	"resume-builder-go/internal/types"
)

// ResumeHandler 简历库的增删查改，确认界面合并后的简历从这里保存
type ResumeHandler struct {
	storage *storage.Storage
}

// NewResumeHandler 创建简历处理器
func NewResumeHandler(storage *storage.Storage) *ResumeHandler {
	return &ResumeHandler{storage: storage}
}

// HandleSaveResume 保存简历。没有ID时分配一个新的；
// 每次保存都刷新updatedAt并在版本表留快照（内容未变时跳过）。
func (h *ResumeHandler) HandleSaveResume(ctx context.Context, resume *types.Resume) (*types.Resume, error) {
	if resume == nil {
		return nil, fmt.Errorf("简历内容不能为空")
	}
	if resume.ID == "" {
		resume.ID = googleuuid.NewString()
	}
	resume.UpdatedAt = time.Now().UnixMilli()

	if err := h.storage.SQLite.SaveResume(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// HandleGetResume 按ID取完整简历
func (h *ResumeHandler) HandleGetResume(ctx context.Context, resumeID string) (*types.Resume, error) {
	if resumeID == "" {
		return nil, fmt.Errorf("简历ID不能为空")
	}
	return h.storage.SQLite.GetResume(ctx, resumeID)
}

// HandleListResumes 列出全部简历摘要，按更新时间倒序
func (h *ResumeHandler) HandleListResumes(ctx context.Context) ([]storage.ResumeSummary, error) {
	return h.storage.SQLite.ListResumes(ctx)
}

// HandleDeleteResume 删除简历及其版本历史
func (h *ResumeHandler) HandleDeleteResume(ctx context.Context, resumeID string) error {
	if resumeID == "" {
		return fmt.Errorf("简历ID不能为空")
	}
	return h.storage.SQLite.DeleteResume(ctx, resumeID)
}

// HandleListVersions 列出某份简历的版本历史
func (h *ResumeHandler) HandleListVersions(ctx context.Context, resumeID string) ([]storage.VersionSummary, error) {
	if resumeID == "" {
		return nil, fmt.Errorf("简历ID不能为空")
	}
	return h.storage.SQLite.ListVersions(ctx, resumeID)
}

// HandleGetVersion 取某个历史版本的完整内容
func (h *ResumeHandler) HandleGetVersion(ctx context.Context, versionID string) (*types.Resume, error) {
	if versionID == "" {
		return nil, fmt.Errorf("版本ID不能为空")
	}
	return h.storage.SQLite.GetVersion(ctx, versionID)
}
