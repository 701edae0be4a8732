package models

import (
	"time"

	"gorm.io/datatypes"
)

// ResumeRecord 简历主表，每份简历一行，内容整体存JSON
type ResumeRecord struct {
	ResumeID    string         `gorm:"type:char(36);primaryKey"`
	Title       string         `gorm:"type:varchar(255)"`
	Language    string         `gorm:"type:varchar(8)"`
	ContentJSON datatypes.JSON `gorm:"type:json"`
	ContentMD5  string         `gorm:"type:char(32);index:idx_resumes_content_md5"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime;index:idx_resumes_updated_at"`
}

func (ResumeRecord) TableName() string {
	return "resumes"
}

// ResumeVersion 版本快照表，每次保存追加一行（内容未变时跳过）
type ResumeVersion struct {
	VersionID   string         `gorm:"type:char(36);primaryKey"`
	ResumeID    string         `gorm:"type:char(36);index:idx_versions_resume_id"`
	Title       string         `gorm:"type:varchar(255)"`
	ContentJSON datatypes.JSON `gorm:"type:json"`
	ContentMD5  string         `gorm:"type:char(32)"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index:idx_versions_created_at"`
}

func (ResumeVersion) TableName() string {
	return "resume_versions"
}
