package processor

import (
	"errors"
	"fmt"

	"resume-builder-go/internal/parser"
)

// 基础错误类型沿用parser包的哨兵，调用方三类恢复路径：
// 重试（读取失败）、手动粘贴（空文本）、放弃或手动粘贴（超时）
var (
	ErrDocumentRead = parser.ErrDocumentRead
	ErrEmptyText    = parser.ErrEmptyText
	ErrTimeout      = parser.ErrTimeout
)

// ImportError 包含阶段信息的导入错误
type ImportError struct {
	ImportID string // 本次导入的标识
	Stage    string // 出错的流水线阶段
	BaseErr  error
	Detail   string
}

func (e *ImportError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (阶段:%s, 导入:%s): %s", e.BaseErr, e.Stage, e.ImportID, e.Detail)
	}
	return fmt.Sprintf("%s (阶段:%s, 导入:%s)", e.BaseErr, e.Stage, e.ImportID)
}

func (e *ImportError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 以支持错误比较
func (e *ImportError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数

func NewDocumentReadError(importID, detail string) error {
	return &ImportError{ImportID: importID, Stage: "acquisition", BaseErr: ErrDocumentRead, Detail: detail}
}

func NewEmptyTextError(importID, detail string) error {
	return &ImportError{ImportID: importID, Stage: "acquisition", BaseErr: ErrEmptyText, Detail: detail}
}

func NewTimeoutError(importID, detail string) error {
	return &ImportError{ImportID: importID, Stage: "acquisition", BaseErr: ErrTimeout, Detail: detail}
}
