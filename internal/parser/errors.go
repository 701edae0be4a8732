package parser

import "errors"

// 文本获取阶段的基础错误，调用方用 errors.Is 区分恢复路径：
// 读取失败→重试，文本为空→手动粘贴，超时→放弃或手动粘贴
var (
	// ErrDocumentRead 文件损坏或无法按PDF打开
	ErrDocumentRead = errors.New("无法读取文档")

	// ErrEmptyText 内嵌文本与OCR均未产出达到阈值的文本
	ErrEmptyText = errors.New("未能从文档中提取到有效文本")

	// ErrTimeout 整体提取超出时间预算
	ErrTimeout = errors.New("文档提取超时")
)
