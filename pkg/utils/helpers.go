package utils

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// StringPtr 返回字符串的指针
func StringPtr(s string) *string {
	return &s
}

// TimePtr 返回time.Time的指针，零值返回nil
func TimePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// CalculateMD5 计算字节切片的MD5（用于内容指纹，非安全用途）
func CalculateMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// TruncateString 按字节截断过长文本，用于日志与CLI展示
func TruncateString(s string, max int) string {
	if max < 0 || len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
