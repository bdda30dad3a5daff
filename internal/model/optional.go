package model

import "time"

// Optional 区分“未提供”与“显式提供（包括零值）”的字段
type Optional[T any] struct {
	value T
	set   bool
}

// Some 构造一个已提供的值
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get 返回值及是否已提供
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet 是否已提供
func (o Optional[T]) IsSet() bool {
	return o.set
}

// DateOnly 截断为 UTC 日期
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Instant 统一为 UTC 并截断到微秒（与 PostgreSQL TIMESTAMP 精度一致）
func Instant(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
