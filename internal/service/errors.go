package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/user/filmgraph/internal/repository"
)

// Kind 错误类别
type Kind string

const (
	KindNotFound             Kind = "NOT_FOUND"
	KindConflict             Kind = "CONFLICT"
	KindReferentialIntegrity Kind = "REFERENTIAL_INTEGRITY"
	KindBadInput             Kind = "BAD_INPUT"
	KindInternal             Kind = "INTERNAL"
)

// Error 返回给调用方的业务错误
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions 作为 GraphQL 错误的 extensions 输出
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Kind)}
}

func notFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func badInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBadInput, Message: fmt.Sprintf(format, args...)}
}

// IsKind 判断 err 是否为指定类别的业务错误
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// classify 把仓库层错误映射为业务错误，未知错误记录日志后隐藏细节
func classify(component string, err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return &Error{Kind: KindConflict, Message: conflictMsg}
	case errors.Is(err, repository.ErrForeignKey):
		return &Error{Kind: KindReferentialIntegrity, Message: "Referenced film or actor does not exist."}
	}
	log.Printf("[%s] 数据库操作失败: %v", component, err)
	return &Error{Kind: KindInternal, Message: "Internal server error."}
}
