package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrDuplicate 违反唯一约束
	ErrDuplicate = errors.New("duplicate key")
	// ErrForeignKey 违反外键约束
	ErrForeignKey = errors.New("foreign key violation")
)

// PostgreSQL 错误码
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError 将驱动层的约束错误统一为 ErrDuplicate / ErrForeignKey
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrForeignKey) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return wrapConstraint(ErrDuplicate, err)
		case pgForeignKeyViolation:
			return wrapConstraint(ErrForeignKey, err)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return wrapConstraint(ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return wrapConstraint(ErrForeignKey, err)
	}

	// SQLite 驱动（测试环境）只暴露错误文本
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return wrapConstraint(ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return wrapConstraint(ErrForeignKey, err)
	}
	return err
}

type constraintError struct {
	kind  error
	cause error
}

func wrapConstraint(kind, cause error) error {
	return &constraintError{kind: kind, cause: cause}
}

func (e *constraintError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *constraintError) Is(target error) bool {
	return target == e.kind
}

func (e *constraintError) Unwrap() error {
	return e.cause
}
