package model

import (
	"time"
)

// DefaultReleaseDate 未指定上映日期时使用的默认值
var DefaultReleaseDate = time.Date(2011, time.January, 1, 0, 0, 0, 0, time.UTC)

// Film 电影模型
type Film struct {
	UUID       string     `json:"uuid" gorm:"column:uuid;primaryKey;size:36"`
	Title      string     `json:"title" gorm:"column:title;size:255;unique;not null"`
	Genre      string     `json:"genre" gorm:"column:genre;size:255;not null"`
	Language   string     `json:"language" gorm:"column:language;size:255;not null"`
	Release    *time.Time `json:"release" gorm:"column:release;type:date"`
	IsPremiere bool       `json:"is_premiere" gorm:"column:is_premiere"`
	Timestamp  time.Time  `json:"timestamp" gorm:"column:timestamp"`
}

func (Film) TableName() string {
	return "films"
}

// FilmInput 创建电影的输入
type FilmInput struct {
	Title      string `json:"title" validate:"required,notblank,max=255"`
	Genre      string `json:"genre" validate:"required,notblank,max=255"`
	Language   string `json:"language" validate:"required,notblank,max=255"`
	Release    *time.Time
	IsPremiere bool
	Timestamp  *time.Time
}

// FilmPatch 更新电影的输入，只应用调用方显式提供的字段
type FilmPatch struct {
	Title      Optional[string]
	Genre      Optional[string]
	Language   Optional[string]
	Release    Optional[time.Time]
	IsPremiere Optional[bool]
	Timestamp  Optional[time.Time]
}

// Columns 将已提供的字段转换为列名到值的映射
func (p FilmPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if v, ok := p.Title.Get(); ok {
		cols["title"] = v
	}
	if v, ok := p.Genre.Get(); ok {
		cols["genre"] = v
	}
	if v, ok := p.Language.Get(); ok {
		cols["language"] = v
	}
	if v, ok := p.Release.Get(); ok {
		cols["release"] = DateOnly(v)
	}
	if v, ok := p.IsPremiere.Get(); ok {
		cols["is_premiere"] = v
	}
	if v, ok := p.Timestamp.Get(); ok {
		cols["timestamp"] = Instant(v)
	}
	return cols
}

// NewFilm 由输入构建待持久化的电影记录
func NewFilm(id string, in FilmInput, now time.Time) *Film {
	release := DefaultReleaseDate
	if in.Release != nil {
		release = DateOnly(*in.Release)
	}
	ts := Instant(now)
	if in.Timestamp != nil {
		ts = Instant(*in.Timestamp)
	}
	return &Film{
		UUID:       id,
		Title:      in.Title,
		Genre:      in.Genre,
		Language:   in.Language,
		Release:    &release,
		IsPremiere: in.IsPremiere,
		Timestamp:  ts,
	}
}
