package model

import (
	"time"
)

// Actor 演员模型
type Actor struct {
	UUID        string     `json:"uuid" gorm:"column:uuid;primaryKey;size:36"`
	Name        string     `json:"name" gorm:"column:name;size:255;not null"`
	BirthDate   *time.Time `json:"birth_date" gorm:"column:birth_date;type:date"`
	Biography   *string    `json:"biography" gorm:"column:biography;type:text"`
	Nationality *string    `json:"nationality" gorm:"column:nationality;size:255"`
	Timestamp   time.Time  `json:"timestamp" gorm:"column:timestamp"`
}

func (Actor) TableName() string {
	return "actors"
}

// ActorInput 创建演员的输入
type ActorInput struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	BirthDate   *time.Time
	Biography   *string
	Nationality *string `json:"nationality" validate:"omitempty,max=255"`
	Timestamp   *time.Time
}

// ActorPatch 更新演员的输入
type ActorPatch struct {
	Name        Optional[string]
	BirthDate   Optional[time.Time]
	Biography   Optional[string]
	Nationality Optional[string]
	Timestamp   Optional[time.Time]
}

// Columns 将已提供的字段转换为列名到值的映射
func (p ActorPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if v, ok := p.Name.Get(); ok {
		cols["name"] = v
	}
	if v, ok := p.BirthDate.Get(); ok {
		cols["birth_date"] = DateOnly(v)
	}
	if v, ok := p.Biography.Get(); ok {
		cols["biography"] = v
	}
	if v, ok := p.Nationality.Get(); ok {
		cols["nationality"] = v
	}
	if v, ok := p.Timestamp.Get(); ok {
		cols["timestamp"] = Instant(v)
	}
	return cols
}

// NewActor 由输入构建待持久化的演员记录，出生日期默认为当天
func NewActor(id string, in ActorInput, now time.Time) *Actor {
	birth := DateOnly(now)
	if in.BirthDate != nil {
		birth = DateOnly(*in.BirthDate)
	}
	ts := Instant(now)
	if in.Timestamp != nil {
		ts = Instant(*in.Timestamp)
	}
	return &Actor{
		UUID:        id,
		Name:        in.Name,
		BirthDate:   &birth,
		Biography:   in.Biography,
		Nationality: in.Nationality,
		Timestamp:   ts,
	}
}
