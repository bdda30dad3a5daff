package model

import (
	"time"
)

// FilmActor 电影与演员的关联
type FilmActor struct {
	UUID      string    `json:"uuid" gorm:"column:uuid;primaryKey;size:36"`
	FilmID    string    `json:"film_id" gorm:"column:film_id;size:36;not null"`
	ActorID   string    `json:"actor_id" gorm:"column:actor_id;size:36;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp"`
}

func (FilmActor) TableName() string {
	return "filmactors"
}

// FilmActorInput 建立关联的输入
type FilmActorInput struct {
	FilmID    string `json:"film_id" validate:"required,notblank,max=36"`
	ActorID   string `json:"actor_id" validate:"required,notblank,max=36"`
	Timestamp *time.Time
}
