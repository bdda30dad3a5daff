package repository

import (
	"errors"

	"github.com/user/filmgraph/internal/model"
	"gorm.io/gorm"
)

type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// List 基于 uuid 的游标分页，规则与电影一致
func (r *ActorRepository) List(cursor string, forward bool, limit int) ([]*model.Actor, error) {
	var actors []*model.Actor
	q := r.db.Limit(limit)
	switch {
	case cursor != "" && forward:
		q = q.Where("uuid > ?", cursor).Order("uuid")
	case cursor != "":
		q = q.Where("uuid < ?", cursor).Order("uuid DESC")
	default:
		q = q.Order("uuid")
	}
	err := q.Find(&actors).Error
	return actors, err
}

// FindByName 根据姓名查找演员，id 非空时同时匹配 uuid
func (r *ActorRepository) FindByName(name, id string) (*model.Actor, error) {
	var actor model.Actor
	q := r.db.Where("name = ?", name)
	if id != "" {
		q = q.Where("uuid = ?", id)
	}
	err := q.Order("uuid").First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// FindByID 根据 uuid 查找演员
func (r *ActorRepository) FindByID(id string) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.Where("uuid = ?", id).First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// Create 创建演员
func (r *ActorRepository) Create(actor *model.Actor) error {
	return translateError(r.db.Create(actor).Error)
}

// Update 只更新 cols 中出现的列，并回填最新数据
func (r *ActorRepository) Update(actor *model.Actor, cols map[string]interface{}) error {
	if len(cols) == 0 {
		return nil
	}
	if err := r.db.Model(&model.Actor{}).Where("uuid = ?", actor.UUID).Updates(cols).Error; err != nil {
		return translateError(err)
	}
	return r.db.Where("uuid = ?", actor.UUID).First(actor).Error
}

// Delete 删除演员，关联记录由外键级联删除
func (r *ActorRepository) Delete(actor *model.Actor) error {
	return r.db.Where("uuid = ?", actor.UUID).Delete(&model.Actor{}).Error
}

// ListByFilm 获取电影的全部演员
func (r *ActorRepository) ListByFilm(filmID string) ([]*model.Actor, error) {
	var actors []*model.Actor
	err := r.db.Distinct("actors.*").
		Joins("JOIN filmactors ON filmactors.actor_id = actors.uuid").
		Where("filmactors.film_id = ?", filmID).
		Order("actors.uuid").
		Find(&actors).Error
	return actors, err
}
