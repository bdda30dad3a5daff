package repository

import (
	"errors"

	"github.com/user/filmgraph/internal/model"
	"gorm.io/gorm"
)

type FilmActorRepository struct {
	db *gorm.DB
}

func NewFilmActorRepository(db *gorm.DB) *FilmActorRepository {
	return &FilmActorRepository{db: db}
}

// List 偏移分页获取关联记录
func (r *FilmActorRepository) List(skip, take int) ([]*model.FilmActor, error) {
	var links []*model.FilmActor
	err := r.db.Order("uuid").Offset(skip).Limit(take).Find(&links).Error
	return links, err
}

// FindByID 根据 uuid 查找关联
func (r *FilmActorRepository) FindByID(id string) (*model.FilmActor, error) {
	var link model.FilmActor
	err := r.db.Where("uuid = ?", id).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Create 创建关联
func (r *FilmActorRepository) Create(link *model.FilmActor) error {
	return translateError(r.db.Create(link).Error)
}

// Delete 删除关联
func (r *FilmActorRepository) Delete(link *model.FilmActor) error {
	return r.db.Where("uuid = ?", link.UUID).Delete(&model.FilmActor{}).Error
}

// CountByFilm 统计电影的关联数量
func (r *FilmActorRepository) CountByFilm(filmID string) (int, error) {
	var count int64
	err := r.db.Model(&model.FilmActor{}).Where("film_id = ?", filmID).Count(&count).Error
	return int(count), err
}
