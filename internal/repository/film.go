package repository

import (
	"errors"

	"github.com/user/filmgraph/internal/model"
	"gorm.io/gorm"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

// List 基于 uuid 的游标分页：forward 时取大于游标的记录（升序），否则取小于游标的记录（降序）
func (r *FilmRepository) List(cursor string, forward bool, limit int) ([]*model.Film, error) {
	var films []*model.Film
	q := r.db.Limit(limit)
	switch {
	case cursor != "" && forward:
		q = q.Where("uuid > ?", cursor).Order("uuid")
	case cursor != "":
		q = q.Where("uuid < ?", cursor).Order("uuid DESC")
	default:
		q = q.Order("uuid")
	}
	err := q.Find(&films).Error
	return films, err
}

// FindByTitle 根据标题查找电影，id 非空时同时匹配 uuid
func (r *FilmRepository) FindByTitle(title, id string) (*model.Film, error) {
	var film model.Film
	q := r.db.Where("title = ?", title)
	if id != "" {
		q = q.Where("uuid = ?", id)
	}
	err := q.First(&film).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &film, nil
}

// FindByID 根据 uuid 查找电影
func (r *FilmRepository) FindByID(id string) (*model.Film, error) {
	var film model.Film
	err := r.db.Where("uuid = ?", id).First(&film).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &film, nil
}

// Create 创建电影
func (r *FilmRepository) Create(film *model.Film) error {
	return translateError(r.db.Create(film).Error)
}

// Update 只更新 cols 中出现的列，并将最新数据回填到 film
func (r *FilmRepository) Update(film *model.Film, cols map[string]interface{}) error {
	if len(cols) == 0 {
		return nil
	}
	if err := r.db.Model(&model.Film{}).Where("uuid = ?", film.UUID).Updates(cols).Error; err != nil {
		return translateError(err)
	}
	return r.db.Where("uuid = ?", film.UUID).First(film).Error
}

// Delete 删除电影，关联记录由外键级联删除
func (r *FilmRepository) Delete(film *model.Film) error {
	return r.db.Where("uuid = ?", film.UUID).Delete(&model.Film{}).Error
}

// ListByActor 获取演员参演的全部电影
func (r *FilmRepository) ListByActor(actorID string) ([]*model.Film, error) {
	var films []*model.Film
	err := r.db.Distinct("films.*").
		Joins("JOIN filmactors ON filmactors.film_id = films.uuid").
		Where("filmactors.actor_id = ?", actorID).
		Order("films.uuid").
		Find(&films).Error
	return films, err
}
