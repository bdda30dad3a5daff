package repository

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
)

const createFilmsTable = `
CREATE TABLE IF NOT EXISTS films (
	uuid VARCHAR(36) NOT NULL,
	title VARCHAR(255) NOT NULL UNIQUE,
	genre VARCHAR(255) NOT NULL,
	language VARCHAR(255) NOT NULL,
	release DATE NULL DEFAULT '2011-01-01',
	is_premiere BOOLEAN DEFAULT FALSE,
	timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (uuid)
)`

const createActorsTable = `
CREATE TABLE IF NOT EXISTS actors (
	uuid VARCHAR(36) NOT NULL,
	name VARCHAR(255) NOT NULL,
	birth_date DATE NULL DEFAULT CURRENT_DATE,
	biography TEXT NULL,
	nationality VARCHAR(255) NULL,
	timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (uuid)
)`

const createFilmActorsTable = `
CREATE TABLE IF NOT EXISTS filmactors (
	uuid VARCHAR(36) NOT NULL,
	film_id VARCHAR(36) NOT NULL,
	actor_id VARCHAR(36) NOT NULL,
	timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (uuid),
	CONSTRAINT fk_film_actors FOREIGN KEY (film_id) REFERENCES films(uuid) ON DELETE CASCADE,
	CONSTRAINT fk_actor_films FOREIGN KEY (actor_id) REFERENCES actors(uuid) ON DELETE CASCADE
)`

// EnsureSchema 创建三张表（已存在则跳过），filmactors 依赖前两张表，顺序不可调换
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	tables := []struct {
		name string
		ddl  string
	}{
		{"films", createFilmsTable},
		{"actors", createActorsTable},
		{"filmactors", createFilmActorsTable},
	}

	for _, t := range tables {
		if err := db.WithContext(ctx).Exec(t.ddl).Error; err != nil {
			return fmt.Errorf("创建表 %s 失败: %w", t.name, err)
		}
		log.Printf("[Schema] 表 %s 已就绪", t.name)
	}
	return nil
}
