package repository

import "raitha/entities"

type KBRepository interface {
	CreateArticle(*entities.Article) error
	BulkInsertChunks([]entities.ArticleChunk) error
	ListArticles() ([]entities.Article, error)
	AllChunks() ([]entities.ArticleChunk, error)
	ArticlesByIDs(ids []uint) (map[uint]entities.Article, error)
}
