package service

import "raitha/entities"

type KBService interface {
	UpsertArticle(title, tags, text, sourceURL string) (*entities.Article, int, error)
	Search(query string, k int) ([]entities.ArticleChunk, error)
	ArticlesMeta(ids []uint) (map[uint]entities.Article, error)
}
