package serviceImp

import (
	"math"
	"sort"
	"strings"

	"raitha/entities"
	"raitha/pkg/kb/embedder"
	"raitha/pkg/kb/repository"
)

type Svc struct {
	r   repository.KBRepository
	emb *embedder.Client
}

func New(r repository.KBRepository, e *embedder.Client) *Svc { return &Svc{r: r, emb: e} }

// chunkText splits on newline boundaries once a chunk passes maxRunes.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertArticle(title, tags, text, sourceURL string) (*entities.Article, int, error) {
	a := &entities.Article{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateArticle(a); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return a, 0, nil
	}

	var embs [][]float32
	if s.emb != nil {
		var err error
		embs, err = s.emb.Embed(chs)
		if err != nil {
			// degrade gracefully: keep chunks without embeddings
			embs = nil
		}
	}

	rows := make([]entities.ArticleChunk, len(chs))
	for i := range chs {
		var embBytes []byte
		if embs != nil && i < len(embs) {
			embBytes = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.ArticleChunk{
			ArticleID: a.ArticleID,
			Ord:       i,
			Text:      chs[i],
			Embedding: embBytes,
		}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return a, len(rows), nil
}

// Search ranks chunks by cosine similarity when a query embedding is
// available, otherwise by keyword containment.
func (s *Svc) Search(query string, k int) ([]entities.ArticleChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.ArticleChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))

	if len(qvec) > 0 {
		for _, ch := range chunks {
			cv := embedder.BytesToFloats(ch.Embedding)
			if len(cv) != len(qvec) || len(cv) == 0 {
				continue
			}
			if sc := cosine(qvec, cv); sc > 0 {
				list = append(list, scored{ch: ch, sc: sc})
			}
		}
	} else {
		terms := strings.Fields(strings.ToLower(q))
		for _, ch := range chunks {
			low := strings.ToLower(ch.Text)
			sc := 0.0
			for _, t := range terms {
				if strings.Contains(low, t) {
					sc++
				}
			}
			if sc > 0 {
				list = append(list, scored{ch: ch, sc: sc})
			}
		}
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.ArticleChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *Svc) ArticlesMeta(ids []uint) (map[uint]entities.Article, error) {
	return s.r.ArticlesByIDs(ids)
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
