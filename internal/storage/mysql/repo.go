package mysql

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// sourceID is a stable content hash used as the dedupe key.
func sourceID(r domain.Review) string {
	rating := ""
	if r.Rating != nil {
		rating = fmt.Sprintf("%.3f", *r.Rating)
	}
	sig := strings.Join([]string{r.Entity, r.Text, rating}, "|")
	sum := sha1.Sum([]byte(sig))
	return hex.EncodeToString(sum[:])
}

func (r *Repo) UpsertReviews(ctx context.Context, rs []domain.Review) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*5)
	for _, rv := range rs {
		values = append(values, "(?,?,?,?,?)")
		args = append(args,
			sourceID(rv),
			rv.Entity,
			rv.Text,
			valF64(rv.Rating),
			string(rv.Sentiment),
		)
	}
	sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) ListByEntity(ctx context.Context, entity string) ([]domain.Review, error) {
	return r.list(ctx, listByEntitySQL, entity)
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Review, error) {
	return r.list(ctx, listAllSQL)
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var rating sql.NullFloat64
		var sentiment sql.NullString
		if err := rows.Scan(&rv.Entity, &rv.Text, &rating, &sentiment); err != nil {
			return nil, err
		}
		if rating.Valid {
			f := rating.Float64
			rv.Rating = &f
		}
		if sentiment.Valid {
			rv.Sentiment = domain.Sentiment(sentiment.String)
		} else {
			rv.Sentiment = domain.Neutral
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListEntities(ctx context.Context) ([]domain.EntityCount, error) {
	rows, err := r.db.QueryContext(ctx, listEntitiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EntityCount
	for rows.Next() {
		var ec domain.EntityCount
		if err := rows.Scan(&ec.Entity, &ec.Reviews); err != nil {
			return nil, err
		}
		out = append(out, ec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
