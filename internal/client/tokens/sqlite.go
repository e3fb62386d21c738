package tokens

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/repositories/metadata"
	"github.com/sachink160/multitool-client/internal/common"
	"github.com/sachink160/multitool-client/internal/dbx"
)

// SQLiteStore keeps the pair as two rows of the metadata table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Save(ctx context.Context, pair models.TokenPair) error {
	if !pair.Complete() {
		return common.ErrIncompletePair
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.AccessTokenKey, pair.AccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, common.RefreshTokenKey, pair.RefreshToken)
	})
}

func (s *SQLiteStore) Read(ctx context.Context) (models.TokenPair, bool, error) {
	var (
		pair models.TokenPair
		ok   bool
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		access, foundA, err := repo.Get(ctx, common.AccessTokenKey)
		if err != nil {
			return err
		}
		refresh, foundR, err := repo.Get(ctx, common.RefreshTokenKey)
		if err != nil {
			return err
		}
		pair = models.TokenPair{AccessToken: access, RefreshToken: refresh}
		ok = foundA && foundR && pair.Complete()
		return nil
	})
	if err != nil {
		return models.TokenPair{}, false, fmt.Errorf("read tokens: %w", err)
	}
	if !ok {
		return models.TokenPair{}, false, nil
	}
	return pair, true, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	repo := metadata.NewSQLiteRepository(s.db)
	if err := repo.Delete(ctx, common.AccessTokenKey, common.RefreshTokenKey); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}
