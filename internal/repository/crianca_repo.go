package repository

import (
	"context"

	"github.com/AthyrsonSousa/kids-guardian/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CriancaRepository defines persistence operations for children.
type CriancaRepository interface {
	Create(ctx context.Context, c *model.Crianca) error
	ListAtivas(ctx context.Context) ([]model.Crianca, error)
	ListAtivasExcluindo(ctx context.Context, ids []uuid.UUID) ([]model.Crianca, error)
	ListAtivasPorIDs(ctx context.Context, ids []uuid.UUID) ([]model.Crianca, error)
	// Desativar returns the number of rows updated so the caller can
	// distinguish "not found" from success.
	Desativar(ctx context.Context, id uuid.UUID) (int64, error)
	// CountTodas counts every child ever registered, active or not.
	CountTodas(ctx context.Context) (int64, error)
	// LockByID loads a child inside tx holding a row lock (SELECT … FOR
	// UPDATE), serializing concurrent check-in/check-out sequences for the
	// same child.
	LockByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Crianca, error)
}

type criancaRepo struct{ db *gorm.DB }

func NewCriancaRepository(db *gorm.DB) CriancaRepository { return &criancaRepo{db: db} }

func (r *criancaRepo) Create(ctx context.Context, c *model.Crianca) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *criancaRepo) ListAtivas(ctx context.Context) ([]model.Crianca, error) {
	var list []model.Crianca
	err := r.db.WithContext(ctx).Where("ativa = true").Order("nome asc").Find(&list).Error
	return list, err
}

func (r *criancaRepo) ListAtivasExcluindo(ctx context.Context, ids []uuid.UUID) ([]model.Crianca, error) {
	if len(ids) == 0 {
		return r.ListAtivas(ctx)
	}
	var list []model.Crianca
	err := r.db.WithContext(ctx).
		Where("ativa = true AND id NOT IN ?", ids).
		Order("nome asc").
		Find(&list).Error
	return list, err
}

func (r *criancaRepo) ListAtivasPorIDs(ctx context.Context, ids []uuid.UUID) ([]model.Crianca, error) {
	if len(ids) == 0 {
		return []model.Crianca{}, nil
	}
	var list []model.Crianca
	err := r.db.WithContext(ctx).
		Where("ativa = true AND id IN ?", ids).
		Order("nome asc").
		Find(&list).Error
	return list, err
}

func (r *criancaRepo) Desativar(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Crianca{}).Where("id = ?", id).Update("ativa", false)
	return res.RowsAffected, res.Error
}

func (r *criancaRepo) CountTodas(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Crianca{}).Count(&count).Error
	return count, err
}

func (r *criancaRepo) LockByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Crianca, error) {
	var c model.Crianca
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
