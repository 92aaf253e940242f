package repository

import (
	"context"

	"github.com/AthyrsonSousa/kids-guardian/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	// FindByNome matches the login name exactly.
	FindByNome(ctx context.Context, nome string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	// Delete returns the number of rows removed so the caller can distinguish
	// "not found" from success.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByNome(ctx context.Context, nome string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Order("nome asc").Find(&users).Error
	return users, err
}

func (r *usuarioRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Usuario{})
	return res.RowsAffected, res.Error
}
