package repository

import (
	"context"
	"time"

	"github.com/AthyrsonSousa/kids-guardian/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistroRepository persists attendance events. The log is append-only:
// no Update, no Delete.
type RegistroRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reg *model.Registro) error
	// UltimoPorCrianca returns the most recent event of any kind for a child,
	// or gorm.ErrRecordNotFound.
	UltimoPorCrianca(ctx context.Context, tx *gorm.DB, criancaID uuid.UUID) (*model.Registro, error)
	UltimoCheckinPorCrianca(ctx context.Context, tx *gorm.DB, criancaID uuid.UUID) (*model.Registro, error)
	// ExisteCheckoutDesde reports whether a check-out with data_hora >= desde
	// exists for the child.
	ExisteCheckoutDesde(ctx context.Context, tx *gorm.DB, criancaID uuid.UUID, desde time.Time) (bool, error)
	ListPorTipoEntre(ctx context.Context, tipo string, inicio, fim time.Time) ([]model.Registro, error)
	// RelatorioDia calls the get_daily_report database function and returns
	// its raw JSON result.
	RelatorioDia(ctx context.Context, data string) ([]byte, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type registroRepo struct{ db *gorm.DB }

func NewRegistroRepository(db *gorm.DB) RegistroRepository { return &registroRepo{db: db} }

func (r *registroRepo) DB() *gorm.DB { return r.db }

func (r *registroRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *registroRepo) Create(ctx context.Context, tx *gorm.DB, reg *model.Registro) error {
	return r.conn(tx).WithContext(ctx).Create(reg).Error
}

func (r *registroRepo) UltimoPorCrianca(ctx context.Context, tx *gorm.DB, criancaID uuid.UUID) (*model.Registro, error) {
	var reg model.Registro
	err := r.conn(tx).WithContext(ctx).
		Where("crianca_id = ?", criancaID).
		Order("data_hora desc").
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registroRepo) UltimoCheckinPorCrianca(ctx context.Context, tx *gorm.DB, criancaID uuid.UUID) (*model.Registro, error) {
	var reg model.Registro
	err := r.conn(tx).WithContext(ctx).
		Where("crianca_id = ? AND tipo = ?", criancaID, model.TipoCheckin).
		Order("data_hora desc").
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registroRepo) ExisteCheckoutDesde(ctx context.Context, tx *gorm.DB, criancaID uuid.UUID, desde time.Time) (bool, error) {
	var count int64
	err := r.conn(tx).WithContext(ctx).Model(&model.Registro{}).
		Where("crianca_id = ? AND tipo = ? AND data_hora >= ?", criancaID, model.TipoCheckout, desde).
		Count(&count).Error
	return count > 0, err
}

func (r *registroRepo) ListPorTipoEntre(ctx context.Context, tipo string, inicio, fim time.Time) ([]model.Registro, error) {
	var list []model.Registro
	err := r.db.WithContext(ctx).
		Where("tipo = ? AND data_hora >= ? AND data_hora < ?", tipo, inicio, fim).
		Order("data_hora asc").
		Find(&list).Error
	return list, err
}

func (r *registroRepo) RelatorioDia(ctx context.Context, data string) ([]byte, error) {
	var raw []byte
	row := r.db.WithContext(ctx).Raw("SELECT get_daily_report(?::date)", data).Row()
	if err := row.Scan(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
