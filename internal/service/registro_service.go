package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/AthyrsonSousa/kids-guardian/internal/dto"
	"github.com/AthyrsonSousa/kids-guardian/internal/model"
	"github.com/AthyrsonSousa/kids-guardian/internal/opday"
	"github.com/AthyrsonSousa/kids-guardian/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// RegistroService drives the presence state machine over the append-only
// attendance ledger. Per child: Absent --check-in--> Present and
// Present --check-out--> Absent; any other transition is rejected without
// touching the log.
type RegistroService interface {
	Checkin(ctx context.Context, criancaID, usuarioID uuid.UUID) error
	Checkout(ctx context.Context, criancaID, usuarioID uuid.UUID) error
	Estatisticas(ctx context.Context) (*dto.EstatisticasResponse, error)
	RelatorioDia(ctx context.Context, data string) (json.RawMessage, error)
}

type registroService struct {
	repo        repository.RegistroRepository
	criancaRepo repository.CriancaRepository
}

func NewRegistroService(repo repository.RegistroRepository, criancaRepo repository.CriancaRepository) RegistroService {
	return &registroService{repo: repo, criancaRepo: criancaRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Checkin appends a check-in event unless the child is already present.
// The read-then-append sequence runs under a row lock on the child so two
// concurrent check-ins cannot both pass the presence check; the loser sees
// the usual conflict.
func (s *registroService) Checkin(ctx context.Context, criancaID, usuarioID uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.criancaRepo.LockByID(ctx, tx, criancaID); err != nil {
			return err
		}

		ultimo, err := s.repo.UltimoPorCrianca(ctx, tx, criancaID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if ultimo != nil && ultimo.Tipo == model.TipoCheckin {
			fechado, err := s.repo.ExisteCheckoutDesde(ctx, tx, criancaID, ultimo.DataHora)
			if err != nil {
				return err
			}
			if !fechado {
				return ErrCriancaJaPresente
			}
		}

		return s.repo.Create(ctx, tx, &model.Registro{
			CriancaID: criancaID,
			UsuarioID: usuarioID,
			Tipo:      model.TipoCheckin,
			DataHora:  time.Now().UTC(),
		})
	})
}

// Checkout appends a check-out event closing the child's open check-in.
// A check-out with data_hora >= the last check-in already closes the pair:
// equal timestamps are treated as "already checked out".
func (s *registroService) Checkout(ctx context.Context, criancaID, usuarioID uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.criancaRepo.LockByID(ctx, tx, criancaID); err != nil {
			return err
		}

		ultimoCheckin, err := s.repo.UltimoCheckinPorCrianca(ctx, tx, criancaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSemCheckinAtivo
			}
			return err
		}

		fechado, err := s.repo.ExisteCheckoutDesde(ctx, tx, criancaID, ultimoCheckin.DataHora)
		if err != nil {
			return err
		}
		if fechado {
			return ErrCheckoutJaRealizado
		}

		return s.repo.Create(ctx, tx, &model.Registro{
			CriancaID: criancaID,
			UsuarioID: usuarioID,
			Tipo:      model.TipoCheckout,
			DataHora:  time.Now().UTC(),
		})
	})
}

// Estatisticas loads the operational day's events and derives the dashboard
// counters in memory. TotalCriancasCadastradas counts every child ever
// registered, active or not.
func (s *registroService) Estatisticas(ctx context.Context) (*dto.EstatisticasResponse, error) {
	inicio, fim := opday.Window(time.Now())

	total, err := s.criancaRepo.CountTodas(ctx)
	if err != nil {
		return nil, err
	}
	checkins, err := s.repo.ListPorTipoEntre(ctx, model.TipoCheckin, inicio, fim)
	if err != nil {
		return nil, err
	}
	checkouts, err := s.repo.ListPorTipoEntre(ctx, model.TipoCheckout, inicio, fim)
	if err != nil {
		return nil, err
	}

	presentes := criancasPresentes(checkins, checkouts)

	return &dto.EstatisticasResponse{
		TotalCriancasCadastradas: total,
		TotalPresentesHoje:       len(presentes),
		TotalCheckInsHoje:        len(checkins),
		TotalCheckOutsHoje:       len(checkouts),
	}, nil
}

// RelatorioDia delegates to the get_daily_report database function. The
// service only validates the date and translates "function missing" into an
// explicit message.
func (s *registroService) RelatorioDia(ctx context.Context, data string) (json.RawMessage, error) {
	if _, err := time.Parse("2006-01-02", data); err != nil {
		return nil, ErrDataInvalida
	}

	raw, err := s.repo.RelatorioDia(ctx, data)
	if err != nil {
		var pgErr *pgconn.PgError
		// 42883: undefined_function
		if errors.As(err, &pgErr) && pgErr.Code == "42883" {
			return nil, ErrRelatorioIndisponivel
		}
		return nil, err
	}
	return raw, nil
}
