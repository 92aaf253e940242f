package service

import (
	"context"
	"time"

	"github.com/AthyrsonSousa/kids-guardian/internal/dto"
	"github.com/AthyrsonSousa/kids-guardian/internal/model"
	"github.com/AthyrsonSousa/kids-guardian/internal/opday"
	"github.com/AthyrsonSousa/kids-guardian/internal/repository"

	"github.com/google/uuid"
)

// CriancaService defines business operations for the child registry,
// including the presence-derived availability listings.
type CriancaService interface {
	Cadastrar(ctx context.Context, req dto.CadastrarCriancaRequest) (*dto.CriancaResponse, error)
	Listar(ctx context.Context) ([]dto.CriancaResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
	// DisponiveisParaCheckin lists active children whose derived state is
	// Absent in the current operational day.
	DisponiveisParaCheckin(ctx context.Context) ([]dto.CriancaResponse, error)
	// DisponiveisParaCheckout lists active children with at least one
	// check-in in the current operational day. Looser than the check-in
	// listing: existence only, no state-machine closure.
	DisponiveisParaCheckout(ctx context.Context) ([]dto.CriancaResponse, error)
}

type criancaService struct {
	repo         repository.CriancaRepository
	registroRepo repository.RegistroRepository
}

func NewCriancaService(repo repository.CriancaRepository, registroRepo repository.RegistroRepository) CriancaService {
	return &criancaService{repo: repo, registroRepo: registroRepo}
}

func mapCrianca(c model.Crianca) dto.CriancaResponse {
	return dto.CriancaResponse{
		ID:                c.ID.String(),
		Nome:              c.Nome,
		NomeResponsavel:   c.NomeResponsavel,
		NumeroResponsavel: c.NumeroResponsavel,
		Idade:             c.Idade,
		Sala:              c.Sala,
		Observacoes:       c.Observacoes,
		Ativa:             c.Ativa,
	}
}

func mapCriancas(list []model.Crianca) []dto.CriancaResponse {
	resp := make([]dto.CriancaResponse, len(list))
	for i, c := range list {
		resp[i] = mapCrianca(c)
	}
	return resp
}

func (s *criancaService) Cadastrar(ctx context.Context, req dto.CadastrarCriancaRequest) (*dto.CriancaResponse, error) {
	c := &model.Crianca{
		Nome:              req.Nome,
		NomeResponsavel:   req.NomeResponsavel,
		NumeroResponsavel: req.NumeroResponsavel,
		Idade:             req.Idade,
		Sala:              req.Sala,
		Observacoes:       req.Observacoes,
		Ativa:             true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCrianca(*c)
	return &resp, nil
}

func (s *criancaService) Listar(ctx context.Context) ([]dto.CriancaResponse, error) {
	list, err := s.repo.ListAtivas(ctx)
	if err != nil {
		return nil, err
	}
	return mapCriancas(list), nil
}

func (s *criancaService) Desativar(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Desativar(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCriancaNaoEncontrada
	}
	return nil
}

func (s *criancaService) DisponiveisParaCheckin(ctx context.Context) ([]dto.CriancaResponse, error) {
	inicio, fim := opday.Window(time.Now())

	checkins, err := s.registroRepo.ListPorTipoEntre(ctx, model.TipoCheckin, inicio, fim)
	if err != nil {
		return nil, err
	}
	checkouts, err := s.registroRepo.ListPorTipoEntre(ctx, model.TipoCheckout, inicio, fim)
	if err != nil {
		return nil, err
	}

	presentes := criancasPresentes(checkins, checkouts)
	list, err := s.repo.ListAtivasExcluindo(ctx, presentes)
	if err != nil {
		return nil, err
	}
	return mapCriancas(list), nil
}

func (s *criancaService) DisponiveisParaCheckout(ctx context.Context) ([]dto.CriancaResponse, error) {
	inicio, fim := opday.Window(time.Now())

	checkins, err := s.registroRepo.ListPorTipoEntre(ctx, model.TipoCheckin, inicio, fim)
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]bool, len(checkins))
	ids := make([]uuid.UUID, 0, len(checkins))
	for _, reg := range checkins {
		if !seen[reg.CriancaID] {
			seen[reg.CriancaID] = true
			ids = append(ids, reg.CriancaID)
		}
	}
	if len(ids) == 0 {
		return []dto.CriancaResponse{}, nil
	}

	list, err := s.repo.ListAtivasPorIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapCriancas(list), nil
}
