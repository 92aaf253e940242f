package service

import (
	"context"
	"sort"
	"time"

	"github.com/AthyrsonSousa/kids-guardian/internal/model"
	"github.com/AthyrsonSousa/kids-guardian/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubUsuarioRepo struct {
	users     map[string]*model.Usuario
	createErr error
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if r.createErr != nil {
		return r.createErr
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.Nome] = u
	return nil
}

func (r *stubUsuarioRepo) FindByNome(_ context.Context, nome string) (*model.Usuario, error) {
	u, ok := r.users[nome]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	users := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Nome < users[j].Nome })
	return users, nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	for nome, u := range r.users {
		if u.ID == id {
			delete(r.users, nome)
			return 1, nil
		}
	}
	return 0, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

type stubCriancaRepo struct {
	criancas map[uuid.UUID]*model.Crianca
}

func newStubCriancaRepo() *stubCriancaRepo {
	return &stubCriancaRepo{criancas: make(map[uuid.UUID]*model.Crianca)}
}

func (r *stubCriancaRepo) Create(_ context.Context, c *model.Crianca) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.criancas[c.ID] = c
	return nil
}

func (r *stubCriancaRepo) sortedAtivas(filter func(*model.Crianca) bool) []model.Crianca {
	list := make([]model.Crianca, 0, len(r.criancas))
	for _, c := range r.criancas {
		if c.Ativa && filter(c) {
			list = append(list, *c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nome < list[j].Nome })
	return list
}

func (r *stubCriancaRepo) ListAtivas(_ context.Context) ([]model.Crianca, error) {
	return r.sortedAtivas(func(*model.Crianca) bool { return true }), nil
}

func (r *stubCriancaRepo) ListAtivasExcluindo(_ context.Context, ids []uuid.UUID) ([]model.Crianca, error) {
	excluded := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		excluded[id] = true
	}
	return r.sortedAtivas(func(c *model.Crianca) bool { return !excluded[c.ID] }), nil
}

func (r *stubCriancaRepo) ListAtivasPorIDs(_ context.Context, ids []uuid.UUID) ([]model.Crianca, error) {
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	return r.sortedAtivas(func(c *model.Crianca) bool { return wanted[c.ID] }), nil
}

func (r *stubCriancaRepo) Desativar(_ context.Context, id uuid.UUID) (int64, error) {
	c, ok := r.criancas[id]
	if !ok {
		return 0, nil
	}
	c.Ativa = false
	return 1, nil
}

func (r *stubCriancaRepo) CountTodas(_ context.Context) (int64, error) {
	return int64(len(r.criancas)), nil
}

func (r *stubCriancaRepo) LockByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*model.Crianca, error) {
	c, ok := r.criancas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

var _ repository.CriancaRepository = (*stubCriancaRepo)(nil)

type stubRegistroRepo struct {
	registros    []*model.Registro
	relatorio    []byte
	relatorioErr error
}

func newStubRegistroRepo() *stubRegistroRepo { return &stubRegistroRepo{} }

func (r *stubRegistroRepo) DB() *gorm.DB { return nil }

func (r *stubRegistroRepo) Create(_ context.Context, _ *gorm.DB, reg *model.Registro) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	r.registros = append(r.registros, reg)
	return nil
}

func (r *stubRegistroRepo) UltimoPorCrianca(_ context.Context, _ *gorm.DB, criancaID uuid.UUID) (*model.Registro, error) {
	var last *model.Registro
	for _, reg := range r.registros {
		if reg.CriancaID != criancaID {
			continue
		}
		if last == nil || !reg.DataHora.Before(last.DataHora) {
			last = reg
		}
	}
	if last == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return last, nil
}

func (r *stubRegistroRepo) UltimoCheckinPorCrianca(_ context.Context, _ *gorm.DB, criancaID uuid.UUID) (*model.Registro, error) {
	var last *model.Registro
	for _, reg := range r.registros {
		if reg.CriancaID != criancaID || reg.Tipo != model.TipoCheckin {
			continue
		}
		if last == nil || !reg.DataHora.Before(last.DataHora) {
			last = reg
		}
	}
	if last == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return last, nil
}

func (r *stubRegistroRepo) ExisteCheckoutDesde(_ context.Context, _ *gorm.DB, criancaID uuid.UUID, desde time.Time) (bool, error) {
	for _, reg := range r.registros {
		if reg.CriancaID == criancaID && reg.Tipo == model.TipoCheckout && !reg.DataHora.Before(desde) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRegistroRepo) ListPorTipoEntre(_ context.Context, tipo string, inicio, fim time.Time) ([]model.Registro, error) {
	var list []model.Registro
	for _, reg := range r.registros {
		if reg.Tipo == tipo && !reg.DataHora.Before(inicio) && reg.DataHora.Before(fim) {
			list = append(list, *reg)
		}
	}
	return list, nil
}

func (r *stubRegistroRepo) RelatorioDia(_ context.Context, _ string) ([]byte, error) {
	return r.relatorio, r.relatorioErr
}

var _ repository.RegistroRepository = (*stubRegistroRepo)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedCrianca(repo *stubCriancaRepo, nome string, sala int) *model.Crianca {
	c := &model.Crianca{
		ID:                uuid.New(),
		Nome:              nome,
		NomeResponsavel:   "Responsável de " + nome,
		NumeroResponsavel: "11999990000",
		Idade:             7,
		Sala:              sala,
		Ativa:             true,
	}
	repo.criancas[c.ID] = c
	return c
}

func seedRegistro(repo *stubRegistroRepo, criancaID uuid.UUID, tipo string, dataHora time.Time) {
	repo.registros = append(repo.registros, &model.Registro{
		ID:        uuid.New(),
		CriancaID: criancaID,
		UsuarioID: uuid.New(),
		Tipo:      tipo,
		DataHora:  dataHora,
	})
}
