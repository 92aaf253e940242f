package service

import (
	"context"
	"testing"
	"time"

	"github.com/AthyrsonSousa/kids-guardian/internal/model"
	"github.com/AthyrsonSousa/kids-guardian/internal/opday"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func buildRegistroSvc() (RegistroService, *stubRegistroRepo, *stubCriancaRepo) {
	regRepo := newStubRegistroRepo()
	criRepo := newStubCriancaRepo()
	return NewRegistroService(regRepo, criRepo), regRepo, criRepo
}

func TestCheckinDepoisCheckoutDepoisCheckin(t *testing.T) {
	svc, regRepo, criRepo := buildRegistroSvc()
	ctx := context.Background()
	staff := uuid.New()
	c := seedCrianca(criRepo, "Alice", 2)

	require.NoError(t, svc.Checkin(ctx, c.ID, staff))
	require.NoError(t, svc.Checkout(ctx, c.ID, staff))
	require.NoError(t, svc.Checkin(ctx, c.ID, staff))

	require.Len(t, regRepo.registros, 3)
	assert.Equal(t, model.TipoCheckin, regRepo.registros[0].Tipo)
	assert.Equal(t, model.TipoCheckout, regRepo.registros[1].Tipo)
	assert.Equal(t, model.TipoCheckin, regRepo.registros[2].Tipo)
}

func TestCheckinDuplicadoRejeitado(t *testing.T) {
	svc, regRepo, criRepo := buildRegistroSvc()
	ctx := context.Background()
	staff := uuid.New()
	c := seedCrianca(criRepo, "Alice", 2)

	require.NoError(t, svc.Checkin(ctx, c.ID, staff))

	err := svc.Checkin(ctx, c.ID, staff)
	assert.ErrorIs(t, err, ErrCriancaJaPresente)
	// The rejected transition must not touch the log.
	assert.Len(t, regRepo.registros, 1)
}

func TestCheckoutSemCheckinRejeitado(t *testing.T) {
	svc, regRepo, criRepo := buildRegistroSvc()
	c := seedCrianca(criRepo, "Alice", 2)

	err := svc.Checkout(context.Background(), c.ID, uuid.New())
	assert.ErrorIs(t, err, ErrSemCheckinAtivo)
	assert.Empty(t, regRepo.registros)
}

func TestCheckoutDuplicadoRejeitado(t *testing.T) {
	svc, regRepo, criRepo := buildRegistroSvc()
	ctx := context.Background()
	staff := uuid.New()
	c := seedCrianca(criRepo, "Alice", 2)

	require.NoError(t, svc.Checkin(ctx, c.ID, staff))
	require.NoError(t, svc.Checkout(ctx, c.ID, staff))

	err := svc.Checkout(ctx, c.ID, staff)
	assert.ErrorIs(t, err, ErrCheckoutJaRealizado)
	assert.Len(t, regRepo.registros, 2)
}

func TestCheckoutComTimestampIgualContaComoFechado(t *testing.T) {
	svc, regRepo, criRepo := buildRegistroSvc()
	c := seedCrianca(criRepo, "Alice", 2)

	// check-in and check-out at the exact same instant: the pair counts as
	// closed, so another check-out is a conflict and a check-in is allowed.
	agora := time.Now().UTC()
	seedRegistro(regRepo, c.ID, model.TipoCheckin, agora)
	seedRegistro(regRepo, c.ID, model.TipoCheckout, agora)

	err := svc.Checkout(context.Background(), c.ID, uuid.New())
	assert.ErrorIs(t, err, ErrCheckoutJaRealizado)

	assert.NoError(t, svc.Checkin(context.Background(), c.ID, uuid.New()))
}

func TestCheckinCriancaInexistente(t *testing.T) {
	svc, regRepo, _ := buildRegistroSvc()

	err := svc.Checkin(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, regRepo.registros)
}

func TestEstatisticas(t *testing.T) {
	svc, regRepo, criRepo := buildRegistroSvc()

	a := seedCrianca(criRepo, "Alice", 1)
	b := seedCrianca(criRepo, "Bruno", 2)
	c := seedCrianca(criRepo, "Clara", 3)
	inativa := seedCrianca(criRepo, "Diana", 4)
	inativa.Ativa = false

	// Anchor timestamps to the operational window so the test is immune to
	// running right after the 05:00 UTC boundary.
	inicio, _ := opday.Window(time.Now())
	seedRegistro(regRepo, a.ID, model.TipoCheckin, inicio.Add(10*time.Minute))
	seedRegistro(regRepo, b.ID, model.TipoCheckin, inicio.Add(20*time.Minute))
	seedRegistro(regRepo, c.ID, model.TipoCheckin, inicio.Add(30*time.Minute))
	seedRegistro(regRepo, a.ID, model.TipoCheckout, inicio.Add(40*time.Minute))

	st, err := svc.Estatisticas(context.Background())
	require.NoError(t, err)

	// Registered count is all-time, including the deactivated child.
	assert.Equal(t, int64(4), st.TotalCriancasCadastradas)
	assert.Equal(t, 3, st.TotalCheckInsHoje)
	assert.Equal(t, 1, st.TotalCheckOutsHoje)
	assert.Equal(t, 2, st.TotalPresentesHoje)
}

func TestEstatisticasIgnoraEventosForaDoDiaOperacional(t *testing.T) {
	svc, regRepo, criRepo := buildRegistroSvc()
	a := seedCrianca(criRepo, "Alice", 1)

	// An event older than 24h is always outside the current window.
	seedRegistro(regRepo, a.ID, model.TipoCheckin, time.Now().UTC().Add(-25*time.Hour))

	st, err := svc.Estatisticas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, st.TotalCheckInsHoje)
	assert.Equal(t, 0, st.TotalPresentesHoje)
}

func TestRelatorioDia(t *testing.T) {
	svc, regRepo, _ := buildRegistroSvc()
	regRepo.relatorio = []byte(`[{"crianca":"Alice"}]`)

	raw, err := svc.RelatorioDia(context.Background(), "2026-08-30")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"crianca":"Alice"}]`, string(raw))
}

func TestRelatorioDiaDataInvalida(t *testing.T) {
	svc, _, _ := buildRegistroSvc()

	_, err := svc.RelatorioDia(context.Background(), "30/08/2026")
	assert.ErrorIs(t, err, ErrDataInvalida)
}

func TestRelatorioDiaFuncaoAusente(t *testing.T) {
	svc, regRepo, _ := buildRegistroSvc()
	regRepo.relatorioErr = &pgconn.PgError{Code: "42883", Message: "function get_daily_report(date) does not exist"}

	_, err := svc.RelatorioDia(context.Background(), "2026-08-30")
	assert.ErrorIs(t, err, ErrRelatorioIndisponivel)
}
