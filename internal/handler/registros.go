package handler

import (
	"errors"
	"net/http"

	"github.com/AthyrsonSousa/kids-guardian/internal/apierror"
	"github.com/AthyrsonSousa/kids-guardian/internal/dto"
	"github.com/AthyrsonSousa/kids-guardian/internal/middleware"
	"github.com/AthyrsonSousa/kids-guardian/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegistrosHandler struct{ svc service.RegistroService }

func NewRegistrosHandler(svc service.RegistroService) *RegistrosHandler {
	return &RegistrosHandler{svc: svc}
}

// Checkin POST /api/registros/checkin
func (h *RegistrosHandler) Checkin(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	criancaID, err := uuid.Parse(req.CriancaID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID da criança é obrigatório para check-in."))
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.ID)

	if err := h.svc.Checkin(c.Request.Context(), criancaID, usuarioID); err != nil {
		if errors.Is(err, service.ErrCriancaJaPresente) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao registrar check-in."))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Check-in registrado com sucesso."})
}

// Checkout POST /api/registros/checkout
func (h *RegistrosHandler) Checkout(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	criancaID, err := uuid.Parse(req.CriancaID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID da criança é obrigatório para check-out."))
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.ID)

	if err := h.svc.Checkout(c.Request.Context(), criancaID, usuarioID); err != nil {
		if errors.Is(err, service.ErrSemCheckinAtivo) || errors.Is(err, service.ErrCheckoutJaRealizado) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao registrar check-out."))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Check-out registrado com sucesso."})
}

// Estatisticas GET /api/registros/estatisticas
func (h *RegistrosHandler) Estatisticas(c *gin.Context) {
	st, err := h.svc.Estatisticas(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor ao obter estatísticas."))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":                  true,
		"totalCriancasCadastradas": st.TotalCriancasCadastradas,
		"totalPresentesHoje":       st.TotalPresentesHoje,
		"totalCheckInsHoje":        st.TotalCheckInsHoje,
		"totalCheckOutsHoje":       st.TotalCheckOutsHoje,
	})
}

// RelatorioDia GET /api/registros/relatorio-dia?data=YYYY-MM-DD
func (h *RegistrosHandler) RelatorioDia(c *gin.Context) {
	data := c.Query("data")
	if data == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Data é obrigatória para o relatório."))
		return
	}

	relatorio, err := h.svc.RelatorioDia(c.Request.Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDataInvalida):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.Is(err, service.ErrRelatorioIndisponivel):
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		default:
			c.Error(err) //nolint:errcheck
			c.JSON(http.StatusInternalServerError, apierror.New("Erro ao obter relatório do dia."))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "relatorio": relatorio})
}
