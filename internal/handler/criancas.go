package handler

import (
	"errors"
	"net/http"

	"github.com/AthyrsonSousa/kids-guardian/internal/apierror"
	"github.com/AthyrsonSousa/kids-guardian/internal/dto"
	"github.com/AthyrsonSousa/kids-guardian/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CriancasHandler struct{ svc service.CriancaService }

func NewCriancasHandler(svc service.CriancaService) *CriancasHandler {
	return &CriancasHandler{svc: svc}
}

// Cadastrar POST /api/criancas/cadastrar
func (h *CriancasHandler) Cadastrar(c *gin.Context) {
	var req dto.CadastrarCriancaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Cadastrar(c.Request.Context(), req); err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao cadastrar criança."))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Criança cadastrada com sucesso!"})
}

// Listar GET /api/criancas
func (h *CriancasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar crianças."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "criancas": resp})
}

// Desativar DELETE /api/criancas/:id
func (h *CriancasHandler) Desativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido."))
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCriancaNaoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao desativar criança."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Criança desativada com sucesso."})
}

// DisponiveisCheckin GET /api/criancas/checkin
func (h *CriancasHandler) DisponiveisCheckin(c *gin.Context) {
	resp, err := h.svc.DisponiveisParaCheckin(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao buscar crianças para check-in."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "criancas": resp})
}

// DisponiveisCheckout GET /api/criancas/checkout
func (h *CriancasHandler) DisponiveisCheckout(c *gin.Context) {
	resp, err := h.svc.DisponiveisParaCheckout(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao buscar crianças para check-out."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "criancas": resp})
}
