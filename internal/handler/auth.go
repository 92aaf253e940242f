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

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNaoEncontrado) || errors.Is(err, service.ErrSenhaIncorreta) {
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro no servidor ao buscar usuário."))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login realizado com sucesso.",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// ── Usuarios Handler ─────────────────────────────────────────────────────────

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Cadastrar POST /api/usuarios/cadastrar
func (h *UsuariosHandler) Cadastrar(c *gin.Context) {
	var req dto.CadastrarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.CadastrarUsuario(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrNomeJaExiste) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao cadastrar usuário."))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Usuário cadastrado com sucesso!"})
}

// Listar GET /api/usuarios
func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar usuários."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "usuarios": resp})
}

// Remover DELETE /api/usuarios/:id
func (h *UsuariosHandler) Remover(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido."))
		return
	}
	claims := middleware.GetClaims(c)
	atorID, _ := uuid.Parse(claims.ID)

	if err := h.svc.RemoverUsuario(c.Request.Context(), atorID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrAutoRemocao):
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		case errors.Is(err, service.ErrUsuarioNaoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		default:
			c.Error(err) //nolint:errcheck
			c.JSON(http.StatusInternalServerError, apierror.New("Erro ao remover usuário."))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Usuário removido com sucesso."})
}
