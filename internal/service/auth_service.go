package service

import (
	"context"
	"errors"
	"time"

	"github.com/AthyrsonSousa/kids-guardian/internal/config"
	"github.com/AthyrsonSousa/kids-guardian/internal/dto"
	"github.com/AthyrsonSousa/kids-guardian/internal/model"
	"github.com/AthyrsonSousa/kids-guardian/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService covers credential verification, token issuance and staff
// account management (user management is admin-only at the route level).
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CadastrarUsuario(ctx context.Context, req dto.CadastrarUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	// RemoverUsuario hard-deletes a staff account. The acting admin cannot
	// remove their own account.
	RemoverUsuario(ctx context.Context, atorID, id uuid.UUID) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByNome(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Password)); err != nil {
		return nil, ErrSenhaIncorreta
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  mapUsuario(*user),
	}, nil
}

func (s *authService) CadastrarUsuario(ctx context.Context, req dto.CadastrarUsuarioRequest) (*dto.UsuarioResponse, error) {
	existing, err := s.repo.FindByNome(ctx, req.Nome)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNomeJaExiste
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Nome:      req.Nome,
		Tipo:      req.Tipo,
		SenhaHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// A concurrent insert can slip past FindByNome; the unique index on
		// nome reports it as 23505 (unique_violation).
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrNomeJaExiste
		}
		return nil, err
	}
	resp := mapUsuario(*user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i, u := range users {
		resp[i] = mapUsuario(u)
	}
	return resp, nil
}

func (s *authService) RemoverUsuario(ctx context.Context, atorID, id uuid.UUID) error {
	if atorID == id {
		return ErrAutoRemocao
	}
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUsuarioNaoEncontrado
	}
	return nil
}

// generateToken issues the HS256 bearer token: identity, name and role, with
// a fixed validity window.
func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   user.ID.String(),
		"nome": user.Nome,
		"tipo": user.Tipo,
		"exp":  now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// mapUsuario converts a model to its outward DTO. The password hash is never
// serialized.
func mapUsuario(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{ID: u.ID.String(), Nome: u.Nome, Tipo: u.Tipo}
}
