package router

import (
	"net/http"
	"time"

	"github.com/AthyrsonSousa/kids-guardian/internal/apierror"
	"github.com/AthyrsonSousa/kids-guardian/internal/config"
	"github.com/AthyrsonSousa/kids-guardian/internal/handler"
	"github.com/AthyrsonSousa/kids-guardian/internal/middleware"
	"github.com/AthyrsonSousa/kids-guardian/internal/repository"
	"github.com/AthyrsonSousa/kids-guardian/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	criancaRepo := repository.NewCriancaRepository(db)
	registroRepo := repository.NewRegistroRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	criancaSvc := service.NewCriancaService(criancaRepo, registroRepo)
	registroSvc := service.NewRegistroService(registroRepo, criancaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	criancasH := handler.NewCriancasHandler(criancaSvc)
	registrosH := handler.NewRegistrosHandler(registroSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "🎉 API do Kids Guardian está funcionando!")
	})
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")

	// Login (public)
	api.POST("/login", middleware.LoginRateLimiter(rdb), authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	staff := middleware.RequireTipo("administrador", "voluntario")
	admin := middleware.RequireTipo("administrador")

	priv := api.Group("", jwtMW)
	{
		criancas := priv.Group("/criancas")
		{
			criancas.POST("/cadastrar", staff, criancasH.Cadastrar)
			criancas.GET("", staff, criancasH.Listar)
			criancas.GET("/checkin", staff, criancasH.DisponiveisCheckin)
			criancas.GET("/checkout", staff, criancasH.DisponiveisCheckout)
			criancas.DELETE("/:id", admin, criancasH.Desativar)
		}

		registros := priv.Group("/registros", staff)
		{
			registros.POST("/checkin", registrosH.Checkin)
			registros.POST("/checkout", registrosH.Checkout)
			registros.GET("/estatisticas", registrosH.Estatisticas)
			registros.GET("/relatorio-dia", registrosH.RelatorioDia)
		}

		usuarios := priv.Group("/usuarios", admin)
		{
			usuarios.POST("/cadastrar", usuariosH.Cadastrar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.DELETE("/:id", usuariosH.Remover)
		}
	}

	// Unmatched routes get the JSON envelope, not Gin's default plain 404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierror.New("Rota não encontrada."))
	})

	return r
}
