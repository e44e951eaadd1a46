package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sambafall/missmister-api/docs"
	v1 "github.com/sambafall/missmister-api/internal/api/handler/v1"
	"github.com/sambafall/missmister-api/internal/api/middleware"
	"github.com/sambafall/missmister-api/internal/config"
	"github.com/sambafall/missmister-api/internal/repository"
	"github.com/sambafall/missmister-api/internal/repository/dao"
	"github.com/sambafall/missmister-api/internal/service"
)

const defaultTokenTTL = 12 * time.Hour

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	deadline, err := parseDeadline(conf.Voting.Deadline)
	if err != nil {
		return nil, fmt.Errorf("failed to parse voting deadline -> %w", err)
	}

	s.MountMiddlewares()

	candidateRepo := repository.NewCandidateRepository(dao.NewCandidateDAO(db))
	transactionRepo := repository.NewTransactionRepository(dao.NewTransactionDAO(db))

	voteSvc := service.NewVoteService(transactionRepo, deadline)
	statsSvc := service.NewStatsService(candidateRepo, transactionRepo, deadline)
	authSvc, err := service.NewAuthService(conf.Voting.AdminPassword, conf.API.JWTSigningKey, tokenTTL(conf.Voting.TokenTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service -> %w", err)
	}

	s.MountHandlers(
		v1.NewCandidateHandler(statsSvc),
		v1.NewVoteHandler(voteSvc),
		v1.NewAuthHandler(authSvc),
		v1.NewAdminHandler(voteSvc),
		v1.NewStatsHandler(statsSvc),
		v1.NewHealthHandler(db),
	)

	return s, nil
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	candidateHandler *v1.CandidateHandler,
	voteHandler *v1.VoteHandler,
	authHandler *v1.AuthHandler,
	adminHandler *v1.AdminHandler,
	statsHandler *v1.StatsHandler,
	healthHandler *v1.HealthHandler,
) {
	const basePath = "/api"

	public := s.Router.Group(basePath)
	{
		public.GET("/candidates", candidateHandler.HandleListCandidates)
		public.GET("/candidates/:category", candidateHandler.HandleListCandidatesByCategory)
		public.POST("/vote", voteHandler.HandleSubmitVote)
		public.GET("/check-transaction/:code", voteHandler.HandleCheckTransaction)
		public.POST("/admin/login", authHandler.HandleLogin)
		public.GET("/ranking", statsHandler.HandleRanking)
		public.GET("/ranking/:category", statsHandler.HandleRankingByCategory)
		public.GET("/stats", statsHandler.HandleStats)
		public.GET("/health", healthHandler.HandleHealthcheck)
	}

	admin := s.Router.Group(basePath+"/admin", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/transactions/pending", adminHandler.HandleListPending)
		admin.POST("/transactions/:id/validate", adminHandler.HandleValidate)
		admin.POST("/transactions/:id/reject", adminHandler.HandleReject)
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Miss & Mister Voting API"
	docs.SwaggerInfo.Description = "Voting backend for the Miss & Mister contest."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// parseDeadline reads the voting cutoff as a single UTC instant. An empty
// value means voting never closes.
func parseDeadline(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	deadline, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("time.Parse -> %w", err)
	}

	return deadline.UTC(), nil
}

func tokenTTL(value string) time.Duration {
	ttl, err := time.ParseDuration(value)
	if err != nil || ttl <= 0 {
		return defaultTokenTTL
	}

	return ttl
}
