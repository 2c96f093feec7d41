// Package httpapi exposes the TravelKeeper server over HTTP/JSON using gin.
// It owns the route table, the auth middleware and the mapping between
// service-level sentinel errors and HTTP status codes.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/travelkeeper/internal/logging"
	"github.com/dmitrijs2005/travelkeeper/internal/server/models"
	"github.com/dmitrijs2005/travelkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

// UserService is the slice of the user service the API needs.
type UserService interface {
	Register(ctx context.Context, name, email string, password []byte) (*models.User, *services.TokenPair, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// TravelService is the slice of the travel service the API needs.
type TravelService interface {
	Create(ctx context.Context, t *models.Travel, userID string) error
	Get(ctx context.Context, id string) (*models.Travel, error)
	List(ctx context.Context) ([]models.Travel, error)
	ListByUser(ctx context.Context, userID string) ([]models.Travel, error)
	Update(ctx context.Context, t *models.Travel, userID string) error
	Delete(ctx context.Context, id string, userID string) error
}

// PhotoService hands out presigned upload slots.
type PhotoService interface {
	GetPresignedPutUrl(ctx context.Context) (key, uploadURL, photoURL string, err error)
}

type Server struct {
	addr      string
	secretKey []byte
	logger    logging.Logger

	users   UserService
	travels TravelService
	photos  PhotoService

	engine *gin.Engine
}

// NewServer wires the route table and returns a server ready to Run.
func NewServer(addr string, secretKey []byte, logger logging.Logger,
	users UserService, travels TravelService, photos PhotoService) *Server {

	s := &Server{
		addr:      addr,
		secretKey: secretKey,
		logger:    logger.With("module", "httpapi"),
		users:     users,
		travels:   travels,
		photos:    photos,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api/v1")
	api.GET("/ping", s.ping)
	api.POST("/register", s.register)
	api.POST("/login", s.login)
	api.POST("/refresh", s.refresh)

	authed := api.Group("", s.authMiddleware())
	authed.POST("/travels", s.createTravel)
	authed.GET("/travels", s.listTravels)
	authed.GET("/travels/:id", s.getTravel)
	authed.PUT("/travels/:id", s.updateTravel)
	authed.DELETE("/travels/:id", s.deleteTravel)
	authed.POST("/photos", s.presignPhoto)

	s.engine = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info(ctx, "shutting down http server")
		return srv.Shutdown(shutdownCtx)
	}
}
