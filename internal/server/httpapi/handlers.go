package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/travelkeeper/internal/common"
	"github.com/dmitrijs2005/travelkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

// travelJSON is the wire form of a travel record, shared by requests and
// responses.
type travelJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	PhotoURL    string    `json:"photo_url"`
}

func toWire(t *models.Travel) travelJSON {
	return travelJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		UserID:      t.UserID,
		UserName:    t.UserName,
		Latitude:    t.Latitude,
		Longitude:   t.Longitude,
		PhotoURL:    t.PhotoURL,
	}
}

func fromWire(w travelJSON) models.Travel {
	return models.Travel{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Date:        w.Date,
		UserID:      w.UserID,
		Latitude:    w.Latitude,
		Longitude:   w.Longitude,
		PhotoURL:    w.PhotoURL,
	}
}

type userJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refresh_token"`
	User         userJSON `json:"user"`
}

// abortWithError maps service sentinel errors to HTTP statuses.
func (s *Server) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrRefreshTokenExpired):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrorEmailAlreadyTaken):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "email already taken"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, pair, err := s.users.Register(c.Request.Context(), req.Name, req.Email, []byte(req.Password))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userJSON{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, pair, err := s.users.Login(c.Request.Context(), req.Email, []byte(req.Password))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         userJSON{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (s *Server) refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := s.users.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

func (s *Server) createTravel(c *gin.Context) {
	var req travelJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" || req.Title == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "id and title are required"})
		return
	}

	t := fromWire(req)
	if err := s.travels.Create(c.Request.Context(), &t, currentUserID(c)); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWire(&t))
}

func (s *Server) listTravels(c *gin.Context) {
	var (
		list []models.Travel
		err  error
	)
	if userID := c.Query("user_id"); userID != "" {
		list, err = s.travels.ListByUser(c.Request.Context(), userID)
	} else {
		list, err = s.travels.List(c.Request.Context())
	}
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	out := make([]travelJSON, 0, len(list))
	for i := range list {
		out = append(out, toWire(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getTravel(c *gin.Context) {
	t, err := s.travels.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWire(t))
}

func (s *Server) updateTravel(c *gin.Context) {
	var req travelJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := fromWire(req)
	t.ID = c.Param("id")
	if err := s.travels.Update(c.Request.Context(), &t, currentUserID(c)); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWire(&t))
}

func (s *Server) deleteTravel(c *gin.Context) {
	if err := s.travels.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) presignPhoto(c *gin.Context) {
	key, uploadURL, photoURL, err := s.photos.GetPresignedPutUrl(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "upload_url": uploadURL, "photo_url": photoURL})
}
