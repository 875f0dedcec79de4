package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github/itish2003/studynotes/metrics"
	"github/itish2003/studynotes/models"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the gin engine with every route mounted under prefix.
func NewRouter(prefix string, study *StudyController, notes *NotesController, store Pinger) *gin.Engine {
	router := gin.Default()
	router.Use(metrics.Middleware())

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		resp := models.HealthResponse{
			Status:  "healthy",
			Service: "Study Notes API",
			Version: "1.0.0",
			Store:   "ok",
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Store = err.Error()
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(prefix)
	{
		api.GET("/exam/", study.GetExamFlashcards)
		api.Any("/exam/add/", study.AddExamFlashcard)
		api.GET("/test/:subject/", study.GetTestQuestions)
		api.GET("/note/:content/", notes.GetNoteQuestions)
		api.GET("/notes/:topicId/", notes.GetNotesByTopic)

		// Older clients still use the flashcard(s) paths.
		api.GET("/exam/flashcard/", study.GetExamFlashcards)
		api.Any("/exam/flashcards/add/", study.AddExamFlashcard)
	}

	return router
}
