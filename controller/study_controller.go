package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/studynotes/models"
	"github/itish2003/studynotes/services"
)

// StudyController handles the flashcard and subject test endpoints.
type StudyController struct {
	studyService services.StudyService
}

func NewStudyController(service services.StudyService) *StudyController {
	return &StudyController{
		studyService: service,
	}
}

// GetExamFlashcards is the Gin handler for GET /exam/.
func (c *StudyController) GetExamFlashcards(ctx *gin.Context) {
	cards, err := c.studyService.ListFlashcards(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve flashcards"})
		return
	}
	ctx.JSON(http.StatusOK, cards)
}

// AddExamFlashcard is the Gin handler for /exam/add/. It is registered for
// every method so that non-POST requests get the same 400 the clients expect.
func (c *StudyController) AddExamFlashcard(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodPost {
		ctx.String(http.StatusBadRequest, "POST only")
		return
	}

	var req models.AddFlashcardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	card, err := c.studyService.AddFlashcard(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add flashcard"})
		return
	}
	ctx.JSON(http.StatusCreated, card)
}

// GetTestQuestions is the Gin handler for GET /test/{subject}/.
func (c *StudyController) GetTestQuestions(ctx *gin.Context) {
	docs, err := c.studyService.ListTestQuestions(ctx.Request.Context(), ctx.Param("subject"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidSubject) {
			ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid subject name"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retrieve test questions"})
		return
	}
	ctx.JSON(http.StatusOK, docs)
}
