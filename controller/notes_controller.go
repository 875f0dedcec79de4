package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github/itish2003/studynotes/models"
	"github/itish2003/studynotes/services"
)

// NotesController handles the note endpoints. With debugErrors set, server
// errors carry the underlying message and stack trace.
type NotesController struct {
	notesService services.NotesService
	debugErrors  bool
}

func NewNotesController(service services.NotesService, debugErrors bool) *NotesController {
	return &NotesController{
		notesService: service,
		debugErrors:  debugErrors,
	}
}

// GetNoteQuestions is the Gin handler for GET /note/{content}/. It returns
// the stored notes together with their summary and pointwise breakdown.
func (c *NotesController) GetNoteQuestions(ctx *gin.Context) {
	resp, err := c.notesService.GetEnrichedNotes(ctx.Request.Context(), ctx.Param("content"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidSubject) {
			ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid subject name"})
			return
		}
		log.Printf("CONTROLLER ERROR: %s: %v", ctx.Request.URL.Path, err)
		body := models.ErrorResponse{Error: "Failed to retrieve notes"}
		if errors.Is(err, services.ErrSummarizationFailed) {
			body.Error = "Failed to summarize notes"
		}
		if c.debugErrors {
			body.Error = err.Error()
			body.Traceback = fmt.Sprintf("%+v", err)
		}
		ctx.JSON(http.StatusInternalServerError, body)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetNotesByTopic is the Gin handler for GET /notes/{topicId}/.
func (c *NotesController) GetNotesByTopic(ctx *gin.Context) {
	topicID := ctx.Param("topicId")
	resp, err := c.notesService.GetNotesByTopic(ctx.Request.Context(), topicID)
	if err == nil {
		ctx.JSON(http.StatusOK, resp)
		return
	}

	var unavailable *services.CollectionUnavailableError
	switch {
	case errors.Is(err, services.ErrInvalidTopic):
		ctx.JSON(http.StatusBadRequest, models.TopicErrorResponse{
			Success:     false,
			Error:       "Invalid topic_id",
			ValidTopics: services.ValidTopics(),
		})
	case errors.As(err, &unavailable):
		log.Printf("CONTROLLER ERROR: %s: %v", ctx.Request.URL.Path, err)
		ctx.JSON(http.StatusInternalServerError, models.TopicErrorResponse{
			Success: false,
			Error:   unavailable.Error(),
		})
	default:
		log.Printf("CONTROLLER ERROR: %s: %v", ctx.Request.URL.Path, err)
		body := models.TopicErrorResponse{
			Success: false,
			Error:   "Failed to retrieve notes",
			TopicID: topicID,
		}
		if c.debugErrors {
			body.Error = err.Error()
			body.Traceback = fmt.Sprintf("%+v", err)
		}
		ctx.JSON(http.StatusInternalServerError, body)
	}
}
