package models

type AddFlashcardRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}
