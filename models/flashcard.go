package models

// Flashcard is a single question/answer pair stored in the exam collection.
// A field missing from the request is stored as null.
type Flashcard struct {
	Question *string `json:"question" bson:"question"`
	Answer   *string `json:"answer" bson:"answer"`
	ID       string  `json:"_id" bson:"-"`
}
