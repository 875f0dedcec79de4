package services

import (
	"sort"
	"strings"

	"github/itish2003/studynotes/models"

	"go.mongodb.org/mongo-driver/bson"
)

// flatTextFields are checked in priority order on flat-shape notes.
var flatTextFields = []string{"notes", "content", "text"}

// flatText returns the first non-empty string among the flat text fields.
func flatText(doc models.Document) (string, bool) {
	for _, key := range flatTextFields {
		if s, ok := doc.StringField(key); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// AggregateFlatText joins the text of every flat-shape note with single
// spaces, in store order. Notes without any text field are left out.
func AggregateFlatText(docs []models.Document) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if s, ok := flatText(doc); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// fieldShape tags the value of one field of a nested-indexed note.
type fieldShape int

const (
	shapeUnsupported fieldShape = iota
	shapeContentObject
	shapeOpaqueObject
	shapePlainString
)

type noteField struct {
	shape   fieldShape
	content interface{}
	object  models.Document
}

func classifyField(v interface{}) noteField {
	switch val := v.(type) {
	case string:
		return noteField{shape: shapePlainString, content: val}
	case bson.D:
		return classifyObject(models.Document(val))
	case models.Document:
		return classifyObject(val)
	case bson.M:
		return classifyObject(documentFromMap(val))
	case map[string]interface{}:
		return classifyObject(documentFromMap(val))
	default:
		return noteField{shape: shapeUnsupported}
	}
}

func classifyObject(obj models.Document) noteField {
	if content, ok := obj.Lookup("content"); ok {
		return noteField{shape: shapeContentObject, content: content}
	}
	return noteField{shape: shapeOpaqueObject, object: obj}
}

func documentFromMap(m map[string]interface{}) models.Document {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	doc := make(models.Document, 0, len(keys))
	for _, k := range keys {
		doc = append(doc, bson.E{Key: k, Value: m[k]})
	}
	return doc
}

// NormalizeTopicNotes flattens nested-indexed notes into one list, in
// document-then-field order. Every field except _id contributes: objects
// with content become {content}, other objects pass through unchanged,
// strings become {content}, anything else is dropped. Empty content is kept.
func NormalizeTopicNotes(docs []models.Document) []models.Document {
	notes := make([]models.Document, 0)
	for _, doc := range docs {
		for _, field := range doc {
			if field.Key == "_id" {
				continue
			}
			f := classifyField(field.Value)
			switch f.shape {
			case shapeContentObject, shapePlainString:
				notes = append(notes, models.Document{{Key: "content", Value: f.content}})
			case shapeOpaqueObject:
				notes = append(notes, f.object)
			}
		}
	}
	return notes
}
