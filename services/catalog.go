package services

import "sort"

// ExamCollection holds the flashcards.
const ExamCollection = "exam"

// testSubjects lists the subjects served by GET /test/{subject}/.
var testSubjects = []string{"dsa", "coa", "toc", "cn", "os"}

// noteSubjects lists the flat-shape note collections served by
// GET /note/{content}/.
var noteSubjects = []string{"notedsa", "notecoa", "notetoc", "notecn", "noteos"}

// topicMapping resolves GET /notes/{topicId}/ ids to note collections.
var topicMapping = map[string]string{
	"1": "noteos",
	"2": "notecn",
	"3": "notedsa",
	"4": "notetoc",
	"5": "notecoa",
}

func contains(set []string, key string) bool {
	for _, s := range set {
		if s == key {
			return true
		}
	}
	return false
}

// ValidTopics returns the topic ids in ascending order.
func ValidTopics() []string {
	ids := make([]string, 0, len(topicMapping))
	for id := range topicMapping {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// KnownCollections returns every collection the services read or write;
// the store registers exactly these.
func KnownCollections() []string {
	out := []string{ExamCollection}
	out = append(out, testSubjects...)
	out = append(out, noteSubjects...)
	return out
}
