package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github/itish2003/studynotes/models"
	"github/itish2003/studynotes/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newNotesFixture(t *testing.T) (*store.MemoryStore, *fakeSummarizer, NotesService) {
	t.Helper()
	st := store.NewMemoryStore(KnownCollections())
	fake := &fakeSummarizer{}
	return st, fake, NewNotesService(st, newTestEnricher(fake))
}

func TestGetEnrichedNotesInvalidSubject(t *testing.T) {
	st, fake, svc := newNotesFixture(t)

	for _, subject := range []string{"", "dsa", "notes", "NOTEDSA", "noteos/"} {
		_, err := svc.GetEnrichedNotes(context.Background(), subject)
		if !errors.Is(err, ErrInvalidSubject) {
			t.Fatalf("subject %q: expected ErrInvalidSubject, got %v", subject, err)
		}
	}
	if st.Finds() != 0 {
		t.Fatalf("expected the store to be untouched, got %d finds", st.Finds())
	}
	if fake.callCount() != 0 {
		t.Fatalf("expected no summarizer calls")
	}
}

func TestGetEnrichedNotesEmptyCollection(t *testing.T) {
	_, fake, svc := newNotesFixture(t)

	resp, err := svc.GetEnrichedNotes(context.Background(), "notedsa")
	if err != nil {
		t.Fatalf("GetEnrichedNotes() error = %v", err)
	}
	if !resp.Success || resp.Subject != "notedsa" || resp.TotalNotes != 0 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Summary != "No notes found for summarization." {
		t.Fatalf("unexpected summary %q", resp.Summary)
	}
	if resp.Notes == nil || len(resp.Notes) != 0 || resp.Pointwise == nil || len(resp.Pointwise) != 0 {
		t.Fatalf("expected empty non-nil lists, got %+v", resp)
	}
	if fake.callCount() != 0 {
		t.Fatalf("expected no summarizer calls, got %d", fake.callCount())
	}
}

func TestGetEnrichedNotesWithoutText(t *testing.T) {
	st, fake, svc := newNotesFixture(t)
	if err := st.Seed("notecn",
		models.Document{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "TCP"}},
		models.Document{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "notes", Value: "   "}},
	); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	resp, err := svc.GetEnrichedNotes(context.Background(), "notecn")
	if err != nil {
		t.Fatalf("GetEnrichedNotes() error = %v", err)
	}
	if resp.Summary != "No text content found in notes." || len(resp.Pointwise) != 0 {
		t.Fatalf("unexpected enrichment %+v", resp)
	}
	if resp.TotalNotes != 2 || len(resp.Notes) != 2 {
		t.Fatalf("expected both documents returned, got %d", resp.TotalNotes)
	}
	if fake.callCount() != 0 {
		t.Fatalf("expected no summarizer calls, got %d", fake.callCount())
	}
}

func TestGetEnrichedNotesSummarizes(t *testing.T) {
	st, fake, svc := newNotesFixture(t)
	oid := primitive.NewObjectID()
	if err := st.Seed("noteos",
		models.Document{{Key: "_id", Value: oid}, {Key: "notes", Value: "A process is a program in execution."}},
		models.Document{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "text", Value: "Threads share memory."}},
	); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	resp, err := svc.GetEnrichedNotes(context.Background(), "noteos")
	if err != nil {
		t.Fatalf("GetEnrichedNotes() error = %v", err)
	}
	if fake.callCount() != 1 {
		t.Fatalf("expected one summarizer call, got %d", fake.callCount())
	}
	if fake.calls[0] != "A process is a program in execution. Threads share memory." {
		t.Fatalf("unexpected aggregated text %q", fake.calls[0])
	}
	if resp.Summary != "Summary A." || !reflect.DeepEqual(resp.Pointwise, []string{"1. Summary A."}) {
		t.Fatalf("unexpected enrichment %+v", resp)
	}
	if resp.TotalNotes != 2 {
		t.Fatalf("expected 2 notes, got %d", resp.TotalNotes)
	}
	if id, _ := resp.Notes[0].Lookup("_id"); id != oid.Hex() {
		t.Fatalf("expected stringified id %s, got %v", oid.Hex(), id)
	}
}

func TestGetEnrichedNotesSummarizerFailure(t *testing.T) {
	st := store.NewMemoryStore(KnownCollections())
	svc := NewNotesService(st, newTestEnricher(&fakeSummarizer{err: errors.New("quota exceeded")}))
	if err := st.Seed("notetoc", models.Document{{Key: "_id", Value: "1"}, {Key: "content", Value: "DFA."}}); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	_, err := svc.GetEnrichedNotes(context.Background(), "notetoc")
	if err == nil || errors.Is(err, ErrInvalidSubject) {
		t.Fatalf("expected an internal error, got %v", err)
	}
	if !errors.Is(err, ErrSummarizationFailed) {
		t.Fatalf("expected a summarization failure, got %v", err)
	}
}

func TestGetNotesByTopicInvalid(t *testing.T) {
	st, _, svc := newNotesFixture(t)
	for _, id := range []string{"0", "6", "", "one", "noteos"} {
		_, err := svc.GetNotesByTopic(context.Background(), id)
		if !errors.Is(err, ErrInvalidTopic) {
			t.Fatalf("topic %q: expected ErrInvalidTopic, got %v", id, err)
		}
	}
	if st.Finds() != 0 {
		t.Fatalf("expected the store to be untouched")
	}
}

func TestGetNotesByTopicNormalizes(t *testing.T) {
	st, _, svc := newNotesFixture(t)
	if err := st.Seed("notedsa", models.Document{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "0", Value: bson.D{{Key: "content", Value: "Arrays are contiguous."}}},
		{Key: "1", Value: "Linked lists use pointers."},
		{Key: "2", Value: bson.D{{Key: "title", Value: "Trees"}}},
	}); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	resp, err := svc.GetNotesByTopic(context.Background(), "3")
	if err != nil {
		t.Fatalf("GetNotesByTopic() error = %v", err)
	}
	if !resp.Success || resp.TopicID != "3" || resp.Collection != "notedsa" {
		t.Fatalf("unexpected response header %+v", resp)
	}
	if resp.Count != 3 || len(resp.Notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", resp.Count)
	}
	if v, _ := resp.Notes[2].Lookup("title"); v != "Trees" {
		t.Fatalf("expected pass-through object last, got %#v", resp.Notes[2])
	}
}

func TestGetNotesByTopicCollectionUnavailable(t *testing.T) {
	st := store.NewMemoryStore([]string{"notecn"})
	svc := NewNotesService(st, newTestEnricher(&fakeSummarizer{}))

	_, err := svc.GetNotesByTopic(context.Background(), "1")
	if !errors.Is(err, ErrCollectionUnavailable) {
		t.Fatalf("expected ErrCollectionUnavailable, got %v", err)
	}
	if errors.Is(err, ErrInvalidTopic) {
		t.Fatalf("collection failures must not look like invalid input")
	}
	var unavailable *CollectionUnavailableError
	if !errors.As(err, &unavailable) || unavailable.Collection != "noteos" {
		t.Fatalf("expected collection noteos in error, got %v", err)
	}
	if unavailable.Error() != "Collection noteos not found" {
		t.Fatalf("unexpected message %q", unavailable.Error())
	}
}

func TestValidTopics(t *testing.T) {
	want := []string{"1", "2", "3", "4", "5"}
	if got := ValidTopics(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ValidTopics() = %v, want %v", got, want)
	}
}
