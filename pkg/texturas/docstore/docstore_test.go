package docstore

import (
	"context"
	"errors"
	"testing"

	"github.com/epsidebox/texturas/pkg/texturas/analyze"
	"github.com/epsidebox/texturas/pkg/texturas/internalerr"
)

func TestAddGetRemove(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.Add(ctx, "prueba", "El gato come.")
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty ID")
	}

	doc, err := s.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "prueba" || doc.Text != "El gato come." {
		t.Errorf("got %+v", doc)
	}

	if err := s.Remove(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, id); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Get after Remove: %v, want ErrNotFound", err)
	}
	if err := s.Remove(ctx, id); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("double Remove: %v, want ErrNotFound", err)
	}
}

func TestAddRejectsEmptyText(t *testing.T) {
	s := New()
	if _, err := s.Add(context.Background(), "t", ""); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	var ids []string
	for _, title := range []string{"uno", "dos", "tres"} {
		id, err := s.Add(ctx, title, "texto "+title)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	docs := s.List(ctx)
	if len(docs) != 3 {
		t.Fatalf("got %d docs, want 3", len(docs))
	}
	for i, doc := range docs {
		if doc.ID != ids[i] {
			t.Errorf("doc %d out of insertion order", i)
		}
	}

	if err := s.Remove(ctx, ids[1]); err != nil {
		t.Fatal(err)
	}
	docs = s.List(ctx)
	if len(docs) != 2 || docs[0].ID != ids[0] || docs[1].ID != ids[2] {
		t.Errorf("order after removal broken: %+v", docs)
	}
}

func TestSetResult(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.Add(ctx, "t", "texto")
	if err != nil {
		t.Fatal(err)
	}

	res := &analyze.Result{TotalWords: 1}
	if err := s.SetResult(ctx, id, res); err != nil {
		t.Fatal(err)
	}
	doc, err := s.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Result == nil || doc.Result.TotalWords != 1 {
		t.Errorf("result not attached: %+v", doc.Result)
	}

	if err := s.SetResult(ctx, "missing", res); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("SetResult on missing doc: %v, want ErrNotFound", err)
	}
}
