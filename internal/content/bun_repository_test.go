package content

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-cms-autotranslate/pkg/testsupport"
	"github.com/uptrace/bun"
)

func TestBunNodeRepository_GetByNID(t *testing.T) {
	db := newTestDB(t)
	repo := NewBunNodeRepository(db)
	ctx := context.Background()

	node := NewNode("42", "article", "Hello", "en")
	if _, err := repo.Create(ctx, node); err != nil {
		t.Fatalf("create node: %v", err)
	}

	got, err := repo.GetByNID(ctx, "42")
	if err != nil {
		t.Fatalf("get node: %v", err)
	}
	if got.ID != node.ID || got.Title != "Hello" {
		t.Fatalf("unexpected node %+v", got)
	}

	_, err = repo.GetByNID(ctx, "missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBunNodeTranslationRepository_CompareAndCreate(t *testing.T) {
	db := newTestDB(t)
	nodes := NewBunNodeRepository(db)
	translations := NewBunNodeTranslationRepository(db)
	ctx := context.Background()

	node := NewNode("7", "page", "Welcome", "en")
	if _, err := nodes.Create(ctx, node); err != nil {
		t.Fatalf("create node: %v", err)
	}

	exists, err := translations.Exists(ctx, node.ID, "de")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("expected no translation before create")
	}

	if _, err := translations.Create(ctx, &NodeTranslation{NodeID: node.ID, Locale: "de", Title: "Welcome"}); err != nil {
		t.Fatalf("create translation: %v", err)
	}
	if exists, _ := translations.Exists(ctx, node.ID, "de"); !exists {
		t.Fatal("expected translation after create")
	}

	_, err = translations.Create(ctx, &NodeTranslation{NodeID: node.ID, Locale: "de", Title: "Overwrite"})
	if !errors.Is(err, ErrTranslationExists) {
		t.Fatalf("expected ErrTranslationExists, got %v", err)
	}

	list, err := translations.ListByNode(ctx, node.ID)
	if err != nil {
		t.Fatalf("list translations: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Welcome" {
		t.Fatalf("expected untouched translation, got %+v", list)
	}
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	return testsupport.NewBunDB(t, (*Node)(nil), (*NodeTranslation)(nil))
}
