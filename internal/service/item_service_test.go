package service

import (
	"context"
	"errors"
	"testing"

	dom "inventory/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- mocks ---

type mockItemRepo struct {
	createFn  func(ctx context.Context, it dom.Item) (dom.Item, error)
	getByIDFn func(ctx context.Context, id int64) (dom.Item, error)
	listFn    func(ctx context.Context) ([]dom.Item, error)
	updateFn  func(ctx context.Context, id int64, patch dom.ItemPatch) (dom.Item, error)
	deleteFn  func(ctx context.Context, id int64) (bool, error)

	calls int
}

func (m *mockItemRepo) Create(ctx context.Context, it dom.Item) (dom.Item, error) {
	m.calls++
	return m.createFn(ctx, it)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (dom.Item, error) {
	m.calls++
	return m.getByIDFn(ctx, id)
}
func (m *mockItemRepo) List(ctx context.Context) ([]dom.Item, error) {
	m.calls++
	return m.listFn(ctx)
}
func (m *mockItemRepo) Update(ctx context.Context, id int64, patch dom.ItemPatch) (dom.Item, error) {
	m.calls++
	return m.updateFn(ctx, id, patch)
}
func (m *mockItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	m.calls++
	return m.deleteFn(ctx, id)
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "items_name_uq"}
}

// --- tests ---

func TestItemService_Create(t *testing.T) {
	repo := &mockItemRepo{
		createFn: func(ctx context.Context, it dom.Item) (dom.Item, error) {
			it.ID = 1
			return it, nil
		},
	}
	svc := NewItemService(repo, nil)

	it, err := svc.Create(context.Background(), "  Widget ", 5, 9.99, " d ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if it.ID != 1 {
		t.Errorf("ID = %d, want 1", it.ID)
	}
	if it.Name != "Widget" || it.Description != "d" {
		t.Errorf("fields not trimmed: %+v", it)
	}
}

func TestItemService_Create_DuplicateName(t *testing.T) {
	repo := &mockItemRepo{
		createFn: func(ctx context.Context, it dom.Item) (dom.Item, error) {
			return dom.Item{}, uniqueViolation()
		},
	}
	svc := NewItemService(repo, nil)

	_, err := svc.Create(context.Background(), "Widget", 5, 9.99, "d")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("err = %v, want ErrDuplicateName", err)
	}
}

func TestItemService_GetByID_NotFound(t *testing.T) {
	repo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (dom.Item, error) {
			return dom.Item{}, pgx.ErrNoRows
		},
	}
	svc := NewItemService(repo, nil)

	_, err := svc.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestItemService_GetByID_StoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &mockItemRepo{
		getByIDFn: func(ctx context.Context, id int64) (dom.Item, error) {
			return dom.Item{}, storeErr
		},
	}
	svc := NewItemService(repo, nil)

	_, err := svc.GetByID(context.Background(), 1)
	if !errors.Is(err, storeErr) {
		t.Errorf("err = %v, want passthrough of store error", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("store error must not map to ErrNotFound")
	}
}

func TestItemService_Update_PartialPatch(t *testing.T) {
	var got dom.ItemPatch
	repo := &mockItemRepo{
		updateFn: func(ctx context.Context, id int64, patch dom.ItemPatch) (dom.Item, error) {
			got = patch
			return dom.Item{ID: id, Name: "Widget", Quantity: 7, Price: 9.99, Description: "d"}, nil
		},
	}
	svc := NewItemService(repo, nil)

	q := 7
	it, err := svc.Update(context.Background(), 1, dom.ItemPatch{Quantity: &q})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != nil || got.Price != nil || got.Description != nil {
		t.Errorf("absent fields must stay nil in patch: %+v", got)
	}
	if got.Quantity == nil || *got.Quantity != 7 {
		t.Errorf("quantity patch = %v, want 7", got.Quantity)
	}
	if it.Quantity != 7 || it.Name != "Widget" {
		t.Errorf("merged item = %+v", it)
	}
}

func TestItemService_Update_NotFound(t *testing.T) {
	repo := &mockItemRepo{
		updateFn: func(ctx context.Context, id int64, patch dom.ItemPatch) (dom.Item, error) {
			return dom.Item{}, pgx.ErrNoRows
		},
	}
	svc := NewItemService(repo, nil)

	_, err := svc.Update(context.Background(), 99, dom.ItemPatch{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestItemService_Update_DuplicateName(t *testing.T) {
	repo := &mockItemRepo{
		updateFn: func(ctx context.Context, id int64, patch dom.ItemPatch) (dom.Item, error) {
			return dom.Item{}, uniqueViolation()
		},
	}
	svc := NewItemService(repo, nil)

	name := "Taken"
	_, err := svc.Update(context.Background(), 1, dom.ItemPatch{Name: &name})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("err = %v, want ErrDuplicateName", err)
	}
}

func TestItemService_Delete(t *testing.T) {
	repo := &mockItemRepo{
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
	}
	svc := NewItemService(repo, nil)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestItemService_Delete_NotFound(t *testing.T) {
	repo := &mockItemRepo{
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	svc := NewItemService(repo, nil)

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestItemService_List(t *testing.T) {
	want := []dom.Item{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	repo := &mockItemRepo{
		listFn: func(ctx context.Context) ([]dom.Item, error) { return want, nil },
	}
	svc := NewItemService(repo, nil)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Errorf("List = %+v, want %+v", got, want)
	}
}
