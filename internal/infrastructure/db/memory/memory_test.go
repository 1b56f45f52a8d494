package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	if _, ok, err := s.Get(ctx, "accessToken"); ok || err != nil {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "accessToken", "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "accessToken"); !ok || v != "tok" {
		t.Fatalf("Get = %q %v", v, ok)
	}
	if err := s.Delete(ctx, "accessToken"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "accessToken"); err != nil {
		t.Fatalf("deleting a missing key must succeed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "accessToken"); ok {
		t.Fatalf("expected key removed")
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := NewCatalog(DemoDataset())
	first, _ := c.Companies(context.Background())
	first[0].Name = "changed"

	again, _ := c.Companies(context.Background())
	if again[0].Name == "changed" {
		t.Fatalf("catalog leaked its backing slice")
	}
}

func TestDemoDataset_IsConsistent(t *testing.T) {
	ds := DemoDataset()
	if len(ds.Companies) != 6 || len(ds.Tasks) != 8 || len(ds.Documents) != 5 || len(ds.Accountants) != 6 {
		t.Fatalf("unexpected sizes: %d %d %d %d", len(ds.Companies), len(ds.Tasks), len(ds.Documents), len(ds.Accountants))
	}

	companies := make(map[string]domain.Company)
	for _, c := range ds.Companies {
		companies[c.ID] = c
	}
	for _, task := range ds.Tasks {
		c, ok := companies[task.CompanyID]
		if !ok || c.Name != task.CompanyName || c.PIB != task.CompanyPIB {
			t.Fatalf("task %s points at an unknown or mismatched company", task.ID)
		}
	}
	for _, d := range ds.Documents {
		if _, ok := companies[d.CompanyID]; !ok {
			t.Fatalf("document %s points at an unknown company", d.ID)
		}
	}
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	r := NewAccountRepository()

	created, err := r.Create(ctx, &domain.Account{Username: "ana", Email: "Ana@firm.rs"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	if _, err := r.Create(ctx, &domain.Account{Username: "ana2", Email: "ana@firm.rs"}); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected duplicate email rejected, got %v", err)
	}
	if _, err := r.Create(ctx, &domain.Account{Username: "ana"}); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected duplicate username rejected, got %v", err)
	}

	if a, err := r.FindByEmail(ctx, "ANA@firm.rs"); err != nil || a.ID != created.ID {
		t.Fatalf("FindByEmail: %+v %v", a, err)
	}
	if _, err := r.FindByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
