package repository

import (
	"context"
	"testing"
)

func TestPGXWebsitesRepository_CreateWithPagesValidation(t *testing.T) {
	repo := &PGXWebsitesRepository{}
	if err := repo.CreateWithPages(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error for nil website")
	}
}

func TestPGXUsersRepository_CreateValidation(t *testing.T) {
	repo := &PGXUsersRepository{}
	if _, err := repo.Create(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil user")
	}
}
