package customer

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/customer"
)

type ListCustomers struct {
	repo domain.Repository
}

func NewListCustomers(repo domain.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(ctx context.Context, query string) ([]domain.Row, error) {
	return uc.repo.ListCustomers(ctx, query)
}
