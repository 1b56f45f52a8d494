package handler

import (
	"context"

	"github.com/buhgalterija/backoffice/internal/core/domain"
)

type stubCatalog struct {
	companies []domain.Company
	err       error
}

func (s *stubCatalog) Companies(context.Context) ([]domain.Company, error) {
	return s.companies, s.err
}

func (s *stubCatalog) Tasks(context.Context) ([]domain.Task, error) { return nil, s.err }

func (s *stubCatalog) Documents(context.Context) ([]domain.Document, error) { return nil, s.err }

func (s *stubCatalog) Accountants(context.Context) ([]domain.AccountantUser, error) {
	return nil, s.err
}

var (
	directorSession = domain.Session{
		Token:   "tok-director",
		Profile: domain.UserProfile{ID: "5", Name: "Marko", Email: "marko@firm.rs", Role: domain.RoleDirector},
	}
	accountantSession = domain.Session{
		Token:   "tok-accountant",
		Profile: domain.UserProfile{ID: "1", Name: "Ana", Email: "ana@firm.rs", Role: domain.RoleAccountant},
	}
)
