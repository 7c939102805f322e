package report

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

type Kind string

const (
	KindTypes      Kind = "types"
	KindConsultant Kind = "consultant"
	KindContact    Kind = "contact"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindTypes, KindConsultant, KindContact:
		return Kind(s), true
	}
	return "", false
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type TypesByMonth struct {
	Year   int         `json:"year"`
	Month  int         `json:"month"`
	Counts []TypeCount `json:"counts"`
}

type Repository interface {
	CountTypesBetween(ctx context.Context, from, to time.Time) ([]TypeCount, error)
	ListUsernames(ctx context.Context) ([]string, error)
	ListByUsername(ctx context.Context, username string) ([]models.Appointment, error)
	ListContacts(ctx context.Context) ([]string, error)
	ListByContact(ctx context.Context, contact string) ([]models.Appointment, error)
}
