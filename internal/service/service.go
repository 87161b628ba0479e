// Package service реализует обработку чеков: проверку, подсчёт баллов и их хранение.
package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mmeshcher/receipt-processor/internal/model"
	"github.com/mmeshcher/receipt-processor/internal/scoring"
	"github.com/mmeshcher/receipt-processor/internal/validation"
)

// ErrInvalidReceipt возвращается, если чек не прошёл проверку или баллы не удалось посчитать.
var ErrInvalidReceipt = errors.New("invalid receipt")

// Repository описывает хранилище баллов, используемое сервисом.
type Repository interface {
	Close() error
	SavePoints(ctx context.Context, id string, points int) error
	GetPoints(ctx context.Context, id string) (int, error)
}

// Service содержит бизнес-логику обработки чеков.
type Service struct {
	repo Repository
}

// NewService создаёт сервис поверх указанного хранилища.
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// ProcessReceipt проверяет чек, считает баллы и сохраняет их под идентификатором чека.
func (s *Service) ProcessReceipt(ctx context.Context, r *model.Receipt) (*model.ScoreRecord, error) {
	if !validation.IsValidReceipt(r) {
		return nil, ErrInvalidReceipt
	}

	points := scoring.CalculatePoints(r)
	if points < 0 {
		return nil, ErrInvalidReceipt
	}

	rec := &model.ScoreRecord{
		ID:     ReceiptID(r),
		Points: points,
	}

	if err := s.repo.SavePoints(ctx, rec.ID, rec.Points); err != nil {
		return nil, fmt.Errorf("store receipt %s: %w", rec.ID, err)
	}

	return rec, nil
}

// GetPoints возвращает баллы, ранее сохранённые для чека.
func (s *Service) GetPoints(ctx context.Context, id string) (int, error) {
	return s.repo.GetPoints(ctx, id)
}

// ReceiptID вычисляет идентификатор чека по магазину, дате и времени покупки.
// Чеки с одинаковой тройкой полей получают один и тот же идентификатор.
func ReceiptID(r *model.Receipt) string {
	sum := md5.Sum([]byte(r.Retailer + r.PurchaseDate + r.PurchaseTime))
	return hex.EncodeToString(sum[:])
}
