// Package model содержит доменные сущности сервиса обработки чеков.
package model

import (
	"bytes"
	"encoding/json"
)

// Receipt описывает входящий чек покупки.
type Receipt struct {
	Retailer     string `json:"retailer" validate:"required"`
	PurchaseDate string `json:"purchaseDate" validate:"required,receiptdate"`
	PurchaseTime string `json:"purchaseTime" validate:"required,receipttime"`
	Items        []Item `json:"items" validate:"required"`
	Total        Amount `json:"total" validate:"required,amount"`
}

// Item описывает позицию чека.
type Item struct {
	ShortDescription string `json:"shortDescription,omitempty"`
	Price            Amount `json:"price,omitempty"`
}

// ScoreRecord связывает идентификатор чека с начисленными баллами.
type ScoreRecord struct {
	ID     string `json:"id"`
	Points int    `json:"points"`
}

// Amount хранит денежную сумму в исходном текстовом виде.
// Сумма может прийти как JSON-строкой, так и JSON-числом.
type Amount string

// UnmarshalJSON принимает строку или число; null даёт пустую сумму.
// Прочие значения сохраняются как есть и не пройдут проверку формата.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		*a = Amount(data)
	}

	return nil
}

// String возвращает текстовое представление суммы.
func (a Amount) String() string {
	return string(a)
}
