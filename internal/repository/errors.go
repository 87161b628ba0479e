// Package repository содержит реализации хранилища баллов по чекам.
package repository

import "errors"

// ErrNotFound возвращается, если баллы для идентификатора чека не сохранялись.
var ErrNotFound = errors.New("receipt not found")
