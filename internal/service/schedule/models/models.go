package models

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

// Request модели

// CreateBlockRequest запрос на создание блокировки
type CreateBlockRequest struct {
	Date            time.Time
	IsFullDay       bool
	StartTime       string // "HH:MM", только для частичной блокировки
	EndTime         string
	ServiceCategory *string
	Reason          *string
	Actor           domain.Actor
}

// CreateExceptionRequest запрос на создание исключения
type CreateExceptionRequest struct {
	Date            time.Time
	ServiceCategory *string
	Reason          *string
	Actor           domain.Actor
}

// ListScheduleRequest запрос блокировок и исключений за период
type ListScheduleRequest struct {
	From  time.Time
	To    time.Time
	Actor domain.Actor
}

// Response модели

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	IsFullDay       bool    `json:"isFullDay"`
	StartTime       *string `json:"startTime,omitempty"`
	EndTime         *string `json:"endTime,omitempty"`
	ServiceCategory *string `json:"serviceCategory,omitempty"`
	Reason          *string `json:"reason,omitempty"`
}

// ExceptionResponse ответ с данными исключения
type ExceptionResponse struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	ServiceCategory *string `json:"serviceCategory,omitempty"`
	Reason          *string `json:"reason,omitempty"`
}

// ScheduleResponse блокировки и исключения за период
type ScheduleResponse struct {
	Blocks     []BlockResponse     `json:"blocks"`
	Exceptions []ExceptionResponse `json:"exceptions"`
}

// Методы конвертации

// FromDomainBlock конвертирует domain модель блокировки в DTO
func FromDomainBlock(b *domain.BlockedTime) *BlockResponse {
	if b == nil {
		return nil
	}

	resp := &BlockResponse{
		ID:              b.ID,
		Date:            b.BlockDate.Format(domain.DateFormat),
		IsFullDay:       b.IsFullDay,
		ServiceCategory: b.ServiceCategory,
		Reason:          b.Reason,
	}

	if !b.IsFullDay {
		start := b.StartTime.String()
		end := b.EndTime.String()
		resp.StartTime = &start
		resp.EndTime = &end
	}

	return resp
}

// FromDomainException конвертирует domain модель исключения в DTO
func FromDomainException(e *domain.DateException) *ExceptionResponse {
	if e == nil {
		return nil
	}

	return &ExceptionResponse{
		ID:              e.ID,
		Date:            e.ExceptionDate.Format(domain.DateFormat),
		ServiceCategory: e.ServiceCategory,
		Reason:          e.Reason,
	}
}
