package domain

import (
	"errors"
	"time"
)

var (
	ErrRequestNotFound    = errors.New("request not found")
	ErrDuplicateRequest   = errors.New("request between these users already exists")
	ErrSelfRequest        = errors.New("sender and receiver must differ")
	ErrUnknownParticipant = errors.New("sender or receiver does not exist")
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// Request is a friend-style request from one user to another.
type Request struct {
	ID         string
	SenderID   string
	ReceiverID string
	Status     RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
