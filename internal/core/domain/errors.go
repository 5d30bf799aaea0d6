package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrRatingNotFound    = errors.New("rating not found")
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrNoAssignees       = errors.New("task needs at least one assignee")
	ErrInvalidPaidAmount = errors.New("paid amount out of range")
	ErrInvalidScore      = errors.New("rating score out of range")
	ErrInvalidStage      = errors.New("invalid project stage")
)
