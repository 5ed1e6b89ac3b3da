package leaveerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found or unauthorized",
		http.StatusNotFound,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave date format",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"End date cannot be before start date",
		http.StatusBadRequest,
	)
	ErrStartTooEarly = apperror.New(
		apperror.CodeInvalidInput,
		"Leave must start tomorrow or later",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found or unauthorized",
		http.StatusNotFound,
	)
	ErrNotPresentToday = apperror.New(
		apperror.CodeInvalidState,
		"Employee must be marked Present today to request leave",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave status value",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Leave request has already been decided",
		http.StatusBadRequest,
	)
	ErrNoDocument = apperror.New(
		apperror.CodeNotFound,
		"No document uploaded for this leave request",
		http.StatusNotFound,
	)
	ErrDocumentFileMissing = apperror.New(
		apperror.CodeNotFound,
		"Document file not found on server",
		http.StatusNotFound,
	)
)
