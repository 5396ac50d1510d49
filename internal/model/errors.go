package model

import "github.com/pkg/errors"

var (
	ErrScanSqlRow          = errors.New("failed scan sql row")
	ErrUserNotFound        = errors.New("user not found")
	ErrReferralExists      = errors.New("referral link already exists")
	ErrDescriptionNotFound = errors.New("description not found")
	ErrNotAdminUser        = errors.New("user is not admin")
)
