package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Catalog
	ItemNotFound         failure.ErrorCode = "ItemNotFound"
	CatalogNotLoaded     failure.ErrorCode = "CatalogNotLoaded"
	InvalidItemID        failure.ErrorCode = "InvalidItemID"
	InvalidSortField     failure.ErrorCode = "InvalidSortField"
	InvalidSortDirection failure.ErrorCode = "InvalidSortDirection"

	// Market data provider
	ProviderUnavailable failure.ErrorCode = "ProviderUnavailable" // transport-level failure
	ProviderError       failure.ErrorCode = "ProviderError"       // error payload from the provider
)
