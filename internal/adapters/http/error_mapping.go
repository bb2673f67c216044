package httpadapter

import (
	"net/http"

	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrNoItemsDetected):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrContainerNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
