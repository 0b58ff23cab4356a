package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

// bilingualRequest is the wire form of a BilingualText field: both
// variants are required.
type bilingualRequest struct {
	ID string `json:"id" validate:"required"`
	EN string `json:"en" validate:"required"`
}

func (b bilingualRequest) toDomain() domain.BilingualText {
	return domain.BilingualText{ID: b.ID, EN: b.EN}
}

// messageResponse is the envelope for operations that only confirm an
// action (deletes, archive).
type messageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate binds the JSON body into req and runs struct
// validation. Both failure modes surface as 400s.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
