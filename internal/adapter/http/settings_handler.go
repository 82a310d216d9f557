package http

import (
	"errors"
	"net/http"

	domain "dealer-finance-api/internal/domain/settings"
	"dealer-finance-api/internal/usecase/settings"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct{ uc *settings.Usecase }

func NewSettingsHandler(u *settings.Usecase) *SettingsHandler {
	return &SettingsHandler{uc: u}
}

// GET /api/settings/:key
func (h *SettingsHandler) GetSetting(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing key path param"})
	}

	dto, err := h.uc.Get(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load setting"})
	}
	return c.JSON(http.StatusOK, dto)
}

type putSettingReq struct {
	Key   string `json:"key"   validate:"required"`
	Value string `json:"value" validate:"required"`
}

// PUT /api/settings
func (h *SettingsHandler) PutSetting(c echo.Context) error {
	var req putSettingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Put(c.Request().Context(), req.Key, req.Value)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save setting"})
	}
	return c.JSON(http.StatusOK, dto)
}
