package handler

import (
	"net/http"

	"wearsync/internal/delivery/api/response"
	"wearsync/internal/domain/entity"
	"wearsync/internal/domain/provider"

	"github.com/labstack/echo/v4"
)

// ProviderInfo is the public description of a supported provider
type ProviderInfo struct {
	ID          entity.ProviderID `json:"id"`
	DisplayName string            `json:"display_name"`
	DeviceType  string            `json:"device_type"`
	DataTypes   []entity.DataType `json:"data_types"`
}

// ListProviders returns every provider that can be connected
func ListProviders(c echo.Context) error {
	providers := provider.All()
	infos := make([]ProviderInfo, 0, len(providers))
	for _, p := range providers {
		infos = append(infos, ProviderInfo{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			DeviceType:  p.DeviceType,
			DataTypes:   p.DataTypes(),
		})
	}

	return response.Success(c, http.StatusOK, infos)
}

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
