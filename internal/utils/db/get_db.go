package db

import (
	"context"

	"github.com/LBGeo/gestion-repuestos/internal/config"
)

// GetDB conecta con la sección Database de una configuración ya cargada.
func GetDB(ctx context.Context, cfg *config.Config) (*DB, error) {
	return ConnectDataBase(ctx, cfg.Database)
}
