package db

import (
	"context"
	"fmt"
	"log"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/LBGeo/gestion-repuestos/internal/config"
)

const (
	embeddedDataPath = "./db_data"
	embeddedPort     = 5433
	embeddedUser     = "postgres"
	embeddedPassword = "postgres"
)

// DB envuelve *gorm.DB y, en modo embebido, el proceso de PostgreSQL local.
type DB struct {
	*gorm.DB
	embedded *embeddedpostgres.EmbeddedPostgres
}

// ConnectDataBase abre la conexión al PostgreSQL externo o levanta uno embebido
// cuando DB_EMBEDDED=true.
func ConnectDataBase(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	var embedded *embeddedpostgres.EmbeddedPostgres

	host, port := cfg.Host, cfg.Port
	username, password := cfg.Username, cfg.Password
	sslMode := ""
	if cfg.SSLDisable {
		sslMode = " sslmode=disable"
	}

	if cfg.Embedded {
		log.Printf("db: iniciando PostgreSQL embebido en el puerto %d", embeddedPort)
		embedded = embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
			DataPath(embeddedDataPath).
			Port(embeddedPort).
			Database(cfg.Name).
			Username(embeddedUser).
			Password(embeddedPassword))
		if err := embedded.Start(); err != nil {
			return nil, fmt.Errorf("iniciar postgres embebido: %w", err)
		}
		host, port = "localhost", embeddedPort
		username, password = embeddedUser, embeddedPassword
		sslMode = " sslmode=disable"
	} else {
		var err error
		username, password, err = retrieveCredentials(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s", host, username, password, cfg.Name, port, sslMode)
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		if embedded != nil {
			_ = embedded.Stop()
		}
		return nil, fmt.Errorf("conectar a %s:%d: %w", host, port, err)
	}

	log.Printf("db: conectado a %s:%d/%s", host, port, cfg.Name)
	return &DB{DB: database, embedded: embedded}, nil
}

// Close cierra el pool y detiene el PostgreSQL embebido si lo hubiera.
func (d *DB) Close() error {
	if d.embedded != nil {
		defer func() {
			if err := d.embedded.Stop(); err != nil {
				log.Printf("db: detener postgres embebido: %v", err)
			}
		}()
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
