package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/LBGeo/gestion-repuestos/internal/config"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// secretGetter es la parte de secretsmanager.Client que usamos.
type secretGetter interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

var newSecretsClient = func(ctx context.Context) (secretGetter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración de AWS: %w", err)
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// retrieveCredentials usa DB_USERNAME/DB_PASSWORD y, si faltan, el secreto DB_SECRET_ID.
func retrieveCredentials(ctx context.Context, cfg config.DatabaseConfig) (string, string, error) {
	if cfg.Username != "" && cfg.Password != "" {
		return cfg.Username, cfg.Password, nil
	}
	if cfg.SecretID == "" {
		return "", "", errors.New("faltan DB_USERNAME/DB_PASSWORD y no hay DB_SECRET_ID")
	}

	secrets, err := newSecretsClient(ctx)
	if err != nil {
		return "", "", err
	}
	return fetchSecret(ctx, secrets, cfg.SecretID)
}

func fetchSecret(ctx context.Context, secrets secretGetter, secretID string) (string, string, error) {
	result, err := secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("leer secreto %s: %w", secretID, err)
	}
	if result.SecretString == nil {
		return "", "", fmt.Errorf("secreto %s sin SecretString", secretID)
	}

	var secret Credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &secret); err != nil {
		return "", "", fmt.Errorf("secreto %s mal formado: %w", secretID, err)
	}
	return secret.Username, secret.Password, nil
}
