package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	root "carmate"
	"carmate/pkg/domain"
	"carmate/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// run migrations from the embedded FS
	err = runMigrations(pgSQL.DB.(*sql.DB))
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

// storeUser inserts a user fixture and returns the stored row.
func storeUser(t *testing.T, pg *postgres.PgSQL, role domain.Role) *domain.User {
	t.Helper()

	user, err := pg.StoreUser(context.Background(), domain.User{
		FullName:     "Test " + string(role),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "$2a$04$fixture",
		Role:         role,
		IsActive:     true,
	})
	require.NoError(t, err)

	return user
}

// storeRequest inserts a request fixture for the customer and returns the
// stored row.
func storeRequest(t *testing.T, pg *postgres.PgSQL, customerID domain.UserID) *domain.ServiceRequest {
	t.Helper()

	req, err := pg.StoreRequest(context.Background(), domain.ServiceRequest{
		CustomerID: customerID,
		Vehicle: domain.Vehicle{
			Make:  "Toyota",
			Model: "Corolla",
			Year:  2019,
		},
		ServiceType:         "Brake Service",
		Symptoms:            "grinding noise when braking hard",
		PreferredDate:       time.Now().AddDate(0, 0, 7),
		PreferredTimeWindow: domain.TimeWindowMorning,
		Location:            "Springfield",
		Urgency:             domain.UrgencyMedium,
		Status:              domain.RequestStatusOpen,
	})
	require.NoError(t, err)

	return req
}

// storeQuote inserts a pending quote fixture and returns the stored row.
func storeQuote(t *testing.T,
	pg *postgres.PgSQL,
	requestID domain.RequestID,
	providerID domain.UserID) *domain.Quote {
	t.Helper()

	q, err := pg.StoreQuote(context.Background(), domain.Quote{
		RequestID:   requestID,
		ProviderID:  providerID,
		AmountCents: 25000,
		Currency:    "USD",
		EstDays:     2,
		Status:      domain.QuoteStatusPending,
	})
	require.NoError(t, err)

	return q
}
