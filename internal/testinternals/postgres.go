package testinternals

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/2beens/titanlift/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const (
	testDBName     = "titanlift"
	testDBUser     = "postgres"
	testDBPassword = "postgres"
)

// NewPostgres returns a pool to a migrated postgres database. If POSTGRES_HOST is set
// that server is used (CI), otherwise a container is started with dockertest.
func NewPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	params := db.NewDBPoolParams{
		DBHost:     os.Getenv("POSTGRES_HOST"),
		DBPort:     "5432",
		DBName:     testDBName,
		DBUser:     testDBUser,
		DBPassword: testDBPassword,
	}
	if params.DBHost == "" {
		params.DBHost = "localhost"
		params.DBPort = postgresContainer(t)
	}
	t.Logf("using postgres at %s:%s", params.DBHost, params.DBPort)

	migrateUp := func() error {
		return db.Migrate(ctx, params.ConnString(), "up")
	}
	require.NoError(t, retry(ctx, migrateUp))

	pool, err := db.NewDBPool(ctx, params)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func postgresContainer(t *testing.T) string {
	t.Helper()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not create new dockertest pool")
	require.NoError(t, dockerPool.Client.Ping(), "could not ping dockertest pool")

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + testDBUser,
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "dockerpool run postgres")
	require.NoError(t, pgResource.Expire(300))

	t.Cleanup(func() {
		if err := dockerPool.Purge(pgResource); err != nil {
			t.Logf("purge postgres container: %s", err)
		}
	})

	return pgResource.GetPort("5432/tcp")
}

// retry runs fn until it succeeds or ctx is done, the container needs a moment
// before it accepts connections.
func retry(ctx context.Context, fn func() error) error {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	var lastErr error
	for {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("postgres not ready: %w", lastErr)
		case <-ticker.C:
		}
	}
}
