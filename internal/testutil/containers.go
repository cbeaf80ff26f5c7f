package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// ServiceImage is the image tag of the projectsdb service under test
const ServiceImage = "projectsdb-test:latest"

// ContainerOptions selects the containers to start
type ContainerOptions struct {
	// WithAuthorizer starts an Authorizer bound to the database container
	WithAuthorizer bool
	// WithService starts the projectsdb service itself, building its image when missing
	WithService bool
}

// TestContainers holds the running database, Authorizer and service containers
type TestContainers struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	AuthorizerContainer testcontainers.Container
	ServiceContainer    testcontainers.Container

	// Host-reachable endpoints
	DBHost        string
	DBPort        string
	AuthorizerURL string
	ServiceURL    string
}

// Terminate stops every started container and removes the network
func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.ServiceContainer != nil {
		if err := tc.ServiceContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate projectsdb: %v", err)
		}
	}
	if tc.AuthorizerContainer != nil {
		if err := tc.AuthorizerContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Authorizer: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// CreateTestContainers starts the containers described by the DB_*, AUTHZ_* and PORT
// environment variables. On failure everything already started is terminated.
func CreateTestContainers(t *testing.T, opts ContainerOptions) (*TestContainers, error) {
	ctx := context.Background()
	tc := &TestContainers{}

	fail := func(err error, msg string) (*TestContainers, error) {
		tc.Terminate(t)
		return nil, fmt.Errorf("%s: %w", msg, err)
	}

	nw, err := network.New(ctx)
	if err != nil {
		return fail(err, "failed to create network")
	}
	tc.Network = nw
	networkName := nw.Name

	// Database
	dbType := getenv("DB_TYPE", "mariadb")
	dbNetworkName := getenv("DB_HOST", "database")
	tcpDbPort, err := nat.NewPort("tcp", getenv("DB_PORT", defaultDBPort(dbType)))
	if err != nil {
		return fail(err, "failed to create DB port")
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        getenv("DB_IMAGE", defaultDBImage(dbType)),
			ExposedPorts: []string{string(tcpDbPort)},
			Env:          dbInitEnv(dbType),
			WaitingFor:   wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {dbNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		return fail(err, "failed to start database")
	}
	tc.DBContainer = dbContainer

	tc.DBHost, _ = dbContainer.Host(ctx)
	mappedDBPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	tc.DBPort = mappedDBPort.Port()

	switch dbType {
	case "postgres":
		err = initPostgres(tc.DBHost, tc.DBPort)
	default:
		err = initMariaDB(tc.DBHost, tc.DBPort)
	}
	if err != nil {
		return fail(err, "failed to initialize databases")
	}

	// Authorizer
	authzNetworkName := "authorizer"
	authzPort := getenv("AUTHZ_PORT", "8080")
	if opts.WithAuthorizer || opts.WithService {
		tcpAuthzPort, err := nat.NewPort("tcp", authzPort)
		if err != nil {
			return fail(err, "failed to create Authorizer port")
		}

		authzLogLevel := "info"
		if os.Getenv("DEBUG_CONTAINER") == "true" {
			authzLogLevel = "debug"
		}

		authorizerContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        getenv("AUTHZ_IMAGE", "lakhansamani/authorizer:latest"),
				ExposedPorts: []string{string(tcpAuthzPort)},
				Env: map[string]string{
					"ENV":                        "production",
					"CLIENT_ID":                  getenv("AUTHZ_CLIENT_ID", "projectsdb"),
					"PORT":                       authzPort,
					"DATABASE_TYPE":              authorizerDBType(dbType),
					"DATABASE_NAME":              getenv("AUTHZ_DATABASE", "authorizer"),
					"DATABASE_URL":               authorizerDSN(dbType, dbNetworkName, tcpDbPort.Port()),
					"ADMIN_SECRET":               getenv("AUTHZ_ADMIN_SECRET", "admin-secret"),
					"JWT_TYPE":                   "HS256",
					"JWT_SECRET":                 getenv("AUTHZ_JWT_SECRET", "projectsdb-test-secret"),
					"ROLES":                      "admin,member",
					"DEFAULT_ROLES":              "member",
					"DISABLE_EMAIL_VERIFICATION": "true",
					"LOG_LEVEL":                  authzLogLevel,
				},
				WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(30 * time.Second),
				Networks:   []string{networkName},
				NetworkAliases: map[string][]string{
					networkName: {authzNetworkName},
				},
			},
			Started: true,
		})
		if err != nil {
			return fail(err, "failed to start Authorizer")
		}
		tc.AuthorizerContainer = authorizerContainer

		host, _ := authorizerContainer.Host(ctx)
		port, _ := authorizerContainer.MappedPort(ctx, tcpAuthzPort)
		tc.AuthorizerURL = fmt.Sprintf("http://%s:%s", host, port.Port())
		logMessage(t, "AUTHZ_URL=%s", tc.AuthorizerURL)
	}

	if !opts.WithService {
		return tc, nil
	}

	// projectsdb service
	servicePort := getenv("PORT", "3000")
	tcpServicePort, err := nat.NewPort("tcp", servicePort)
	if err != nil {
		return fail(err, "failed to create service port")
	}

	debugContainer := os.Getenv("DEBUG_CONTAINER") == "true"
	exposedPorts := []string{string(tcpServicePort)}
	if debugContainer {
		exposedPorts = append(exposedPorts, "2345/tcp")
	}

	serviceRequest := testcontainers.ContainerRequest{
		ExposedPorts: exposedPorts,
		Env: map[string]string{
			"DB_TYPE":                 dbType,
			"DB_HOST":                 dbNetworkName,
			"DB_PORT":                 tcpDbPort.Port(),
			"DB_APP_DATABASE":         getenv("DB_APP_DATABASE", "projectsdb"),
			"DB_APP_USER":             getenv("DB_APP_USER", "projectsdb_app"),
			"DB_APP_PASSWORD":         getenv("DB_APP_PASSWORD", "app-password"),
			"DB_USER":                 getenv("DB_USER", "projectsdb_user"),
			"DB_PASSWORD":             getenv("DB_PASSWORD", "user-password"),
			"DB_APP_CONNECTION_LIMIT": getenv("DB_APP_CONNECTION_LIMIT", "5"),
			"DB_CONNECTION_LIMIT":     getenv("DB_CONNECTION_LIMIT", "10"),
			"AUTHZ_URL":               fmt.Sprintf("http://%s:%s", authzNetworkName, authzPort),
			"AUTHZ_CLIENT_ID":         getenv("AUTHZ_CLIENT_ID", "projectsdb"),
			"AUTHZ_JWT_SECRET":        getenv("AUTHZ_JWT_SECRET", "projectsdb-test-secret"),
			"SEED_TEMPLATES":          "true",
			"PORT":                    servicePort,
		},
		HostConfigModifier: func(hostConfig *container.HostConfig) {
			if debugContainer {
				hostConfig.PortBindings = nat.PortMap{
					"2345/tcp": []nat.PortBinding{{HostIP: "127.0.0.1", HostPort: "2345"}},
				}
				hostConfig.CapAdd = []string{"SYS_PTRACE"}
			}
		},
		WaitingFor: wait.ForHTTP("/metrics").WithPort(tcpServicePort).WithStartupTimeout(60 * time.Second),
		Networks:   []string{networkName},
	}

	exists, err := imageExists(ctx, ServiceImage)
	if err != nil {
		return fail(err, "failed to check for the service image")
	}
	if exists {
		logMessage(t, "Image %s exists, reusing...", ServiceImage)
		serviceRequest.Image = ServiceImage
	} else {
		logMessage(t, "Image %s does not exist, building...", ServiceImage)
		sessionID := uuid.NewString()
		repo, tag, _ := strings.Cut(ServiceImage, ":")
		serviceRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:    getenv("TESTCONTAINERS_BUILD_CONTEXT", "../.."),
			Dockerfile: "Dockerfile",
			Repo:       repo,
			Tag:        tag,
			KeepImage:  true,
			BuildArgs: map[string]*string{
				"RESOURCE_REAPER_SESSION_ID": &sessionID,
			},
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	}

	serviceContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: serviceRequest,
		Started:          true,
	})
	if err != nil {
		return fail(err, "failed to start projectsdb")
	}
	tc.ServiceContainer = serviceContainer

	host, _ := serviceContainer.Host(ctx)
	port, _ := serviceContainer.MappedPort(ctx, tcpServicePort)
	tc.ServiceURL = fmt.Sprintf("http://%s:%s", host, port.Port())
	logMessage(t, "BASE_URL=%s", tc.ServiceURL)

	return tc, nil
}

func dbInitEnv(dbType string) map[string]string {
	switch dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": getenv("DB_ROOT_PASSWORD", "root-password"),
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       getenv("DB_APP_DATABASE", "projectsdb"),
		}
	default:
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": getenv("DB_ROOT_PASSWORD", "root-password"),
			"MYSQL_DATABASE":      getenv("DB_APP_DATABASE", "projectsdb"),
		}
	}
}

func defaultDBImage(dbType string) string {
	if dbType == "postgres" {
		return "postgres:17-alpine"
	}
	return "mariadb:11"
}

func defaultDBPort(dbType string) string {
	if dbType == "postgres" {
		return "5432"
	}
	return "3306"
}

func authorizerDBType(dbType string) string {
	if dbType == "mysql" {
		return "mariadb"
	}
	return dbType
}

func authorizerDSN(dbType, host, port string) string {
	if dbType == "postgres" {
		return fmt.Sprintf("postgres://postgres:%s@%s:%s/%s?sslmode=disable",
			getenv("DB_ROOT_PASSWORD", "root-password"), host, port, getenv("AUTHZ_DATABASE", "authorizer"))
	}
	return fmt.Sprintf("root:%s@tcp(%s:%s)/%s", getenv("DB_ROOT_PASSWORD", "root-password"),
		host, port, getenv("AUTHZ_DATABASE", "authorizer"))
}

// initMariaDB creates the Authorizer database and the two service accounts
func initMariaDB(host, port string) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", getenv("DB_ROOT_PASSWORD", "root-password"), host, port))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := waitForPing(db); err != nil {
		return err
	}

	appDatabase := getenv("DB_APP_DATABASE", "projectsdb")
	appUser := getenv("DB_APP_USER", "projectsdb_app")
	user := getenv("DB_USER", "projectsdb_user")

	return execAll(db,
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", appDatabase),
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", getenv("AUTHZ_DATABASE", "authorizer")),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", appUser, getenv("DB_APP_PASSWORD", "app-password")),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", user, getenv("DB_PASSWORD", "user-password")),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON %s.* TO '%s'@'%%'", appDatabase, appUser),
		fmt.Sprintf("GRANT SELECT, INSERT, UPDATE, DELETE ON %s.* TO '%s'@'%%'", appDatabase, user),
		"FLUSH PRIVILEGES",
	)
}

// initPostgres creates the Authorizer database and the two service roles
func initPostgres(host, port string) error {
	appDatabase := getenv("DB_APP_DATABASE", "projectsdb")
	dsn := fmt.Sprintf("postgres://postgres:%s@%s:%s/%s?sslmode=disable",
		getenv("DB_ROOT_PASSWORD", "root-password"), host, port, appDatabase)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := waitForPing(db); err != nil {
		return err
	}

	appUser := getenv("DB_APP_USER", "projectsdb_app")
	user := getenv("DB_USER", "projectsdb_user")

	return execAll(db,
		fmt.Sprintf("CREATE DATABASE %s", getenv("AUTHZ_DATABASE", "authorizer")),
		fmt.Sprintf("CREATE ROLE %s LOGIN PASSWORD '%s'", appUser, getenv("DB_APP_PASSWORD", "app-password")),
		fmt.Sprintf("CREATE ROLE %s LOGIN PASSWORD '%s'", user, getenv("DB_PASSWORD", "user-password")),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON DATABASE %s TO %s", appDatabase, appUser),
		fmt.Sprintf("GRANT ALL ON SCHEMA public TO %s", appUser),
		fmt.Sprintf("ALTER DEFAULT PRIVILEGES FOR ROLE %s IN SCHEMA public GRANT SELECT, INSERT, UPDATE, DELETE ON TABLES TO %s", appUser, user),
		fmt.Sprintf("ALTER DEFAULT PRIVILEGES FOR ROLE %s IN SCHEMA public GRANT USAGE, SELECT ON SEQUENCES TO %s", appUser, user),
		fmt.Sprintf("GRANT USAGE ON SCHEMA public TO %s", user),
	)
}

func waitForPing(db *sql.DB) error {
	var err error
	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database not ready after 30 seconds: %w", err)
}

func execAll(db *sql.DB, statements ...string) error {
	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("%w: when executing > %s", err, statement)
		}
	}
	return nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
