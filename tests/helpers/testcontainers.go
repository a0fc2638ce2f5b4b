// This file is a helper for running tests with testcontainers.
// It is used by cmd/testcontainers as a standalone executable and by the integration and e2e tests.
// Expects environment variables to be loaded from .env files.
//

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const apiImageName = "medicamentos-api-test:latest"

type TestContainers struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	APIContainer        testcontainers.Container
	APIBuilderContainer testcontainers.Container

	// Config reaches the database container from the host
	Config *config.Config
	// BaseURL reaches the API container from the host
	BaseURL string
}

func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.APIContainer != nil {
		if err := tc.APIContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate API: %v", err)
		}
	}
	if tc.APIBuilderContainer != nil {
		if err := tc.APIBuilderContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate API builder: %v", err)
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

// dbSettings are the container coordinates of one backend
type dbSettings struct {
	dbType   string
	image    string
	port     string
	alias    string
	database string
	user     string
	password string
	rootPass string
}

func dbSettingsFromEnv(dbType string) dbSettings {
	if dbType == "" {
		dbType = envOr("DB_TYPE", "mongo")
	}
	if dbType == "mongodb" {
		dbType = "mongo"
	}
	s := dbSettings{
		dbType:   dbType,
		alias:    envOr("DB_HOST", "database"),
		database: envOr("DB_DATABASE", "medicamentos_db"),
		user:     envOr("DB_USER", "medicamentos"),
		password: envOr("DB_PASSWORD", "medicamentos"),
		rootPass: envOr("DB_ROOT_PASSWORD", "root"),
	}
	switch dbType {
	case "postgres":
		s.image, s.port = envOr("DB_IMAGE", "postgres:16-alpine"), envOr("DB_PORT", "5432")
	case "mysql", "mariadb":
		s.image, s.port = envOr("DB_IMAGE", "mariadb:11"), envOr("DB_PORT", "3306")
	default:
		s.image, s.port = envOr("DB_IMAGE", "mongo:7"), envOr("DB_PORT", "27017")
	}
	return s
}

// StartDBContainer starts the database named by dbType (DB_TYPE when empty) on its own
// network and returns a configuration that reaches it from the host.
func StartDBContainer(t *testing.T, dbType string) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{}
	s := dbSettingsFromEnv(dbType)

	// Create a network
	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	testContainers.Network = nw
	networkName := nw.Name

	// Create and start the Database container
	tcpDbPort, err := nat.NewPort("tcp", s.port)
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
	}
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        s.image,
			ExposedPorts: []string{string(tcpDbPort)},

			Env:        getDBInitEnvMap(s),
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {s.alias},
			},
		},
		Started: true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start Database")
	}
	testContainers.DBContainer = dbContainer

	// Initialize the database
	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	switch s.dbType {
	case "mysql", "mariadb":
		if err := performMySqlDBInit(t, testContainers, s, dbHost, dbPort); err != nil {
			testContainers.Terminate(t)
			exitWithError(t, err, "Failed to initialize databases")
		}
	}

	cfg := &config.Config{
		Port:              envOr("PORT", "8000"),
		Env:               "test",
		LogLevel:          "warn",
		DBType:            s.dbType,
		DBHost:            dbHost,
		DBPort:            dbPort.Port(),
		DBDatabase:        s.database,
		DBUser:            s.user,
		DBPassword:        s.password,
		DBConnectionLimit: 5,
		CORSAllowOrigins:  "*",
		RateLimitRate:     1000,
		RateLimitCapacity: 10000,
	}
	if s.dbType == "mongo" {
		cfg.MongoURI = fmt.Sprintf("mongodb://%s:%s", dbHost, dbPort.Port())
	}
	testContainers.Config = cfg

	logMessage(t, "DB_TYPE=%s DB_HOST=%s DB_PORT=%s", s.dbType, dbHost, dbPort.Port())
	return testContainers, nil
}

// CreateAllTestContainers starts the database and the API image built from the Dockerfile
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	s := dbSettingsFromEnv("")

	testContainers, err := StartDBContainer(t, s.dbType)
	if err != nil {
		return nil, err
	}
	networkName := testContainers.Network.Name

	// Check if image exists
	imageExists, err := imageExists(ctx, apiImageName)
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to check if image exists")
	}

	apiPortNumber := envOr("PORT", "8000")
	tcpAPIPort, err := nat.NewPort("tcp", apiPortNumber)
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create API port")
	}

	env := map[string]string{
		"ENV":                   "production",
		"LOG_LEVEL":             envOr("LOG_LEVEL", "info"),
		"DB_TYPE":               s.dbType,
		"DB_HOST":               s.alias,
		"DB_PORT":               s.port,
		"DB_DATABASE":           s.database,
		"DB_USER":               s.user,
		"DB_PASSWORD":           s.password,
		"DB_CONNECTION_LIMIT":   envOr("DB_CONNECTION_LIMIT", "5"),
		"RATE_LIMIT_RATE":       envOr("RATE_LIMIT_RATE", "1000"),
		"RATE_LIMIT_CAPACITY":   envOr("RATE_LIMIT_CAPACITY", "10000"),
		"ORPHAN_SWEEP_INTERVAL": envOr("ORPHAN_SWEEP_INTERVAL", "1h"),
		"PORT":                  apiPortNumber,
	}
	if s.dbType == "mongo" {
		env["MONGO_URI"] = fmt.Sprintf("mongodb://%s:%s", s.alias, s.port)
	}

	// Create API container request (we add to it later)
	apiContainerRequest := testcontainers.ContainerRequest{
		ExposedPorts: []string{string(tcpAPIPort)},
		Env:          env,
		WaitingFor:   wait.ForHTTP("/health").WithPort(tcpAPIPort).WithStartupTimeout(60 * time.Second),
		Networks:     []string{networkName},
	}

	if !imageExists {
		// Build the API builder image and add fromDockerfile to the API container request
		resourceReaperSessionID := uuid.New().String()
		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &resourceReaperSessionID,
		}

		buildContext := envOr("TESTCONTAINERS_BUILD_CONTEXT", "../..")

		logMessage(t, "Image %s does not exist, building...", apiImageName)
		builderContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "medicamentos-api-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder" // Build specific stage
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			testContainers.Terminate(t)
			exitWithError(t, err, "Failed to build medicamentos-api-test-builder")
		}
		testContainers.APIBuilderContainer = builderContainer

		imageNameParts := strings.Split(apiImageName, ":")
		apiContainerRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       imageNameParts[0],
			Tag:        imageNameParts[1],
			KeepImage:  true, // Keep the image so we can reuse it
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		// Reuse the existing image
		logMessage(t, "Image %s exists, reusing...", apiImageName)
		apiContainerRequest.Image = apiImageName
	}

	// Create and start the API container
	apiContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: apiContainerRequest,
		Started:          true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start API")
	}
	testContainers.APIContainer = apiContainer

	// Log the localhost and mapped ports for the API
	apiHost, _ := apiContainer.Host(ctx)
	apiPort, _ := apiContainer.MappedPort(ctx, tcpAPIPort)
	testContainers.BaseURL = fmt.Sprintf("http://%s:%s", apiHost, apiPort.Port())
	logMessage(t, "BASE_URL=%s", testContainers.BaseURL)

	logMessage(t, "API testcontainer started successfully")
	return testContainers, nil
}

func getDBInitEnvMap(s dbSettings) map[string]string {
	switch s.dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": s.password,
			"POSTGRES_USER":     s.user,
			"POSTGRES_DB":       s.database,
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": s.rootPass,
			"MYSQL_DATABASE":      s.database,
			"MYSQL_USER":          s.user,
			"MYSQL_PASSWORD":      s.password,
		}
	}
	return nil
}

func performMySqlDBInit(t *testing.T, testContainers *TestContainers, s dbSettings, dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", s.rootPass, dbHost, dbPort.Port()))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to connect to MariaDB for setup")
	}
	defer db.Close()

	// Wait for connection to be really ready
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
	}

	statements := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", s.database),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", s.user, s.password),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON %s.* TO '%s'@'%%'", s.database, s.user),
		"FLUSH PRIVILEGES",
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), stmt)
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

	for _, image := range images {
		for _, tag := range image.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
