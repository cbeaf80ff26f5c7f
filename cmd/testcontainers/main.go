package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var withService bool
	flag.BoolVar(&withService, "service", true, "also start the projectsdb service container")
	flag.Parse()

	usage := `
Run the projectsdb database, Authorizer and service containers for local development.

Usage:

testcontainers [-h] [-service=false] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	log := logutils.Log

	if envFilename != "" {
		log.Infof("Loading environment variables from %s", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	} else {
		log.Info("No environment file specified, using current environment variables")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	ready := make(chan *testutil.TestContainers, 1)
	go func() {
		containers, err := testutil.CreateTestContainers(nil, testutil.ContainerOptions{
			WithAuthorizer: true,
			WithService:    withService,
		})
		if err != nil {
			log.Fatalf("Failed to create test containers: %v", err)
		}
		log.Info("Containers ready, press Ctrl-C to terminate")
		ready <- containers
	}()

	var containers *testutil.TestContainers
	select {
	case containers = <-ready:
		sig := <-sigs
		log.Infof("Received signal: %v, terminating test containers...", sig)
	case sig := <-sigs:
		log.Infof("Received signal: %v before startup completed, waiting for containers to terminate them...", sig)
		containers = <-ready
	}
	containers.Terminate(nil)
}
