package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rosvend/REST-Api-NoSQL/tests/helpers"
	"github.com/joho/godotenv"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbOnly bool
	flag.BoolVar(&dbOnly, "db-only", false, "start only the database container")
	flag.Parse()

	usage := `
Run the database and API testcontainers with the environment variables from the .env file.

Usage:

testcontainers [-h] [-db-only] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file (DB_TYPE selects mongo, mariadb, mysql or postgres)

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	started := make(chan *helpers.TestContainers, 1)
	go func() {
		var (
			tc  *helpers.TestContainers
			err error
		)
		if dbOnly {
			tc, err = helpers.StartDBContainer(nil, "")
		} else {
			tc, err = helpers.CreateAllTestContainers(nil)
		}
		if err != nil {
			log.Fatalf("Failed to create test containers: %v\n", err)
		}
		started <- tc
	}()

	var testContainers *helpers.TestContainers
	select {
	case testContainers = <-started:
		log.Printf("Test containers running, press Ctrl+C to stop\n")
		<-sigs
	case sig := <-sigs:
		log.Printf("\nReceived signal: %v before the containers were ready\n", sig)
		testContainers = <-started
	}

	log.Printf("Terminating test containers...\n")
	testContainers.Terminate(nil)
}
