// Command metricdist prints the distance between two operands.
//
//	metricdist hamming karolin kathrin
//	metricdist lp --p inf 1,5,2 4,1,2
//	metricdist padic --p 3 9 0
//	metricdist config --file metric.json --domain vector 0,0 3,4
//
// Environment (optionally loaded from .env):
//
//	METRICDIST_LOG_LEVEL   debug|info|warn|error (default warn)
//	METRICDIST_LOG_FORMAT  text|json (default text)
//	METRICDIST_CODEC       json|go-json (default go-json)
package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	var env envConfig
	if err := envconfig.Process("METRICDIST", &env); err != nil {
		log.Fatalf("read environment: %v", err)
	}

	app, err := newApp(env, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
