package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mabrarov/serverless-task/internal/greeting"
)

func main() {
	err := run(os.Stdout, os.LookupEnv)
	if err != nil {
		os.Exit(1)
	}
}

func run(stdout io.Writer, lookupEnv func(key string) (string, bool)) error {
	_, err := fmt.Fprintln(stdout, greeting.FromEnv(lookupEnv))
	return err
}
