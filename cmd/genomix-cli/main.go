// Genomix CLI — инструмент командной строки для ручных операций
// над classifier'ами в core-service.
//
// Использование:
//
//	genomix [--service-url URL] [--token TOKEN] [--worker-id ID] [--json] classifier <subcommand>
//
// Команды:
//
//	classifier  Операции над classifier'ами (claim, release, fail)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Genomix/internal/cli"
	"github.com/shaiso/Genomix/internal/coreapi"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var serviceURL string
	var authToken string
	var workerID string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "genomix",
		Short:         "Genomix CLI — classifier operations tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", "http://localhost:8000", "core-service URL")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", os.Getenv("CORE_AUTH_TOKEN"), "core-service auth token")
	rootCmd.PersistentFlags().StringVar(&workerID, "worker-id", "genomix-cli", "worker id reported to core-service")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *coreapi.Client { return coreapi.NewClient(serviceURL, authToken, workerID) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewClassifierCmd(clientFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
