package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           Contract Origination API
// @version         1.0
// @description     Consignado contract lifecycle orchestrator (formalization, bureau returns, teimosinha retries) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var rootCmd = &cobra.Command{
	Use:   "origination",
	Short: "Contract lifecycle orchestrator for consignado origination",
	Long: `origination runs the contract lifecycle API and the teimosinha retry scheduler.

Use "serve" to start the HTTP API together with the scheduler loop, or
"teimosinha --once" to process the attempts that are due and exit.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(teimosinhaCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
