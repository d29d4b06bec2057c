package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"portfoliodash/cmd"
	"portfoliodash/internal/util"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfoliodash",
	Short: "Brokerage portfolio dashboard backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE: func(c *cobra.Command, args []string) error {
		port, err := c.Flags().GetInt("port")
		if err != nil {
			return err
		}
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		return apiHandler.StartApi(port)
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote [symbol]",
	Short: "Print the merged provider view of one symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		detail, err := apiHandler.StockService.GetStockDetail(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("lookup for %s failed: %w", args[0], err)
		}
		util.Pprint(detail)
		return nil
	},
}

func main() {
	serveCmd.Flags().Int("port", 8082, "port to listen on")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quoteCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
