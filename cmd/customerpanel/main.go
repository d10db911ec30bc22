// customerpanel is the terminal menu customers browse: pick a category,
// move through the dishes and add them to the cart.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"foodhub/foodclient"
	"foodhub/store"
	"foodhub/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var apiURL string

	flagSet := pflag.NewFlagSet("customerpanel", pflag.ContinueOnError)
	flagSet.StringVar(&apiURL, "api", defaultAPI(), "food API base URL (env FOODHUB_API)")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	catalog := store.NewCatalogStore(foodclient.New(apiURL))
	defer catalog.Close()

	program := tea.NewProgram(ui.NewCustomerModel(catalog, store.NewCartTracker()), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func defaultAPI() string {
	if v := os.Getenv("FOODHUB_API"); v != "" {
		return v
	}
	return "http://localhost:8080"
}
