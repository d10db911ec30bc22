// adminpanel manages the food catalog from a terminal.
//
//	adminpanel list
//	adminpanel add --name Margherita --description "Cheesy" --category Pizza --price 250 --image pizza.png
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"foodhub/admin"
	"foodhub/foodclient"
	"foodhub/ui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage(out)
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "list":
		return runList(args[1:])
	case "add":
		return runAdd(args[1:], out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func apiFlag(flagSet *pflag.FlagSet) *string {
	def := os.Getenv("FOODHUB_API")
	if def == "" {
		def = "http://localhost:8080"
	}
	return flagSet.String("api", def, "food API base URL (env FOODHUB_API)")
}

func runList(args []string) error {
	flagSet := pflag.NewFlagSet("adminpanel list", pflag.ContinueOnError)
	apiURL := apiFlag(flagSet)
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	// the TUI owns the terminal; keep library logs out of it
	log.SetOutput(io.Discard)

	client := foodclient.New(*apiURL)
	notes := &admin.Recorder{}
	page := admin.NewListFoodPage(client, notes)
	defer page.Close()

	program := tea.NewProgram(ui.NewAdminModel(page, admin.NewAddFoodPage(client, notes), notes), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func runAdd(args []string, out io.Writer) error {
	flagSet := pflag.NewFlagSet("adminpanel add", pflag.ContinueOnError)
	apiURL := apiFlag(flagSet)
	name := flagSet.String("name", "", "food name")
	description := flagSet.String("description", "", "food description")
	category := flagSet.String("category", "", "one of Biryani, Cake, Burger, Pizza, Rolls, Salad, Ice cream")
	price := flagSet.String("price", "", "price in rupees")
	imagePath := flagSet.String("image", "", "path to the food image")
	timeout := flagSet.Duration("timeout", 30*time.Second, "request timeout")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	notes := &admin.Recorder{}
	page := admin.NewAddFoodPage(foodclient.New(*apiURL), notes)

	fields := map[admin.Field]string{
		admin.FieldName:        *name,
		admin.FieldDescription: *description,
		admin.FieldPrice:       *price,
	}
	if flagSet.Changed("category") {
		fields[admin.FieldCategory] = *category
	}
	for field, value := range fields {
		if err := page.UpdateField(field, value); err != nil {
			return err
		}
	}

	if *imagePath != "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		page.SetImage(admin.ImageFile{Filename: filepath.Base(*imagePath), Data: data})
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	err := page.Submit(ctx)
	if last, ok := notes.Last(); ok {
		fmt.Fprintf(out, "[%s] %s\n", last.Kind, last.Message)
	}
	return err
}

func printUsage(out io.Writer) {
	fmt.Fprint(out, `Food admin panel.

Usage:
  adminpanel list [--api URL]
  adminpanel add --name NAME --description TEXT --category CATEGORY --price PRICE --image PATH [--api URL]

The API URL defaults to $FOODHUB_API or http://localhost:8080.
`)
}
