package main

import (
	"fmt"

	"github.com/greenkhata/greenkhata/internal/cli"
	"github.com/greenkhata/greenkhata/internal/display"
	"github.com/greenkhata/greenkhata/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense and carbon categories",
		Long:  `Display every category the classifiers can produce, with its display label and icon.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(cli.FormatTitle("Categories"))
			fmt.Println(cli.SubtitleStyle.Render("Every category the expense and carbon cascades can assign."))
			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-18s %-26s %s", "Key", "Label", "Icon")))

			for _, entry := range display.AllCategories() {
				fmt.Printf("%-18s %-26s %s\n", entry.Key, entry.Info.Label, entry.Info.Icon)
			}
			return nil
		},
	}
}

func sectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sectors",
		Short: "List MSME industry sectors",
		Long:  `Display every industry sector the sector classifier can assign.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " Industry sectors"))
			fmt.Println(cli.SubtitleStyle.Render("Every sector the industry classifier can assign."))
			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-18s %-26s %s", "Key", "Label", "Icon")))

			for _, entry := range display.AllSectors() {
				fmt.Printf("%-18s %-26s %s\n", entry.Key, entry.Info.Label, entry.Info.Icon)
			}
			return nil
		},
	}
}

func scopesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scopes",
		Short: "List GHG reporting scopes",
		Long:  `Display the reporting scopes the scope attributor can assign, including the extended scopes beyond GHG Protocol 1-3.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			scopes := []model.Scope{
				model.Scope1, model.Scope2, model.Scope3, model.Scope4,
				model.Scope5, model.Scope6, model.Scope7, model.ScopeUnknown,
			}

			fmt.Println(cli.FormatTitle("GHG scopes"))
			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-6s %-44s %s", "Scope", "Label", "Description")))

			for _, s := range scopes {
				info := display.ForScope(s)
				desc := info.Description
				if desc == "" {
					desc = cli.SubtleStyle.Render("(no description)")
				}
				fmt.Printf("%-6d %-44s %s\n", s, info.Label, desc)
			}

			fmt.Println(cli.FormatInfo("Scopes 4-7 extend the GHG Protocol's 1-3 for MSME reporting."))
			return nil
		},
	}
}
