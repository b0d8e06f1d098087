package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/usecase"
)

const cliSubject = "cli"

var importReplace bool

var importCmd = &cobra.Command{
	Use:   "import <hardware|products> <file.xlsx>",
	Short: "Excel fayldan katalogni yuklash",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			result, err := importCatalog(cmd.Context(), a, args[0], args[1], importReplace)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "yuklandi: %d, xato: %d\n", result.Succeeded, result.Failed)
			for _, e := range result.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+e)
			}
			return nil
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <hardware|products> <out.xlsx>",
	Short: "Katalogni Excel faylga yozish",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			n, err := exportCatalog(cmd.Context(), a, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bayt\n", args[1], n)
			return nil
		})
	},
}

var (
	buildBudget float64
	buildType   string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Budjet bo'yicha konfiguratsiyani avtomatik yig'ish (JSON)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			return buildConfiguration(cmd.Context(), a, buildBudget, entity.ConfigurationType(buildType), cmd.OutOrStdout())
		})
	},
}

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "mavjud katalogni avval tozalash")
	buildCmd.Flags().Float64Var(&buildBudget, "budget", 1000, "budjet")
	buildCmd.Flags().StringVar(&buildType, "type", string(entity.ConfigurationPC), "kit, pc yoki setup_completo")
}

func withApp(ctx context.Context, fn func(a *app) error) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func importCatalog(ctx context.Context, a *app, kindName, path string, replace bool) (usecase.BulkResult, error) {
	kind, err := usecase.ParseCatalogKind(kindName)
	if err != nil {
		return usecase.BulkResult{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return usecase.BulkResult{}, err
	}
	return a.admins.UploadCatalog(ctx, cliSubject, kind, data, filepath.Base(path), replace)
}

func exportCatalog(ctx context.Context, a *app, kindName, path string) (int, error) {
	kind, err := usecase.ParseCatalogKind(kindName)
	if err != nil {
		return 0, err
	}
	data, err := a.admins.ExportCatalog(ctx, kind)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, err
	}
	return len(data), nil
}

func buildConfiguration(ctx context.Context, a *app, budget float64, t entity.ConfigurationType, out io.Writer) error {
	allocation, err := a.builder.Generate(ctx, budget, t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(allocation)
}
