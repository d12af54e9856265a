package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/hrpaudit/internal"
	"github.com/starford/hrpaudit/internal/mcpserver"
	"github.com/starford/hrpaudit/internal/models"
	pkgconfig "github.com/starford/hrpaudit/pkg/config"
)

var version = "dev"

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// withComponents loads the config, opens the store and runs fn. Logs go to
// logOut so that stdout stays free for command output.
func withComponents(cmd *cli.Command, logOut io.Writer, fn func(*internal.Components) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := internal.NewLogger(cfg, logOut)
	slog.SetDefault(logger)

	comp, err := internal.Setup(cfg, logger)
	if err != nil {
		return err
	}
	defer comp.Close()
	return fn(comp)
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithVersion(version),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func initProject(ctx context.Context, cmd *cli.Command) error {
	meta := models.ProjectMeta{
		SupplierName: cmd.String("supplier"),
		Site:         cmd.String("site"),
		Date:         cmd.String("date"),
		Assessor:     cmd.String("assessor"),
		Brand:        cmd.String("brand"),
	}
	return withComponents(cmd, os.Stderr, func(c *internal.Components) error {
		view, err := c.Service.Create(ctx, meta, cmd.Bool("force"))
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		fmt.Fprintf(cmd.Root().Writer, "created project %q for %s (%d documents)\n",
			view.Project.ID, view.Project.Meta.SupplierName, len(view.Project.Documents))
		return nil
	})
}

func importFile(master bool) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.Args().First()
		if path == "" {
			return fmt.Errorf("missing file argument")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		source := filepath.Base(path)
		return withComponents(cmd, os.Stderr, func(c *internal.Components) error {
			importFn := c.Service.ImportResponses
			if master {
				importFn = c.Service.ImportMaster
			}
			res, err := importFn(ctx, data, source, "")
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}
			fmt.Fprintf(cmd.Root().Writer, "%s: imported %d records from %s\n", res.Kind, res.Records, source)
			return nil
		})
	}
}

func regenerateCAP(ctx context.Context, cmd *cli.Command) error {
	return withComponents(cmd, os.Stderr, func(c *internal.Components) error {
		items, err := c.Service.RegenerateCAP(ctx, "")
		if err != nil {
			return fmt.Errorf("regenerate cap: %w", err)
		}
		tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCHAPTER\tPRIORITY\tSTATUS\tOWNER")
		for _, it := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.ID, it.ChapterLevel, it.Priority, it.Status, it.Owner)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.Root().Writer, "%d CAP items\n", len(items))
		return nil
	})
}

func grade(ctx context.Context, cmd *cli.Command) error {
	return withComponents(cmd, os.Stderr, func(c *internal.Components) error {
		sum, err := c.Service.Summary(ctx)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		out := cmd.Root().Writer
		if cmd.Bool("json") {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		}

		st := sum.Audit.Stats
		fmt.Fprintf(out, "Supplier: %s\nGrade:    %s\n", sum.Meta.SupplierName, sum.Audit.Grade)
		fmt.Fprintf(out, "Total: %d  OK: %d  NOK: %d  N/A: %d  Not assessed: %d\n\n",
			st.Total, st.OK, st.NOK, st.NA, st.NotAssessed)

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CHAPTER\tTITLE\tGRADE\tOK\tNOK")
		for _, ch := range sum.Audit.Chapters {
			if ch.Stats.Total == 0 {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", ch.Key, ch.Title, ch.Grade, ch.Stats.OK, ch.Stats.NOK)
		}
		return tw.Flush()
	})
}

func exportProject(ctx context.Context, cmd *cli.Command) error {
	format := cmd.Args().First()
	if format == "" {
		return fmt.Errorf("missing format argument (xlsx, pdf or zip)")
	}
	return withComponents(cmd, os.Stderr, func(c *internal.Components) error {
		file, err := c.Service.Export(ctx, format)
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
		if err := c.Exports.Write(file.Name, file.Data); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.Root().Writer, "wrote %s (%d bytes)\n", filepath.Join(c.Exports.Root(), file.Name), len(file.Data))
		return nil
	})
}

func serveMCP(_ context.Context, cmd *cli.Command) error {
	// stdout carries the MCP protocol.
	return withComponents(cmd, os.Stderr, func(c *internal.Components) error {
		return mcpserver.New(c.Service, version).ServeStdio()
	})
}

func main() {
	cmd := &cli.Command{
		Name:    "hrpaudit",
		Usage:   "Offline social-compliance audit workbench: checklist import, grading, CAP and report export",
		Version: version,
		Action:  serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API, event stream and inbox watcher",
				Action: serve,
			},
			{
				Name:  "init",
				Usage: "Create the active audit project",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "supplier", Usage: "Supplier name", Required: true},
					&cli.StringFlag{Name: "site", Usage: "Audited site"},
					&cli.StringFlag{Name: "date", Usage: "Audit date (YYYY-MM-DD), defaults to today"},
					&cli.StringFlag{Name: "assessor", Usage: "Assessor name"},
					&cli.StringFlag{Name: "brand", Usage: "Brand"},
					&cli.BoolFlag{Name: "force", Usage: "Replace an existing project"},
				},
				Action: initProject,
			},
			{
				Name:      "import-master",
				Usage:     "Replace the requirement list with a master checklist (JSON or YAML)",
				ArgsUsage: "<file>",
				Action:    importFile(true),
			},
			{
				Name:      "import-responses",
				Usage:     "Merge a CSV response sheet into the requirement list",
				ArgsUsage: "<file>",
				Action:    importFile(false),
			},
			{
				Name:   "cap",
				Usage:  "Regenerate the corrective action plan",
				Action: regenerateCAP,
			},
			{
				Name:  "grade",
				Usage: "Print the audit grade and per-chapter results",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Print the full summary as JSON"},
				},
				Action: grade,
			},
			{
				Name:      "export",
				Usage:     "Render the project into the exports directory",
				ArgsUsage: "<xlsx|pdf|zip>",
				Action:    exportProject,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the audit tools over MCP on stdio",
				Action: serveMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
