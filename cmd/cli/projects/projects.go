package projects

import (
	"fmt"
	"os"
	"time"

	"github.com/crucial707/codepad/cmd/cli/client"
	"github.com/crucial707/codepad/cmd/cli/output"
	"github.com/crucial707/codepad/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// Init Projects
// ==========================
func InitProjects(rootCmd *cobra.Command) {

	projectsCmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
	}

	projectsCmd.AddCommand(
		listProjectsCmd(),
		getProjectCmd(),
		createProjectCmd(),
		updateProjectCmd(),
		deleteProjectCmd(),
	)

	rootCmd.AddCommand(projectsCmd)
}

// ==========================
// LIST
// ==========================
func listProjectsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your projects, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			var projects []models.Project
			if err := c.Do(cmd.Context(), "GET", "/projects", nil, &projects); err != nil {
				return err
			}

			if asJSON {
				return output.PrintJSON(cmd.OutOrStdout(), projects)
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects.")
				return nil
			}

			rows := make([][]interface{}, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []interface{}{
					p.ID, p.Name, len(p.HTML), len(p.CSS), len(p.JS), p.UpdatedAt.Local().Format(time.DateTime),
				})
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"ID", "NAME", "HTML", "CSS", "JS", "UPDATED"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

// ==========================
// GET
// ==========================
func getProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a project with its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			var p models.Project
			if err := c.Do(cmd.Context(), "GET", "/project/"+args[0], nil, &p); err != nil {
				return err
			}
			return output.PrintJSON(cmd.OutOrStdout(), p)
		},
	}
}

// ==========================
// CREATE
// ==========================
func createProjectCmd() *cobra.Command {
	var name string
	var code codeFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			payload, err := code.payload()
			if err != nil {
				return err
			}
			payload["name"] = name

			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			var p models.Project
			if err := c.Do(cmd.Context(), "POST", "/project", payload, &p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	code.register(cmd)

	return cmd
}

// ==========================
// UPDATE
// ==========================
func updateProjectCmd() *cobra.Command {
	var code codeFlags

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Replace a project's code",
		Long: `Replace the HTML, CSS and JS of a project.
All three are overwritten: any you do not pass are cleared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := code.payload()
			if err != nil {
				return err
			}

			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			var p models.Project
			if err := c.Do(cmd.Context(), "PUT", "/project/"+args[0], payload, &p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	code.register(cmd)

	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.Authenticated()
			if err != nil {
				return err
			}

			if err := c.Do(cmd.Context(), "DELETE", "/project/"+args[0], nil, nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Project deleted")
			return nil
		},
	}
}

// codeFlags holds the inline and file variants of the three code fields.
type codeFlags struct {
	html, css, js             string
	htmlFile, cssFile, jsFile string
}

func (f *codeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.html, "html", "", "HTML source")
	cmd.Flags().StringVar(&f.css, "css", "", "CSS source")
	cmd.Flags().StringVar(&f.js, "js", "", "JS source")
	cmd.Flags().StringVar(&f.htmlFile, "html-file", "", "read HTML from file")
	cmd.Flags().StringVar(&f.cssFile, "css-file", "", "read CSS from file")
	cmd.Flags().StringVar(&f.jsFile, "js-file", "", "read JS from file")
	cmd.MarkFlagsMutuallyExclusive("html", "html-file")
	cmd.MarkFlagsMutuallyExclusive("css", "css-file")
	cmd.MarkFlagsMutuallyExclusive("js", "js-file")
}

func (f *codeFlags) payload() (map[string]string, error) {
	html, err := readSource(f.html, f.htmlFile)
	if err != nil {
		return nil, err
	}
	css, err := readSource(f.css, f.cssFile)
	if err != nil {
		return nil, err
	}
	js, err := readSource(f.js, f.jsFile)
	if err != nil {
		return nil, err
	}
	return map[string]string{"htmlCode": html, "cssCode": css, "jsCode": js}, nil
}

func readSource(inline, path string) (string, error) {
	if path == "" {
		return inline, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
