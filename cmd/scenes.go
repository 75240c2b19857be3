package cmd

import (
	"github.com/df07/go-tetra-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()

	return nil
}
