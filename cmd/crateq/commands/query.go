package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/crateq/internal/app"
	"go.trai.ch/crateq/internal/core/domain"
)

type queryCmd struct {
	use     string
	aliases []string
	short   string
	view    domain.View
}

func (c *CLI) newQueryCmd(q queryCmd) *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:     q.use + " <name|pkg:cargo/name@version>",
		Aliases: q.aliases,
		Short:   q.short,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Query(cmd.Context(), app.QueryRequest{
				Package: args[0],
				Version: version,
				View:    q.view,
			})
		},
	}
	cmd.Flags().StringVarP(&version, "ver", "v", "", "Exact version to query (defaults to the highest normal version)")
	return cmd
}
