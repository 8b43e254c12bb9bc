package main

import (
	"fmt"
	"io"

	"github.com/malippew/xivchar"
	"golang.org/x/sync/errgroup"
)

// Run executes the show command.
// Profiles are fetched concurrently and printed in argument order.
func (c *ShowCmd) Run(deps *Dependencies) error {
	details := make([]*xivchar.CharacterDetail, len(c.IDs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(c.Concurrency, 1))
	for i, id := range c.IDs {
		g.Go(func() error {
			detail, err := deps.Characters.FindCharacterByID(ctx, id)
			if err != nil {
				return err
			}
			details[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xivchar.ErrorMessage(err))
		return err
	}

	if c.JSON {
		if len(details) == 1 {
			return writeJSON(deps.Stdout, details[0])
		}
		return writeJSON(deps.Stdout, details)
	}

	for i, d := range details {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printDetail(deps.Stdout, d)
	}
	return nil
}

func printDetail(w io.Writer, d *xivchar.CharacterDetail) {
	if d.Title != "" {
		fmt.Fprintf(w, "%s <%s>\n", d.Name, d.Title)
	} else {
		fmt.Fprintln(w, d.Name)
	}
	fmt.Fprintf(w, "  ID:    %s\n", d.ID)
	fmt.Fprintf(w, "  World: %s\n", worldLabel(d.Server, d.DataCenter))
	if d.FreeCompany != nil {
		fmt.Fprintf(w, "  Free Company: %s\n", d.FreeCompany.Name)
	}
	fmt.Fprintf(w, "  URL:   %s\n", d.ProfileURL)

	if len(d.Jobs) == 0 {
		return
	}
	fmt.Fprintln(w, "  Jobs:")
	for _, j := range d.Jobs {
		fmt.Fprintf(w, "    %-16s %3d\n", j.Name, j.Level)
	}
}
