package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/voidbay/paygate/internal/catalog"

	"github.com/itchyny/gojq"
	"github.com/urfave/cli/v3"
)

// listCatalogCommand returns a CLI command that prints the catalog, optionally
// narrowed by category or title search and post-processed with a jq
// expression.
//
// Usage example:
//
//	paygate catalog --category GAMES --search drift --jq '.[].title'
func listCatalogCommand(cat catalog.Service) *cli.Command {
	return &cli.Command{
		Name:        "catalog",
		Description: "List the catalog items available for download.",
		Usage:       "Lists catalog items as JSON, with optional filtering.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "Only list items in this category (GAMES, SOFTWARE, MOVIE, OS)",
			},
			&cli.StringFlag{
				Name:  "search",
				Usage: "Only list items whose title contains this text",
			},
			&cli.StringFlag{
				Name:  "jq",
				Usage: "jq expression applied to the item list before printing",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			out := commandWriter(c)

			items, err := cat.List(ctx, catalog.Filter{
				Category: c.String("category"),
				Search:   c.String("search"),
			})
			if err != nil {
				return err
			}

			if expr := c.String("jq"); expr != "" {
				return printFiltered(out, items, expr)
			}

			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(items)
		},
	}
}

// printFiltered runs the jq expression over the item list. The list is routed
// through a JSON round trip first since gojq operates on generic values.
func printFiltered(out io.Writer, items []catalog.Item, expr string) error {
	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("parsing jq expression: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return fmt.Errorf("compiling jq expression: %w", err)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}

	iter := code.Run(generic)
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	for {
		value, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := value.(error); ok {
			return fmt.Errorf("running jq expression: %w", err)
		}
		if err := encoder.Encode(value); err != nil {
			return err
		}
	}

	return nil
}
