package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"internhub/internal/listing"
	"internhub/internal/portal"
	"internhub/internal/view"
)

type listFlags struct {
	page   int
	limit  int
	search string
	sort   string
	desc   bool
	output string
	cached bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.page, "page", 1, "page to fetch")
	fs.IntVar(&f.limit, "limit", 0, "records per page (default listing.page_size)")
	fs.StringVarP(&f.search, "search", "s", "", "filter the fetched page by text")
	fs.StringVar(&f.sort, "sort", "", "sort the fetched page by field")
	fs.BoolVar(&f.desc, "desc", false, "sort descending")
	fs.StringVarP(&f.output, "output", "o", view.FormatTable, "output format: table, json or yaml")
	fs.BoolVar(&f.cached, "cached", false, "show the last fetched page without calling the backend")
}

// resource describes one listable collection for the shared list command.
type resource[T any] struct {
	key    string
	fetch  func(a *app) listing.FetchFunc[T]
	fields listing.Fields[T]
	table  func(view.Styles, []T) *view.Table
	query  func() portal.ListQuery
}

func newListCmd[T any](a *app, res resource[T]) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + res.key,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), a, res, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runList[T any](ctx context.Context, a *app, res resource[T], flags listFlags) error {
	if flags.output != view.FormatTable && flags.output != view.FormatJSON && flags.output != view.FormatYAML {
		return fmt.Errorf("unknown output format %q", flags.output)
	}

	fetch := res.fetch(a)
	if flags.cached {
		fetch = cachedFetch[T](a, res.key)
	}
	query := portal.ListQuery{}
	if res.query != nil {
		query = res.query()
	}
	query.Page = flags.page
	query.Limit = flags.limit
	if query.Limit <= 0 {
		query.Limit = a.cfg.Listing.PageSize
	}

	ctrl := listing.New(fetch, res.fields, listing.WithQuery[T](query))
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	if !flags.cached {
		a.remember(ctx, res.key, portal.Page[T]{Items: ctrl.Records(), Pagination: ctrl.Pagination()})
	}

	ctrl.SetSearch(flags.search)
	dir := listing.Asc
	if flags.desc {
		dir = listing.Desc
	}
	if err := ctrl.SetSort(flags.sort, dir); err != nil {
		return fmt.Errorf("%w %q, use one of %v", err, flags.sort, ctrl.SortFields())
	}

	visible := ctrl.Visible()
	if flags.output != view.FormatTable {
		return view.Encode(a.out, flags.output, portal.Page[T]{Items: visible, Pagination: ctrl.Pagination()})
	}
	fmt.Fprint(a.out, res.table(a.styles, visible).Render(a.styles))
	fmt.Fprint(a.out, view.Footer(a.styles, ctrl.Pagination(), len(visible), ctrl.Search()))
	return nil
}

// remember stores the fetched page for --cached. A failure only costs the cache.
func (a *app) remember(ctx context.Context, key string, page any) {
	data, err := json.Marshal(page)
	if err != nil {
		a.log.Warn("failed to encode list cache", "key", key, "err", err)
		return
	}
	if err := a.store.SaveList(ctx, key, data); err != nil {
		a.log.Warn("failed to save list cache", "key", key, "err", err)
	}
}

func cachedFetch[T any](a *app, key string) listing.FetchFunc[T] {
	return func(ctx context.Context, _ portal.ListQuery) (portal.Page[T], error) {
		data, err := a.store.LoadList(ctx, key)
		if err != nil {
			return portal.Page[T]{}, fmt.Errorf("no cached %s, run without --cached first: %w", key, err)
		}
		var page portal.Page[T]
		if err := json.Unmarshal(data, &page); err != nil {
			return portal.Page[T]{}, fmt.Errorf("decode cached %s: %w", key, err)
		}
		return page, nil
	}
}

// newShowCmd prints one record as a card, or encoded with --output.
func newShowCmd[T any](a *app, noun string, get func(a *app) func(context.Context, string) (T, error), card func(view.Styles, T) *view.Card) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := get(a)(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output != view.FormatTable {
				return view.Encode(a.out, output, record)
			}
			fmt.Fprint(a.out, card(a.styles, record).Render(a.styles))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", view.FormatTable, "output format: table, json or yaml")
	return cmd
}
