package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/erp/sellercenter/internal/application/integration"
	"github.com/erp/sellercenter/internal/domain/catalog"
)

func (a *app) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *app) brands(ctx context.Context) error {
	brands, err := a.service.GetBrands(ctx)
	if err != nil {
		return err
	}
	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tGLOBAL IDENTIFIER")
	for _, b := range brands.All() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", b.ID(), b.Name(), b.GlobalIdentifier())
	}
	return w.Flush()
}

func (a *app) categories(ctx context.Context) error {
	tree, err := a.service.GetCategoryTree(ctx)
	if err != nil {
		return err
	}
	for _, root := range tree.All() {
		root.Walk(func(node *catalog.Category, depth int) {
			id, _ := node.ID()
			fmt.Fprintf(a.out, "%s%s (%d)\n", strings.Repeat("  ", depth), node.Name(), id)
		})
	}
	return nil
}

func (a *app) feedStatus(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: feed-status takes exactly one feed id", errUsage)
	}
	f, err := a.service.FeedStatus(ctx, args[0])
	if err != nil {
		return err
	}
	w := a.table()
	fmt.Fprintf(w, "Feed\t%s\n", f.ID)
	fmt.Fprintf(w, "Status\t%s\n", f.Status)
	fmt.Fprintf(w, "Action\t%s\n", f.Action)
	fmt.Fprintf(w, "Records\t%s total, %s processed, %s failed\n",
		optional(f.TotalRecords), optional(f.ProcessedRecords), optional(f.FailedRecords))
	for _, e := range f.Errors {
		fmt.Fprintf(w, "Error\t%s: %s\n", e.SellerSku, e.Message)
	}
	return w.Flush()
}

func optional(n *int) string {
	if n == nil {
		return "-"
	}
	return cast.ToString(*n)
}

func (a *app) products(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var filter integration.ProductFilter
	fs.StringVar(&filter.Filter, "filter", "all", "all, live, inactive, deleted, image-missing, pending, rejected, sold-out")
	fs.StringVar(&filter.Search, "search", "", "Match name or seller SKU")
	fs.IntVar(&filter.Limit, "limit", 100, "Page size")
	fs.IntVar(&filter.Offset, "offset", 0, "Page offset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter.SellerSkus = fs.Args()

	products, failures, err := a.service.GetProducts(ctx, filter)
	if err != nil {
		return err
	}
	w := a.table()
	fmt.Fprintln(w, "SELLER SKU\tKIND\tNAME")
	for _, p := range products.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.SellerSku(), p.Kind(), p.Name())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(failures) > 0 {
		a.log.Warn("Some products could not be read", zap.Int("skipped", len(failures)))
	}
	return nil
}

func (a *app) qcStatus(ctx context.Context, skus []string) error {
	if len(skus) == 0 {
		return fmt.Errorf("%w: qc-status needs at least one seller SKU", errUsage)
	}
	qcs, err := a.service.GetQcStatus(ctx, skus...)
	if err != nil {
		return err
	}
	w := a.table()
	fmt.Fprintln(w, "SELLER SKU\tSTATUS\tREASON")
	for _, qc := range qcs.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", qc.SellerSku, qc.Status, qc.Reason)
	}
	return w.Flush()
}
