package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbamnote/patil-admin/internal/logger"
	"github.com/kbamnote/patil-admin/internal/orders"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage restaurant orders and bills",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, paged and filtered",
	Example: `  # Second page of paid orders, 24 per page
  patil-admin orders list --payment-status paid --page 2 --limit 24

  # Orders for one customer within a date range
  patil-admin orders list --search "Sharma" --start-date 2026-08-01 --end-date 2026-08-31`,
	RunE: runOrdersList,
}

var ordersShowCmd = &cobra.Command{
	Use:   "show [order-id]",
	Short: "Show one order with its billing breakdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersShow,
}

var ordersUpdateCmd = &cobra.Command{
	Use:   "update [order-id]",
	Short: "Update payment, discount, GST, or notes on an order",
	Long: `Submit a partial update for an order. Only the flags you pass are sent;
everything else stays as it is. The server recomputes all derived amounts
and the command prints the resulting order, so what you see is what was
actually stored.`,
	Example: `  # Mark an order paid by card
  patil-admin orders update 68a1f0c2 --payment-status paid --payment-method card

  # Apply a 10% discount
  patil-admin orders update 68a1f0c2 --discount 10`,
	Args: cobra.ExactArgs(1),
	RunE: runOrdersUpdate,
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete [order-id]",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersDelete,
}

var ordersBillCmd = &cobra.Command{
	Use:   "bill [order-id]",
	Short: "Generate the printable bill for an order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersBill,
}

var ordersStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate order and revenue statistics",
	RunE:  runOrdersStats,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd, ordersShowCmd, ordersUpdateCmd, ordersDeleteCmd, ordersBillCmd, ordersStatsCmd)

	ordersListCmd.Flags().Int("page", orders.DefaultPage, "Page number")
	ordersListCmd.Flags().Int("limit", orders.DefaultLimit, "Items per page")
	ordersListCmd.Flags().String("search", "", "Filter by customer name")
	ordersListCmd.Flags().String("payment-status", "", "Filter by payment status (pending, paid, cancelled, refunded)")
	ordersListCmd.Flags().String("start-date", "", "Filter from date (YYYY-MM-DD)")
	ordersListCmd.Flags().String("end-date", "", "Filter to date (YYYY-MM-DD)")
	ordersListCmd.Flags().Bool("json", false, "Print raw JSON instead of a table")

	ordersShowCmd.Flags().Bool("json", false, "Print raw JSON instead of a breakdown")

	ordersUpdateCmd.Flags().String("payment-status", "", "New payment status (pending, paid, cancelled, refunded)")
	ordersUpdateCmd.Flags().String("payment-method", "", "New payment method (cash, card, upi, bank_transfer, other)")
	ordersUpdateCmd.Flags().String("payment-reference", "", "Payment reference (transaction id, cheque number, ...)")
	ordersUpdateCmd.Flags().String("gst", "", "GST percentage (0-100)")
	ordersUpdateCmd.Flags().String("discount", "", "Discount percentage (0-100)")
	ordersUpdateCmd.Flags().String("notes", "", "Bill notes")

	ordersDeleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

// ordersRepo wires the repository behind the route guard shared by every
// orders subcommand.
func ordersRepo() (*orders.Repository, error) {
	gw, store, err := newGateway()
	if err != nil {
		return nil, err
	}
	if err := requireSession(store); err != nil {
		return nil, err
	}
	return orders.NewRepository(gw), nil
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("orders.list")

	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("payment-status")
	startDate, _ := cmd.Flags().GetString("start-date")
	endDate, _ := cmd.Flags().GetString("end-date")
	asJSON, _ := cmd.Flags().GetBool("json")

	if status != "" && !orders.PaymentStatus(status).Valid() {
		return fmt.Errorf("unknown payment status %q", status)
	}

	filter := orders.ListFilter{
		Page:          page,
		Limit:         limit,
		CustomerName:  search,
		PaymentStatus: orders.PaymentStatus(status),
		StartDate:     startDate,
		EndDate:       endDate,
	}

	repo, err := ordersRepo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.RequestTimeout)
	defer cancel()

	result, err := repo.List(ctx, filter)
	if err != nil {
		return err
	}

	log.Debug().Int("items", len(result.Items)).Int("page", result.Pagination.CurrentPage).Msg("Fetched orders page")

	if asJSON {
		return printJSON(result)
	}

	if len(result.Items) == 0 {
		fmt.Println("No orders match the given filters.")
		return nil
	}

	fmt.Printf("%-14s %-22s %-10s %-10s %12s\n", "BILL", "CUSTOMER", "STATUS", "METHOD", "TOTAL")
	for _, o := range result.Items {
		fmt.Printf("%-14s %-22s %-10s %-10s %12.2f\n",
			o.BillNumber, truncate(o.CustomerName, 22), o.PaymentStatus, o.PaymentMethod, o.TotalAmount)
	}
	p := result.Pagination
	fmt.Printf("\nPage %d of %d (%d orders total)", p.CurrentPage, p.TotalPages, p.TotalItems)
	if p.HasNextPage {
		fmt.Printf(" - use --page %d for more", p.CurrentPage+1)
	}
	fmt.Println()
	return nil
}

func runOrdersShow(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	repo, err := ordersRepo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.RequestTimeout)
	defer cancel()

	manager := orders.NewManager(repo)
	order, err := manager.Load(ctx, args[0])
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(order)
	}
	printOrder(order)
	return nil
}

func runOrdersUpdate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("orders.update")

	update := orders.OrderUpdate{}
	if cmd.Flags().Changed("payment-status") {
		raw, _ := cmd.Flags().GetString("payment-status")
		status := orders.PaymentStatus(raw)
		if !status.Valid() {
			return fmt.Errorf("unknown payment status %q", raw)
		}
		update.PaymentStatus = &status
	}
	if cmd.Flags().Changed("payment-method") {
		raw, _ := cmd.Flags().GetString("payment-method")
		method := orders.PaymentMethod(raw)
		if !method.Valid() {
			return fmt.Errorf("unknown payment method %q", raw)
		}
		update.PaymentMethod = &method
	}
	if cmd.Flags().Changed("payment-reference") {
		ref, _ := cmd.Flags().GetString("payment-reference")
		update.PaymentReference = &ref
	}
	if cmd.Flags().Changed("gst") {
		raw, _ := cmd.Flags().GetString("gst")
		gst := orders.ParsePercent(raw)
		update.GSTPercentage = &gst
	}
	if cmd.Flags().Changed("discount") {
		raw, _ := cmd.Flags().GetString("discount")
		discount := orders.ParsePercent(raw)
		update.DiscountPercentage = &discount
	}
	if cmd.Flags().Changed("notes") {
		notes, _ := cmd.Flags().GetString("notes")
		update.BillNotes = &notes
	}
	if update.IsEmpty() {
		return fmt.Errorf("nothing to update, pass at least one of the update flags")
	}

	repo, err := ordersRepo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.RequestTimeout)
	defer cancel()

	manager := orders.NewManager(repo)
	if _, err := manager.Load(ctx, args[0]); err != nil {
		return err
	}
	order, err := manager.SubmitUpdate(ctx, update)
	if err != nil {
		return err
	}

	log.Info().Str("order_id", order.ID).Str("bill", order.BillNumber).Msg("Order updated")
	fmt.Println("Order updated.")
	printOrder(order)
	return nil
}

func runOrdersDelete(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fmt.Printf("Delete order %s? This cannot be undone. [y/N]: ", args[0])
		var answer string
		_, _ = fmt.Fscanln(os.Stdin, &answer)
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	repo, err := ordersRepo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.RequestTimeout)
	defer cancel()

	if err := repo.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Order deleted.")
	return nil
}

func runOrdersBill(cmd *cobra.Command, args []string) error {
	repo, err := ordersRepo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.RequestTimeout)
	defer cancel()

	manager := orders.NewManager(repo)
	if _, err := manager.Load(ctx, args[0]); err != nil {
		return err
	}
	bill, err := manager.GenerateBill(ctx)
	if err != nil {
		return err
	}

	printBill(bill)
	return nil
}

func runOrdersStats(cmd *cobra.Command, args []string) error {
	repo, err := ordersRepo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.RequestTimeout)
	defer cancel()

	stats, err := repo.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Orders:   %d total, %d pending, %d paid\n", stats.TotalOrders, stats.PendingOrders, stats.PaidOrders)
	fmt.Printf("Revenue:  %.2f\n", stats.TotalRevenue)
	return nil
}

// printOrder renders the billing breakdown exactly as the server computed it.
func printOrder(o *orders.Order) {
	fmt.Printf("\nBill %s", o.BillNumber)
	if o.CustomerName != "" {
		fmt.Printf("  -  %s", o.CustomerName)
	}
	fmt.Println()
	if o.TableNumber != "" || o.PartySize > 0 {
		fmt.Printf("Table %s, party of %d\n", o.TableNumber, o.PartySize)
	}

	fmt.Println()
	for _, item := range o.OrderItems {
		fmt.Printf("  %-28s %3d x %8.2f  %10.2f\n", truncate(item.ItemName, 28), item.Quantity, item.UnitPrice, item.TotalPrice)
	}
	fmt.Printf("\n  %-42s %10.2f\n", "Subtotal", o.Subtotal)
	if o.DiscountPercentage > 0 {
		fmt.Printf("  %-42s -%9.2f\n", fmt.Sprintf("Discount (%.1f%%)", o.DiscountPercentage), o.DiscountAmount)
	}
	fmt.Printf("  %-42s %10.2f\n", fmt.Sprintf("GST (%.1f%%)", o.GSTPercentage), o.GSTAmount)
	fmt.Printf("  %-42s %10.2f\n", "Total", o.TotalAmount)

	fmt.Printf("\nPayment: %s (%s)", o.PaymentStatus, o.PaymentMethod)
	if o.PaymentReference != "" {
		fmt.Printf(" ref %s", o.PaymentReference)
	}
	fmt.Println()
	if o.BillNotes != "" {
		fmt.Printf("Notes: %s\n", o.BillNotes)
	}
	if o.UpdatedBy != nil {
		fmt.Printf("Last updated by %s at %s\n", o.UpdatedBy.Name, o.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func printBill(b *orders.BillProjection) {
	fmt.Println("================ PATIL ASSOCIATES ================")
	printOrder(&b.Order)
	fmt.Printf("\nGenerated by %s at %s\n", b.GeneratedBy, b.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Println("==================================================")
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
