package services

import (
	"context"
	"mesero_server/store"
	"mesero_server/structs"
	"mesero_server/structs/tables"
	"sort"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// TransactionService reads and closes the shift ledger.
type TransactionService struct {
	logger       *gecho.Logger
	store        *store.Store
	emailService *EmailService
}

func NewTransactionService(logger *gecho.Logger, st *store.Store, emailService *EmailService) *TransactionService {
	return &TransactionService{
		logger:       logger,
		store:        st,
		emailService: emailService,
	}
}

// ListOptions filters the transaction listing; zero values mean no filter.
type ListOptions struct {
	PaymentMethod string
	Day           string // YYYY-MM-DD
}

func (txs *TransactionService) List(ctx context.Context, opts *ListOptions) ([]tables.Transaction, error) {
	list, err := txs.store.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	if opts == nil || (opts.PaymentMethod == "" && opts.Day == "") {
		return list, nil
	}

	filtered := make([]tables.Transaction, 0, len(list))
	for _, txn := range list {
		if opts.PaymentMethod != "" && txn.PaymentMethod != opts.PaymentMethod {
			continue
		}
		if opts.Day != "" && txn.Timestamp.Format("2006-01-02") != opts.Day {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered, nil
}

// Summary aggregates the current ledger for the reports view.
func (txs *TransactionService) Summary(ctx context.Context) (*structs.ShiftSummary, error) {
	list, err := txs.store.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(list), nil
}

// Clear closes the shift: the ledger is wiped in full, irreversibly. The
// closing summary is mailed to the admin address when email is configured.
func (txs *TransactionService) Clear(ctx context.Context) error {
	list, err := txs.store.Transactions.List(ctx)
	if err != nil {
		return err
	}
	summary := Summarize(list)

	if err := txs.store.Transactions.Clear(ctx); err != nil {
		return err
	}

	txs.logger.Info("Shift closed",
		gecho.Field("transactions", summary.TotalTransactions),
		gecho.Field("total_sales", summary.TotalSales),
	)

	go func() {
		if err := txs.emailService.SendShiftReportEmail(summary); err != nil {
			txs.logger.Error("Failed to send shift report email", gecho.Field("error", err))
		}
	}()

	return nil
}

// Summarize computes the shift aggregates over a fixed transaction list:
// overall totals, per-payment-method subtotals, per-day revenue and the ten
// best-selling items by quantity.
func Summarize(list []tables.Transaction) *structs.ShiftSummary {
	summary := &structs.ShiftSummary{
		TotalTransactions: len(list),
		ByPaymentMethod:   make(map[string]uint64),
	}
	if len(list) == 0 {
		return summary
	}

	days := make(map[string]uint64)
	type seller struct {
		name     string
		quantity int
	}
	sellers := make(map[uuid.UUID]*seller)

	for _, txn := range list {
		summary.TotalSales += txn.Total
		summary.ByPaymentMethod[txn.PaymentMethod] += txn.Total
		days[txn.Timestamp.Format("2006-01-02")] += txn.Total

		for _, line := range txn.Order {
			s, ok := sellers[line.MenuItemID]
			if !ok {
				s = &seller{name: line.Name}
				sellers[line.MenuItemID] = s
			}
			s.quantity += line.Quantity
		}
	}

	summary.AverageTicket = summary.TotalSales / uint64(len(list))

	for day, total := range days {
		summary.SalesByDay = append(summary.SalesByDay, structs.DailySales{Day: day, Total: total})
	}
	sort.Slice(summary.SalesByDay, func(i, j int) bool {
		return summary.SalesByDay[i].Day < summary.SalesByDay[j].Day
	})

	for id, s := range sellers {
		summary.BestSellers = append(summary.BestSellers, structs.ItemSales{
			MenuItemID: id,
			Name:       s.name,
			Quantity:   s.quantity,
		})
	}
	sort.Slice(summary.BestSellers, func(i, j int) bool {
		if summary.BestSellers[i].Quantity != summary.BestSellers[j].Quantity {
			return summary.BestSellers[i].Quantity > summary.BestSellers[j].Quantity
		}
		return summary.BestSellers[i].Name < summary.BestSellers[j].Name
	})
	if len(summary.BestSellers) > 10 {
		summary.BestSellers = summary.BestSellers[:10]
	}

	return summary
}
