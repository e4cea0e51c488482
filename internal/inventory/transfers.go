package inventory

import "github.com/shopbook-dev/shopbook/internal/model"

// TransferLog is the list of stock transfers, newest first.
type TransferLog struct {
	transfers []model.StockTransfer
}

// NewTransferLog wraps existing transfers.
func NewTransferLog(transfers []model.StockTransfer) *TransferLog {
	return &TransferLog{transfers: transfers}
}

// All returns the transfers.
func (l *TransferLog) All() []model.StockTransfer {
	return l.transfers
}

// Initiate records a new transfer in transit at the top of the list.
func (l *TransferLog) Initiate(t model.StockTransfer) model.StockTransfer {
	t.Status = model.TransferInTransit
	l.transfers = append([]model.StockTransfer{t}, l.transfers...)
	return t
}

// InTransit returns the transfers still on the way.
func (l *TransferLog) InTransit() []model.StockTransfer {
	var out []model.StockTransfer
	for _, t := range l.transfers {
		if t.Status == model.TransferInTransit {
			out = append(out, t)
		}
	}
	return out
}
