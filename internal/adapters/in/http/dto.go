package http

import (
	"time"

	"github.com/likecate/sky-take-out/internal/core/application/usecases/queries"
)

const timeLayout = "2006-01-02 15:04:05"

type orderResponse struct {
	ID            string              `json:"id"`
	Number        string              `json:"number"`
	CustomerID    string              `json:"customerId"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payStatus"`
	Amount        string              `json:"amount"`
	Consignee     string              `json:"consignee"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	CancelReason  string              `json:"cancelReason,omitempty"`
	OrderTime     string              `json:"orderTime"`
	CheckoutTime  string              `json:"checkoutTime,omitempty"`
	CancelTime    string              `json:"cancelTime,omitempty"`
	DeliveryTime  string              `json:"deliveryTime,omitempty"`
	Items         []orderItemResponse `json:"orderDetailList"`
}

type orderItemResponse struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Quantity  int    `json:"number"`
	UnitPrice string `json:"amount"`
}

func toOrderResponse(detail queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, orderItemResponse{
			ItemID:    item.ItemID.String(),
			Name:      item.Name,
			Image:     item.Image,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		})
	}

	return orderResponse{
		ID:            detail.ID.String(),
		Number:        detail.Number,
		CustomerID:    detail.CustomerID.String(),
		Status:        detail.Status,
		PaymentStatus: detail.PaymentStatus,
		Amount:        detail.Amount.String(),
		Consignee:     detail.Consignee,
		Phone:         detail.Phone,
		Address:       detail.Address,
		CancelReason:  detail.CancelReason,
		OrderTime:     detail.OrderTime.Format(timeLayout),
		CheckoutTime:  formatOptional(detail.CheckoutTime),
		CancelTime:    formatOptional(detail.CancelTime),
		DeliveryTime:  formatOptional(detail.DeliveryTime),
		Items:         items,
	}
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeLayout)
}
