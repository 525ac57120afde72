package dto

// CreateVARequest канонический набор полей запроса createbilling в том виде,
// в котором он сериализуется перед шифрованием. Живет только в пределах одной
// попытки обработки заявки.
type CreateVARequest struct {
	Type            string `json:"type"`
	ClientID        string `json:"client_id"`
	TrxID           string `json:"trx_id"`
	TrxAmount       string `json:"trx_amount"`
	BillingType     string `json:"billing_type"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	VirtualAccount  string `json:"virtual_account"`
	DatetimeExpired string `json:"datetime_expired"`
	Description     string `json:"description"`
}
