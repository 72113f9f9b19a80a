package servicelayer

import "encoding/json"

// Wire types for the Service Layer API. Field names follow the remote
// contract, not Go conventions.

type loginRequest struct {
	CompanyDB string `json:"CompanyDB"`
	UserName  string `json:"UserName"`
	Password  string `json:"Password"`
}

type loginResponse struct {
	SessionID string `json:"SessionId"`
}

type documentLine struct {
	ItemCode  string  `json:"ItemCode"`
	Quantity  float64 `json:"Quantity"`
	UnitPrice float64 `json:"UnitPrice"`
}

// orderDocument is the order-creation payload. It deliberately carries no
// total field: the ERP derives document totals from the lines.
type orderDocument struct {
	CardCode      string         `json:"CardCode"`
	DocDate       string         `json:"DocDate"`
	DocDueDate    string         `json:"DocDueDate"`
	DocumentLines []documentLine `json:"DocumentLines"`
}

type orderResponse struct {
	DocEntry int `json:"DocEntry"`
}

// apiError is the Service Layer error envelope
type apiError struct {
	Error struct {
		Code    json.Number `json:"code"`
		Message struct {
			Value string `json:"value"`
		} `json:"message"`
	} `json:"error"`
}

// errorDetail extracts a human-readable message from a Service Layer error
// body, falling back to the raw body when it does not match the envelope.
func errorDetail(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message.Value != "" {
		return e.Error.Message.Value
	}
	const maxDetail = 512
	if len(body) > maxDetail {
		body = body[:maxDetail]
	}
	return string(body)
}
