package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ApplyStandardRequest struct {
	To           string `json:"to"`
	StandardName string `json:"standard_name"`
}

type BatchEntryRequest struct {
	To           string `json:"to"`
	StandardName string `json:"standard_name"`
}

type ApplyBatchRequest struct {
	Entries []BatchEntryRequest `json:"entries"`
}

type StandardCountRequest struct {
	StandardName string `json:"standard_name"`
	Count        int64  `json:"count"`
}

type UserBatchEntryRequest struct {
	To     string                 `json:"to"`
	Counts []StandardCountRequest `json:"counts"`
}

type ApplyUserBatchRequest struct {
	Entries []UserBatchEntryRequest `json:"entries"`
}

type AckResponse struct {
	Status string `json:"status"`
}
