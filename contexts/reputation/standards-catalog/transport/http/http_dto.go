package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ManageStandardRequest struct {
	Name      string `json:"name"`
	RepAmount int64  `json:"rep_amount"`
}

type StandardResponse struct {
	Status string `json:"status"`
	Data   struct {
		Name      string `json:"name"`
		RepAmount int64  `json:"rep_amount"`
		Destroyed bool   `json:"destroyed"`
	} `json:"data"`
}

type StandardNamesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Names []string `json:"names"`
	} `json:"data"`
}

type AckResponse struct {
	Status string `json:"status"`
}
