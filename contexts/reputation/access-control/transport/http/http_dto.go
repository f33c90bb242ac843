package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AddAdminRequest struct {
	Admin string `json:"admin"`
}

type AddContractRequest struct {
	Contract string `json:"contract"`
	Name     string `json:"name"`
}

type AdminResponse struct {
	Status string `json:"status"`
	Data   struct {
		Admin          string `json:"admin"`
		Authorized     bool   `json:"authorized"`
		TotalRepIssued uint64 `json:"total_rep_issued"`
		TotalRepBurned uint64 `json:"total_rep_burned"`
	} `json:"data"`
}

type AckResponse struct {
	Status string `json:"status"`
}
