package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type IssueRequest struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type BurnRequest struct {
	From   string `json:"from"`
	Amount int64  `json:"amount"`
}

type IssueResponse struct {
	Status string `json:"status"`
	Data   struct {
		TokenName string `json:"token_name"`
		To        string `json:"to"`
		Amount    int64  `json:"amount"`
		Balance   uint64 `json:"balance"`
	} `json:"data"`
}

type BurnResponse struct {
	Status string `json:"status"`
	Data   struct {
		TokenName string `json:"token_name"`
		From      string `json:"from"`
		Requested int64  `json:"requested"`
		Burned    uint64 `json:"burned"`
	} `json:"data"`
}

type BalanceResponse struct {
	Status string `json:"status"`
	Data   struct {
		Account   string `json:"account"`
		Issuer    string `json:"issuer,omitempty"`
		TokenName string `json:"token_name"`
		Balance   uint64 `json:"balance"`
	} `json:"data"`
}
