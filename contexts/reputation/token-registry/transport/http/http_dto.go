package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTokenRequest struct {
	Name    string   `json:"name"`
	CID     string   `json:"cid"`
	Oracles []string `json:"oracles"`
}

type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner"`
}

type ChangeTokenStandardRequest struct {
	CID string `json:"cid"`
}

type ChangeTokenStateRequest struct {
	State string `json:"state"`
}

type AddOracleRequest struct {
	Address string `json:"address"`
}

type TokenResponse struct {
	Status string `json:"status"`
	Data   struct {
		Name    string   `json:"name"`
		CID     string   `json:"cid"`
		State   string   `json:"state"`
		Created bool     `json:"created"`
		Owner   string   `json:"owner"`
		Oracles []string `json:"oracles"`
	} `json:"data"`
}

type OraclesResponse struct {
	Status string `json:"status"`
	Data   struct {
		TokenName string   `json:"token_name"`
		Oracles   []string `json:"oracles"`
	} `json:"data"`
}

type AckResponse struct {
	Status string `json:"status"`
}
