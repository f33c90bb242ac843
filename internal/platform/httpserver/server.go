package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	accesscontrol "chainreputation/contexts/reputation/access-control"
	balanceledger "chainreputation/contexts/reputation/balance-ledger"
	batchengine "chainreputation/contexts/reputation/batch-engine"
	standardscatalog "chainreputation/contexts/reputation/standards-catalog"
	tokenregistry "chainreputation/contexts/reputation/token-registry"
	"chainreputation/internal/shared/principal"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "chainreputation/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	registry  tokenregistry.Module
	ledger    balanceledger.Module
	standards standardscatalog.Module
	access    accesscontrol.Module
	batch     batchengine.Module
}

func New(
	registry tokenregistry.Module,
	ledger balanceledger.Module,
	standards standardscatalog.Module,
	access accesscontrol.Module,
	batch batchengine.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		registry:  registry,
		ledger:    ledger,
		standards: standards,
		access:    access,
		batch:     batch,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routing mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/reputation/v1/tokens", s.handleCreateToken)
	s.mux.HandleFunc("GET /api/reputation/v1/tokens/{name}", s.handleGetToken)
	s.mux.HandleFunc("POST /api/reputation/v1/tokens/{name}/owner", s.handleTransferOwnership)
	s.mux.HandleFunc("POST /api/reputation/v1/tokens/{name}/cid", s.handleChangeTokenStandard)
	s.mux.HandleFunc("POST /api/reputation/v1/tokens/{name}/state", s.handleChangeTokenState)
	s.mux.HandleFunc("POST /api/reputation/v1/tokens/{name}/oracles", s.handleAddOracle)
	s.mux.HandleFunc("DELETE /api/reputation/v1/tokens/{name}/oracles/{address}", s.handleRemoveOracle)
	s.mux.HandleFunc("GET /api/reputation/v1/tokens/{name}/oracles", s.handleGetOracles)

	s.mux.HandleFunc("POST /api/reputation/v1/tokens/{name}/issue", s.handleIssue)
	s.mux.HandleFunc("POST /api/reputation/v1/tokens/{name}/burn", s.handleBurn)
	s.mux.HandleFunc("GET /api/reputation/v1/balances/{account}/{name}", s.handleBalance)

	s.mux.HandleFunc("PUT /api/reputation/v1/standards", s.handleManageStandard)
	s.mux.HandleFunc("GET /api/reputation/v1/standards", s.handleStandardNames)
	s.mux.HandleFunc("GET /api/reputation/v1/standards/{name}", s.handleGetStandard)

	s.mux.HandleFunc("POST /api/reputation/v1/admins", s.handleAddAdmin)
	s.mux.HandleFunc("DELETE /api/reputation/v1/admins/{id}", s.handleRemoveAdmin)
	s.mux.HandleFunc("GET /api/reputation/v1/admins/{id}", s.handleGetAdmin)
	s.mux.HandleFunc("POST /api/reputation/v1/contracts", s.handleAddContract)
	s.mux.HandleFunc("DELETE /api/reputation/v1/contracts/{id}", s.handleRemoveContract)

	s.mux.HandleFunc("POST /api/reputation/v1/updates/standard", s.handleApplyStandard)
	s.mux.HandleFunc("POST /api/reputation/v1/updates/batch", s.handleApplyBatch)
	s.mux.HandleFunc("POST /api/reputation/v1/updates/user-batch", s.handleApplyUserBatch)
}

// resolveCaller reads the authenticated principal from the request.
func resolveCaller(r *http.Request) principal.ID {
	return principal.Parse(r.Header.Get("X-Caller-Id"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
