package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lookbusy1344/riscv-emulator/debugger"
	"github.com/lookbusy1344/riscv-emulator/iommu"
)

var apiLog = log.New(io.Discard, "API: ", log.Ltime|log.Lshortfile)

// EnableDebugLog routes API diagnostics to stderr.
func EnableDebugLog() {
	apiLog = log.New(os.Stderr, "API: ", log.Ltime|log.Lshortfile)
}

// Server serves the simulator over HTTP. A single session backs all
// clients; access is serialized with a mutex since the model itself is
// single threaded.
type Server struct {
	mu       sync.Mutex
	session  *debugger.Session
	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// NewServer wraps a session.
func NewServer(session *debugger.Session) *Server {
	s := &Server{
		session: session,
		mux:     http.NewServeMux(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The simulator binds to localhost; same-origin enforcement is
			// left to a fronting proxy in other deployments.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.mux.HandleFunc("/api/decode", s.handleDecode)
	s.mux.HandleFunc("/api/translate", s.handleTranslate)
	s.mux.HandleFunc("/api/csr", s.handleCsr)
	s.mux.HandleFunc("/ws", s.handleWebSocket)
	return s
}

// Handler returns the HTTP handler tree.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe runs the server on the given port.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf("localhost:%d", port)
	apiLog.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, s.mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		apiLog.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, ErrorResponse{Error: fmt.Sprintf(format, args...)})
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return false
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body: %v", err)
		return false
	}
	return true
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if !readJSON(w, r, &req) {
		return
	}

	s.mu.Lock()
	di := s.session.Decoder().Decode(0, 0, req.Word)
	text := s.session.DecodeWord(req.Word)
	s.mu.Unlock()

	resp := DecodeResponse{
		Word:  req.Word,
		Valid: di.IsValid(),
		Name:  di.Name(),
		Size:  di.Size(),
		Text:  text,
	}
	for i := 0; i < di.OperandCount(); i++ {
		resp.Operands = append(resp.Operands, di.IthOperand(i))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !readJSON(w, r, &req) {
		return
	}

	typ := iommu.TtypeUntransRead
	switch req.Access {
	case "", "r":
	case "w":
		typ = iommu.TtypeUntransWrite
	case "x":
		typ = iommu.TtypeUntransExec
	default:
		writeError(w, http.StatusBadRequest, "bad access type %q", req.Access)
		return
	}

	ioReq := iommu.Request{
		DevID:     req.DevID,
		HasProcID: req.HasPid,
		ProcID:    req.ProcID,
		Iova:      req.Iova,
		Type:      typ,
		Size:      4,
	}

	s.mu.Lock()
	pa, cause, ok := s.session.Iommu().Translate(&ioReq)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, TranslateResponse{Ok: ok, Pa: pa, Cause: cause})
}

func (s *Server) handleCsr(w http.ResponseWriter, r *http.Request) {
	var req CsrRequest
	if !readJSON(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.session.Iommu().CsrByName(req.Name)
	if !ok {
		writeError(w, http.StatusNotFound, "no register named %q", req.Name)
		return
	}
	if req.Value != nil {
		s.session.Iommu().WriteCsr(c.Number(), *req.Value)
	}
	writeJSON(w, http.StatusOK, CsrResponse{
		Name:  req.Name,
		Value: s.session.Iommu().ReadCsr(c.Number()),
	})
}

// handleWebSocket runs the debugger command loop over one connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		apiLog.Printf("upgrade: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	for {
		var req CommandRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				apiLog.Printf("read: %v", err)
			}
			return
		}

		s.mu.Lock()
		out, execErr := s.session.Execute(req.Line)
		s.mu.Unlock()

		resp := CommandResponse{Output: out}
		if execErr != nil {
			resp.Error = execErr.Error()
		}
		if err := conn.WriteJSON(resp); err != nil {
			apiLog.Printf("write: %v", err)
			return
		}
	}
}
