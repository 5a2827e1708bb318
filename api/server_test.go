package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lookbusy1344/riscv-emulator/debugger"
)

func newTestServer() *Server {
	session := debugger.NewSession(true, 0x10000000, 4096, 0, 100)
	return NewServer(session)
}

func post(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleDecode(t *testing.T) {
	srv := newTestServer()

	rec := post(t, srv, "/api/decode", DecodeRequest{Word: 0x00A10093})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp DecodeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Valid || resp.Name != "addi" || resp.Size != 4 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if len(resp.Operands) != 3 || resp.Operands[0] != 1 || resp.Operands[1] != 2 ||
		resp.Operands[2] != 10 {
		t.Errorf("unexpected operands: %v", resp.Operands)
	}
	if !strings.Contains(resp.Text, "addi") {
		t.Errorf("text missing mnemonic: %q", resp.Text)
	}
}

func TestHandleDecodeIllegal(t *testing.T) {
	srv := newTestServer()
	rec := post(t, srv, "/api/decode", DecodeRequest{Word: 0})
	var resp DecodeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Valid || resp.Name != "illegal" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandleTranslate(t *testing.T) {
	srv := newTestServer()

	// IOMMU off: cause 256.
	rec := post(t, srv, "/api/translate", TranslateRequest{DevID: 1, Iova: 0x1000})
	var resp TranslateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Ok || resp.Cause != 256 {
		t.Errorf("expected cause 256, got %+v", resp)
	}

	// Switch to Bare mode via the CSR endpoint and translate again.
	bare := uint64(1)
	rec = post(t, srv, "/api/csr", CsrRequest{Name: "ddtp", Value: &bare})
	if rec.Code != http.StatusOK {
		t.Fatalf("csr write status %d", rec.Code)
	}

	rec = post(t, srv, "/api/translate", TranslateRequest{DevID: 1, Iova: 0x1000})
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Ok || resp.Pa != 0x1000 {
		t.Errorf("expected identity translation, got %+v", resp)
	}
}

func TestHandleCsrUnknown(t *testing.T) {
	srv := newTestServer()
	rec := post(t, srv, "/api/csr", CsrRequest{Name: "nosuch"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestMethodEnforcement(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/decode", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestBadAccessType(t *testing.T) {
	srv := newTestServer()
	rec := post(t, srv, "/api/translate", TranslateRequest{Access: "q"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
