package debugger

import (
	"strings"
	"testing"
)

func newTestSession() *Session {
	return NewSession(true, 0x10000000, 4096, 0, 100)
}

func TestExecuteDecode(t *testing.T) {
	s := newTestSession()

	out, err := s.Execute("decode 0x00A10093")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !strings.Contains(out, "addi") {
		t.Errorf("expected addi in output, got %q", out)
	}
	if !strings.Contains(out, "x1") || !strings.Contains(out, "x2") {
		t.Errorf("expected register operands in output, got %q", out)
	}

	out, err = s.Execute("decode 0")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !strings.Contains(out, "illegal") {
		t.Errorf("expected illegal, got %q", out)
	}
}

func TestExecuteExpand(t *testing.T) {
	s := newTestSession()

	// c.li x5, -1
	out, err := s.Execute("expand 0x52FD")
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if !strings.Contains(out, "addi") {
		t.Errorf("expected expansion to addi, got %q", out)
	}
}

func TestExecuteCsr(t *testing.T) {
	s := newTestSession()

	out, err := s.Execute("csr ddtp")
	if err != nil {
		t.Fatalf("csr read failed: %v", err)
	}
	if !strings.Contains(out, "ddtp") {
		t.Errorf("expected register name, got %q", out)
	}

	// Write Bare mode and read it back.
	if _, err := s.Execute("csrw ddtp 1"); err != nil {
		t.Fatalf("csr write failed: %v", err)
	}
	out, _ = s.Execute("csr ddtp")
	if !strings.Contains(out, "0x0000000000000001") {
		t.Errorf("ddtp write lost: %q", out)
	}

	if _, err := s.Execute("csr nosuch"); err == nil {
		t.Error("expected error for unknown register")
	}
}

func TestExecuteTranslate(t *testing.T) {
	s := newTestSession()

	// IOMMU off: the request faults with cause 256.
	out, err := s.Execute("translate 1 1000")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if !strings.Contains(out, "cause 256") {
		t.Errorf("expected cause 256, got %q", out)
	}

	// Bare mode: identity translation.
	s.Execute("csrw ddtp 1")
	out, _ = s.Execute("translate 1 1000")
	if !strings.Contains(out, "pa 0x1000") {
		t.Errorf("expected identity translation, got %q", out)
	}
}

func TestExecuteMemory(t *testing.T) {
	s := newTestSession()

	if _, err := s.Execute("memw 0x2000 0xdeadbeef"); err != nil {
		t.Fatalf("memw failed: %v", err)
	}
	out, err := s.Execute("mem 0x2000")
	if err != nil {
		t.Fatalf("mem failed: %v", err)
	}
	if !strings.Contains(out, "deadbeef") {
		t.Errorf("expected stored value, got %q", out)
	}
}

func TestExecuteHistory(t *testing.T) {
	s := newTestSession()
	s.Execute("decode 0x00A10093")
	s.Execute("queues")

	out, err := s.Execute("history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "decode 0x00A10093") || !strings.Contains(out, "queues") {
		t.Errorf("history incomplete: %q", out)
	}
}

func TestExecuteErrors(t *testing.T) {
	s := newTestSession()

	if _, err := s.Execute("bogus"); err == nil {
		t.Error("unknown command should error")
	}
	if _, err := s.Execute("decode zzz"); err == nil {
		t.Error("bad hex should error")
	}
	if out, err := s.Execute(""); err != nil || out != "" {
		t.Error("empty line should be a no-op")
	}
}
