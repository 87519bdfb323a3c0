package envelope

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewAssignsFolioOnce(t *testing.T) {
	a := New(0, Message{Title: "t", Text: "x"}, nil)
	b := New(0, Message{Title: "t", Text: "x"}, nil)

	if a.OperationFolio == "" {
		t.Fatal("expected a folio to be assigned")
	}
	if a.OperationFolio == b.OperationFolio {
		t.Errorf("expected distinct folios, both got %s", a.OperationFolio)
	}
}

func TestNewClearsErrorCodeOnSuccess(t *testing.T) {
	env := New(0, Message{Title: "t", Text: "x", ErrorCode: "MSCM0"}, nil)
	if env.Message.ErrorCode != "" {
		t.Errorf("expected error code cleared on success, got %q", env.Message.ErrorCode)
	}

	env = New(-1, Message{Title: "t", Text: "x", ErrorCode: "MSCM0"}, nil)
	if env.Message.ErrorCode != "MSCM0" {
		t.Errorf("expected error code kept on error, got %q", env.Message.ErrorCode)
	}
}

func TestNewRendersNilDataAsEmptyObject(t *testing.T) {
	env := New(0, Message{Title: "t", Text: "x"}, nil)
	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"data":{}`) {
		t.Errorf("expected empty data object, got %s", b)
	}
}

func TestWireFieldNames(t *testing.T) {
	env := New(-1000, Message{Title: "Atención", Text: "Sesión expirada", ErrorCode: "MSCS01"}, nil)
	env.DevMessage = "token expired"

	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{
		`"codigoDeOperacion":-1000`,
		`"folioDeOperacion"`,
		`"mensaje"`,
		`"titulo":"Atención"`,
		`"texto":"Sesión expirada"`,
		`"codigoError":"MSCS01"`,
		`"mensajeDev":"token expired"`,
	} {
		if !strings.Contains(string(b), field) {
			t.Errorf("expected %s in %s", field, b)
		}
	}
}

func TestDecodeDistinguishesForeignJSON(t *testing.T) {
	env, err := Decode([]byte(`{"name":"not an envelope"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := env.Code(); ok {
		t.Error("expected no operation code on foreign JSON")
	}

	env, err = Decode([]byte(`{"codigoDeOperacion":0,"folioDeOperacion":"f"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	code, ok := env.Code()
	if !ok || code != 0 {
		t.Errorf("expected code 0, got %d (ok=%v)", code, ok)
	}

	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Error("expected error on malformed JSON")
	}
}

func TestErrorAndWarningClassification(t *testing.T) {
	tests := []struct {
		code    int
		isError bool
		isWarn  bool
	}{
		{0, false, false},
		{-2000, true, false},
		{5, false, true},
	}
	for _, tt := range tests {
		env := New(tt.code, Message{Title: "t", Text: "x", ErrorCode: "MSCM0"}, nil)
		if env.IsError() != tt.isError {
			t.Errorf("code %d: IsError = %v, want %v", tt.code, env.IsError(), tt.isError)
		}
		if env.IsWarning() != tt.isWarn {
			t.Errorf("code %d: IsWarning = %v, want %v", tt.code, env.IsWarning(), tt.isWarn)
		}
	}
}
