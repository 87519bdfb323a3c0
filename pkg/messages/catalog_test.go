package messages

import "testing"

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog(map[string]string{
		"message_-1000": "Atención|Tu sesión ha expirado",
		"message_0":     "Operación exitosa",
		"message_-5":    "",
	})

	title, text, ok := catalog.Lookup(-1000)
	if !ok {
		t.Fatal("expected template for -1000")
	}
	if title != "Atención" || text != "Tu sesión ha expirado" {
		t.Errorf("got %q / %q", title, text)
	}

	// Template without the separator keeps the whole string as text.
	title, text, ok = catalog.Lookup(0)
	if !ok {
		t.Fatal("expected template for 0")
	}
	if title != DefaultTitle || text != "Operación exitosa" {
		t.Errorf("got %q / %q", title, text)
	}

	if _, _, ok := catalog.Lookup(-5); ok {
		t.Error("empty template must count as a miss")
	}
	if _, _, ok := catalog.Lookup(-9999); ok {
		t.Error("unknown code must miss")
	}
}

func TestCatalogOptions(t *testing.T) {
	catalog := NewCatalog(map[string]string{
		"msg.-1": "Título#Texto",
	}, WithKeyPrefix("msg."), WithSplit("#"))

	title, text, ok := catalog.Lookup(-1)
	if !ok {
		t.Fatal("expected template for -1")
	}
	if title != "Título" || text != "Texto" {
		t.Errorf("got %q / %q", title, text)
	}
}

func TestCatalogNilTemplatesAlwaysMiss(t *testing.T) {
	catalog := NewCatalog(nil)
	if _, _, ok := catalog.Lookup(0); ok {
		t.Error("nil catalog must always miss")
	}
}

func TestValidationErrorDevMessage(t *testing.T) {
	verr := NewValidationError("account: must not be blank")
	verr.Add("amount: must be greater than zero")

	want := "account: must not be blank#-#amount: must be greater than zero"
	if got := verr.DevMessage(); got != want {
		t.Errorf("DevMessage = %q, want %q", got, want)
	}
}
