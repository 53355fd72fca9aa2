package supply

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestErrorSupplier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.supply")
	defer teardown()
	//
	sentinel := errors.New("boom")
	s := Error(sentinel)
	if err := s(); err != sentinel {
		t.Errorf("expected supplier to hand out the sentinel, got %v", err)
	}
	if err := s(); err != sentinel {
		t.Errorf("expected repeated invocation to hand out the sentinel, got %v", err)
	}
}

func TestTextSupplier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.supply")
	defer teardown()
	//
	s := Text("missing username")
	err1, err2 := s(), s()
	if err1.Error() != "missing username" {
		t.Errorf("expected error text \"missing username\", got %q", err1.Error())
	}
	if err1 == err2 {
		t.Errorf("expected each invocation to construct a fresh error instance")
	}
}

func TestTextfCapturesArgumentsAtCreation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.supply")
	defer teardown()
	//
	key := "alpha"
	s := Textf("no entry for %q", key)
	key = "beta"
	if err := s(); err.Error() != `no entry for "alpha"` {
		t.Errorf("expected message to capture arguments at creation time, got %q", err.Error())
	}
}

type configError struct {
	section string
}

func (e *configError) Error() string {
	return fmt.Sprintf("configuration section %q invalid", e.section)
}

func TestFailureSupplier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.supply")
	defer teardown()
	//
	s := Failure(func() *configError {
		return &configError{section: "fonts"}
	})
	err1, err2 := s(), s()
	var cerr *configError
	if !errors.As(err1, &cerr) || cerr.section != "fonts" {
		t.Errorf("expected a *configError for section fonts, got %v", err1)
	}
	if err1 == err2 {
		t.Errorf("expected the constructor to run once per invocation")
	}
}

type labeledError struct {
	label string
}

func (e *labeledError) Error() string {
	return e.label
}

func TestMessageSupplier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.supply")
	defer teardown()
	//
	s := Message(func(msg string) *labeledError {
		return &labeledError{label: msg}
	}, "no value")
	if err := s(); err.Error() != "no value" {
		t.Errorf("expected constructor to receive the captured message, got %q", err.Error())
	}
}

func TestStockSuppliers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.supply")
	defer teardown()
	//
	cases := []struct {
		supplier Supplier
		sentinel error
		text     string
	}{
		{InvalidArgument(), ErrInvalidArgument, "invalid argument"},
		{InvalidArgument("missing username"), ErrInvalidArgument, "invalid argument: missing username"},
		{InvalidState(), ErrInvalidState, "invalid state"},
		{InvalidState("already closed"), ErrInvalidState, "invalid state: already closed"},
		{NilReference(), ErrNilReference, "nil reference"},
		{NilReference("font is nil"), ErrNilReference, "nil reference: font is nil"},
	}
	for _, c := range cases {
		err := c.supplier()
		if !errors.Is(err, c.sentinel) {
			t.Errorf("expected %q to match its sentinel, did not", c.text)
		}
		if err.Error() != c.text {
			t.Errorf("expected error text %q, got %q", c.text, err.Error())
		}
	}
}
