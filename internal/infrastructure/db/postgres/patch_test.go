package postgres

import "testing"

func TestSetClauses(t *testing.T) {
	s := newSetClauses()
	if !s.empty() {
		t.Fatal("new setClauses must be empty")
	}

	s.add("fullname", "Ada Lovelace")
	s.add("address", nil)
	if s.empty() {
		t.Fatal("setClauses with assignments reports empty")
	}

	want := "fullname = @fullname, address = @address"
	if got := s.clause(); got != want {
		t.Errorf("clause = %q, want %q", got, want)
	}
	if s.args["fullname"] != "Ada Lovelace" {
		t.Errorf("args[fullname] = %v", s.args["fullname"])
	}
	if v, ok := s.args["address"]; !ok || v != nil {
		t.Errorf("args[address] = %v, present=%v; want explicit nil", v, ok)
	}
}

func TestSetClauses_SingleAssignment(t *testing.T) {
	s := newSetClauses()
	s.add("destinationname", "Kyoto")
	if got := s.clause(); got != "destinationname = @destinationname" {
		t.Errorf("clause = %q", got)
	}
}
