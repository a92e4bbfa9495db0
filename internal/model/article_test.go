package model

import (
	"encoding/json"
	"testing"
)

func TestArticleID_MarshalJSON(t *testing.T) {
	cases := []struct {
		id   ArticleID
		want string
	}{
		{NumberedID(3), "3"},
		{PreambleID(), `"preamble"`},
		{UnclassifiedID(), `"unclassified"`},
	}
	for _, c := range cases {
		data, err := json.Marshal(c.id)
		if err != nil {
			t.Fatalf("marshal %v: %v", c.id, err)
		}
		if string(data) != c.want {
			t.Errorf("marshal %v = %s, want %s", c.id, data, c.want)
		}
	}
}

func TestArticleID_UnmarshalJSON(t *testing.T) {
	var id ArticleID

	if err := json.Unmarshal([]byte("7"), &id); err != nil {
		t.Fatalf("unmarshal int: %v", err)
	}
	if id != NumberedID(7) {
		t.Errorf("expected numbered 7, got %v", id)
	}

	if err := json.Unmarshal([]byte(`"preamble"`), &id); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if id != PreambleID() {
		t.Errorf("expected preamble, got %v", id)
	}

	if err := json.Unmarshal([]byte(`{"n":1}`), &id); err == nil {
		t.Error("expected error for object form")
	}
}

func TestArticleID_IsNumbered(t *testing.T) {
	if !NumberedID(1).IsNumbered() {
		t.Error("expected numbered ID")
	}
	if PreambleID().IsNumbered() || UnclassifiedID().IsNumbered() {
		t.Error("expected sentinel IDs to be non-numbered")
	}
}

func TestRiskLevel_Severity(t *testing.T) {
	if RiskDanger.Severity() <= RiskWarning.Severity() {
		t.Error("danger must outrank warning")
	}
	if RiskWarning.Severity() <= RiskSafe.Severity() {
		t.Error("warning must outrank safe")
	}
	if RiskLevel("bogus").Severity() != RiskSafe.Severity() {
		t.Error("unknown tier must rank with safe")
	}
}

func TestRiskLevel_Valid(t *testing.T) {
	for _, r := range []RiskLevel{RiskDanger, RiskWarning, RiskSafe} {
		if !r.Valid() {
			t.Errorf("expected %s valid", r)
		}
	}
	if RiskLevel("critical").Valid() {
		t.Error("expected unknown tier invalid")
	}
}
