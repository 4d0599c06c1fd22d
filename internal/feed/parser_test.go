package feed_test

import (
	"strings"
	"testing"

	"FanMarket/internal/feed"
)

func TestParse_DropsRowsWithoutName(t *testing.T) {
	in := strings.Join([]string{
		"PRODUCT_NAME,CATEGORY,PRICE",
		"Aksiyel Fan 200,Aksiyel,1500",
		",Aksiyel,900",
		"Kanal Fanı 315,Kanal,2500",
		"   ,Kanal,100",
	}, "\n")

	recs, err := feed.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(recs) != 2 {
		t.Fatalf("records=%d, want 2", len(recs))
	}
	if got := recs[0].Get(feed.FieldName); got != "Aksiyel Fan 200" {
		t.Errorf("first name=%q", got)
	}
	if got := recs[1].Get(feed.FieldName); got != "Kanal Fanı 315" {
		t.Errorf("second name=%q", got)
	}
}

func TestParse_RaggedRows(t *testing.T) {
	in := strings.Join([]string{
		"PRODUCT_NAME,CATEGORY,PRICE",
		"Short Row",
		"Long Row,Kanal,2500,extra,cells",
	}, "\n")

	recs, err := feed.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records=%d, want 2", len(recs))
	}

	if got := recs[0].Get(feed.FieldCategory); got != "" {
		t.Errorf("short row category=%q, want empty", got)
	}
	if got := recs[1].Get(feed.FieldPrice); got != "2500" {
		t.Errorf("long row price=%q", got)
	}
}

func TestParse_TrimsHeaderAndValues(t *testing.T) {
	in := " PRODUCT_NAME , CATEGORY \n  Çatı Fanı  ,  Çatı  \n"

	recs, err := feed.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("records=%d, want 1", len(recs))
	}
	if got := recs[0].Get(feed.FieldCategory); got != "Çatı" {
		t.Errorf("category=%q", got)
	}
}

func TestParse_EmptyInputFails(t *testing.T) {
	if _, err := feed.Parse(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParse_HeaderOnlyYieldsNothing(t *testing.T) {
	recs, err := feed.Parse(strings.NewReader("PRODUCT_NAME,CATEGORY\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("records=%d, want 0", len(recs))
	}
}
