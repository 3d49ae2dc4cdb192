package catalog

import (
	"context"
	"errors"
	"testing"
)

type failingProvider struct{ err error }

func (p *failingProvider) Load(ctx context.Context) ([]Entry, error) { return nil, p.err }

func TestNew_CopiesEntries(t *testing.T) {
	src := []Entry{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	c := New(src)

	src[0].Title = "changed"

	if got := c.Entries()[0].Title; got != "A" {
		t.Errorf("expected catalog to keep its own copy, got title %q", got)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
}

func TestNew_PreservesOrderAndDuplicates(t *testing.T) {
	src := []Entry{{ID: "z"}, {ID: "a"}, {ID: "z"}}
	c := New(src)

	got := c.Entries()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range []string{"z", "a", "z"} {
		if got[i].ID != want {
			t.Errorf("entry %d: expected id %q, got %q", i, want, got[i].ID)
		}
	}
}

func TestFind_ReturnsSharedReference(t *testing.T) {
	c := New(SampleEntries())

	first, ok := c.Find("v3")
	if !ok {
		t.Fatal("expected to find v3")
	}
	second, _ := c.Find("v3")
	if first != second {
		t.Error("expected Find to return the same entry reference")
	}
	if first.Title != "How to Use an Inhaler Correctly" {
		t.Errorf("unexpected title %q", first.Title)
	}
}

func TestFind_Unknown(t *testing.T) {
	c := New(SampleEntries())
	if _, ok := c.Find("missing"); ok {
		t.Error("expected unknown id to be absent")
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 || c.Entries() != nil {
		t.Error("expected nil catalog to be empty")
	}
	if _, ok := c.Find("v1"); ok {
		t.Error("expected nil catalog to find nothing")
	}
}

func TestLoad_WrapsProviderError(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := Load(context.Background(), &failingProvider{err: sentinel})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestLoad_StaticProvider(t *testing.T) {
	c, err := Load(context.Background(), NewStaticProvider(SampleEntries()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 6 {
		t.Errorf("expected 6 sample entries, got %d", c.Len())
	}
}

func TestStaticProvider_ToleratesMalformedEntries(t *testing.T) {
	entries := []Entry{{ID: "x", ThumbnailURL: "::not a url::"}}
	c, err := Load(context.Background(), NewStaticProvider(entries))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.Entries()[0]
	if got.Title != "" || got.EmbedURL != "" || got.ThumbnailURL != "::not a url::" {
		t.Errorf("expected entry to be carried as-is, got %+v", got)
	}
}
