package section

import (
	"strings"
	"testing"

	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/dgallion1/docsight/internal/outline"
)

func bodyFrag(text string, page int, y float64) fragment.TextFragment {
	return fragment.TextFragment{
		Text:     text,
		Page:     page,
		BBox:     fragment.BBox{Y0: y},
		FontSize: fragment.DefaultFontSize,
	}
}

func outlineDoc(entries ...outline.Entry) outline.Document {
	return outline.Document{Title: "Doc", Outline: entries}
}

func TestExtract_Empty(t *testing.T) {
	got := Extract(nil, outlineDoc(), "doc.pdf", DefaultConfig())
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestExtract_OutlinePath(t *testing.T) {
	frags := []fragment.TextFragment{
		bodyFrag("Introduction", 1, 10),
		bodyFrag("This opening paragraph describes the overall goals.", 1, 20),
		bodyFrag("It continues with supporting detail.", 1, 30),
		bodyFrag("Methods", 2, 10),
		bodyFrag("The methods paragraph explains the procedure.", 2, 20),
	}
	doc := outlineDoc(
		outline.Entry{Level: "H1", Text: "Introduction", Page: 1},
		outline.Entry{Level: "H1", Text: "Methods", Page: 2},
	)

	secs := Extract(frags, doc, "paper.pdf", DefaultConfig())
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}

	intro := secs[0]
	if intro.Title != "Introduction" || intro.Level != "H1" || intro.Page != 1 {
		t.Errorf("unexpected section header: %+v", intro)
	}
	if !strings.Contains(intro.Content, "opening paragraph") {
		t.Errorf("intro content missing body text: %q", intro.Content)
	}
	if strings.Contains(intro.Content, "procedure") {
		t.Errorf("intro content leaked into next section: %q", intro.Content)
	}
	if intro.WordCount == 0 {
		t.Error("expected non-zero word count")
	}
	if secs[1].Document != "paper.pdf" {
		t.Errorf("expected document name carried, got %q", secs[1].Document)
	}
}

func TestExtract_SameTitleBoundaryOnSamePage(t *testing.T) {
	frags := []fragment.TextFragment{
		bodyFrag("First Part", 1, 10),
		bodyFrag("Content of the first part lives here.", 1, 20),
		bodyFrag("Second Part", 1, 30),
		bodyFrag("Content of the second part lives here.", 1, 40),
	}
	doc := outlineDoc(
		outline.Entry{Level: "H1", Text: "First Part", Page: 1},
		outline.Entry{Level: "H1", Text: "Second Part", Page: 1},
	)

	secs := Extract(frags, doc, "doc.pdf", DefaultConfig())
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	if strings.Contains(secs[0].Content, "second part") {
		t.Errorf("first section crossed the title boundary: %q", secs[0].Content)
	}
}

func TestExtract_SectionWithNoContentIsDropped(t *testing.T) {
	frags := []fragment.TextFragment{
		bodyFrag("Lonely Heading", 1, 10),
		bodyFrag("Next Heading", 1, 20),
		bodyFrag("Actual content sits under the second heading.", 1, 30),
	}
	doc := outlineDoc(
		outline.Entry{Level: "H1", Text: "Lonely Heading", Page: 1},
		outline.Entry{Level: "H1", Text: "Next Heading", Page: 1},
	)

	secs := Extract(frags, doc, "doc.pdf", DefaultConfig())
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].Title != "Next Heading" {
		t.Errorf("expected the heading with content, got %q", secs[0].Title)
	}
}

func TestTitleMatches(t *testing.T) {
	cases := []struct {
		frag, title string
		want        bool
	}{
		{"2.1 Data Collection Methods", "Data Collection Methods", true},
		{"Data Collection  Methods explained", "Data Collection Methods", true},
		{"Collection of Methods and Data together", "Data Collection Methods", true}, // 3/3 words present
		{"Completely unrelated line", "Data Collection Methods", false},
		{"Data", "Data Collection Methods", false}, // only 1/3 words
		{"", "Title", false},
		{"anything", "", false},
	}
	for _, c := range cases {
		if got := titleMatches(c.frag, c.title); got != c.want {
			t.Errorf("titleMatches(%q, %q) = %v, want %v", c.frag, c.title, got, c.want)
		}
	}
}

func TestExtract_PageFallback(t *testing.T) {
	long := strings.Repeat("Meaningful page content with enough words to pass the threshold. ", 3)
	frags := []fragment.TextFragment{
		bodyFrag(long, 1, 10),
		bodyFrag("tiny", 2, 10),
		bodyFrag(long, 3, 10),
	}

	secs := Extract(frags, outlineDoc(), "scan.pdf", DefaultConfig())
	if len(secs) != 2 {
		t.Fatalf("expected 2 page sections (page 2 below threshold), got %d", len(secs))
	}
	if secs[0].Page != 1 || secs[1].Page != 3 {
		t.Errorf("unexpected pages: %d, %d", secs[0].Page, secs[1].Page)
	}
	if secs[0].Level != "H1" {
		t.Errorf("fallback sections are level H1, got %q", secs[0].Level)
	}
	if secs[0].Title != "Page 1 Content" {
		t.Errorf("expected placeholder title, got %q", secs[0].Title)
	}
}

func TestExtract_PageFallbackUsesHeadingLikeTitle(t *testing.T) {
	long := strings.Repeat("Body text that is clearly long enough to form a page section. ", 3)
	frags := []fragment.TextFragment{
		{Text: "Quarterly Overview", Page: 1, FontSize: 18, BBox: fragment.BBox{Y0: 5}},
		bodyFrag(long, 1, 10),
	}

	secs := Extract(frags, outlineDoc(), "scan.pdf", DefaultConfig())
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].Title != "Quarterly Overview" {
		t.Errorf("expected the heading-like line as title, got %q", secs[0].Title)
	}
}

func TestSubsections(t *testing.T) {
	content := "First topic paragraph that is comfortably longer than fifty characters total.\n\n" +
		"short\n\n" +
		"Second topic paragraph that is also comfortably longer than the minimum length."
	subs := Subsections(content, "doc.pdf", 4, DefaultConfig())

	if len(subs) != 2 {
		t.Fatalf("expected 2 subsections, got %d", len(subs))
	}
	if subs[0].Index != 1 || subs[1].Index != 2 {
		t.Errorf("expected 1-based indexes, got %d and %d", subs[0].Index, subs[1].Index)
	}
	if subs[0].Page != 4 || subs[0].Document != "doc.pdf" {
		t.Errorf("expected page and document carried: %+v", subs[0])
	}
}

func TestSubsections_Empty(t *testing.T) {
	if got := Subsections("", "doc.pdf", 1, DefaultConfig()); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestSubsections_CapsAtMax(t *testing.T) {
	para := strings.Repeat("A paragraph that is long enough to count as a subsection here. ", 1)
	content := strings.TrimSpace(strings.Repeat(para+"\n\n", 8))
	subs := Subsections(content, "doc.pdf", 1, DefaultConfig())
	if len(subs) > DefaultConfig().MaxSubsections {
		t.Errorf("expected at most %d subsections, got %d", DefaultConfig().MaxSubsections, len(subs))
	}
}
