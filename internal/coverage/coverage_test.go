package coverage

import (
	"testing"

	"github.com/google/uuid"

	"coverpress/internal/models"
)

func intp(v int) *int { return &v }

func TestSanitizeZip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "plain zip", input: "30050", want: 30050, ok: true},
		{name: "zip+4", input: "30050-1234", want: 30050, ok: true},
		{name: "surrounding noise", input: " ZIP: 03301 ", want: 3301, ok: true},
		{name: "too short", input: "3005", ok: false},
		{name: "letters only", input: "abcde", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "four digits with punctuation", input: "3-0-0-5", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SanitizeZip(tt.input)
			if ok != tt.ok {
				t.Fatalf("SanitizeZip(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("SanitizeZip(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchesStatewide(t *testing.T) {
	cov := models.InsuranceCoverage{StateCode: "NH", CoversEntireState: true}

	for _, zip := range []string{"03301", "00001", "99999"} {
		if !Matches(cov, zip) {
			t.Errorf("statewide rule should match %q", zip)
		}
	}
	if Matches(cov, "123") {
		t.Error("statewide rule must not match a partial ZIP")
	}
}

func TestMatchesRange(t *testing.T) {
	tests := []struct {
		name  string
		start *int
		end   *int
		zip   string
		want  bool
	}{
		{name: "inside range", start: intp(30000), end: intp(30099), zip: "30050", want: true},
		{name: "below range", start: intp(30000), end: intp(30099), zip: "29999", want: false},
		{name: "above range", start: intp(30000), end: intp(30099), zip: "30100", want: false},
		{name: "swapped bounds inside", start: intp(30099), end: intp(30000), zip: "30050", want: true},
		{name: "swapped bounds outside", start: intp(30099), end: intp(30000), zip: "30100", want: false},
		{name: "start only exact", start: intp(10001), zip: "10001", want: true},
		{name: "start only miss", start: intp(10001), zip: "10002", want: false},
		{name: "end only exact", end: intp(10001), zip: "10001", want: true},
		{name: "no bounds", zip: "10001", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cov := models.InsuranceCoverage{
				StateCode:     "GA",
				ZipRangeStart: tt.start,
				ZipRangeEnd:   tt.end,
			}
			if got := Matches(cov, tt.zip); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.zip, got, tt.want)
			}
		})
	}
}

func TestMatchesZipList(t *testing.T) {
	tests := []struct {
		name string
		text string
		zip  string
		want bool
	}{
		{name: "explicit zip", text: "10001, 10002 20000-20050", zip: "10002", want: true},
		{name: "range member", text: "10001, 10002 20000-20050", zip: "20025", want: true},
		{name: "past range end", text: "10001, 10002 20000-20050", zip: "20051", want: false},
		{name: "en dash range", text: "30000–30099", zip: "30050", want: true},
		{name: "em dash range", text: "30000—30099", zip: "30050", want: true},
		{name: "stray punctuation", text: "10001; (10002)", zip: "10002", want: true},
		{name: "malformed token skipped", text: "1000x5, 10002", zip: "10002", want: true},
		{name: "short token ignored", text: "1234", zip: "01234", want: false},
		{name: "empty text", text: "", zip: "10001", want: false},
		{name: "whitespace only", text: "   ", zip: "10001", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cov := models.InsuranceCoverage{StateCode: "NY", ZipCodesText: tt.text}
			if got := Matches(cov, tt.zip); got != tt.want {
				t.Errorf("Matches(%q in %q) = %v, want %v", tt.zip, tt.text, got, tt.want)
			}
		})
	}
}

// TestMatchesNoStrategy: a rule with nothing configured matches nothing,
// without erroring.
func TestMatchesNoStrategy(t *testing.T) {
	if Matches(models.InsuranceCoverage{StateCode: "TX"}, "75001") {
		t.Error("empty rule must not match")
	}
}

func company(name string, rating float64, published bool, covs ...models.InsuranceCoverage) models.InsuranceCompany {
	return models.InsuranceCompany{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slugOf(name),
		Rating:    &rating,
		Published: published,
		Coverages: covs,
	}
}

func slugOf(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+32)
		case r == ' ':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func TestResolveInvalidZipReturnsAllPublished(t *testing.T) {
	companies := []models.InsuranceCompany{
		company("Alpha Mutual", 4.8, true, models.InsuranceCoverage{StateCode: "NH", CoversEntireState: true}),
		company("Beta Casualty", 4.2, true),
		company("Hidden Insurer", 3.0, false),
	}

	for _, zip := range []string{"", "123", "abc"} {
		got := Resolve(companies, zip)
		if len(got) != 2 {
			t.Fatalf("Resolve(zip=%q): got %d companies, want 2", zip, len(got))
		}
		if got[0].Name != "Alpha Mutual" || got[1].Name != "Beta Casualty" {
			t.Errorf("Resolve(zip=%q): order not preserved: %v, %v", zip, got[0].Name, got[1].Name)
		}
	}
}

func TestResolveFiltersByCoverage(t *testing.T) {
	a := company("Granite State", 4.5, true,
		models.InsuranceCoverage{StateCode: "NH", CoversEntireState: true})
	b := company("Lone Star", 4.0, true,
		models.InsuranceCoverage{StateCode: "TX", ZipRangeStart: intp(75000), ZipRangeEnd: intp(79999)})
	companies := []models.InsuranceCompany{a, b}

	tests := []struct {
		zip  string
		want []string
	}{
		{zip: "03301", want: []string{"Granite State"}},
		{zip: "75001", want: []string{"Lone Star"}},
		{zip: "99999", want: []string{}},
	}

	for _, tt := range tests {
		got := Resolve(companies, tt.zip)
		if len(got) != len(tt.want) {
			t.Fatalf("Resolve(%q): got %d companies, want %d", tt.zip, len(got), len(tt.want))
		}
		for i, name := range tt.want {
			if got[i].Name != name {
				t.Errorf("Resolve(%q)[%d] = %s, want %s", tt.zip, i, got[i].Name, name)
			}
		}
	}
}

// TestResolveDeduplicates: a company with several matching coverage rows
// appears exactly once.
func TestResolveDeduplicates(t *testing.T) {
	c := company("Double Cover", 4.0, true,
		models.InsuranceCoverage{StateCode: "NY", CoversEntireState: true},
		models.InsuranceCoverage{StateCode: "NY", ZipRangeStart: intp(10000), ZipRangeEnd: intp(10099)},
	)

	got := Resolve([]models.InsuranceCompany{c}, "10001")
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
}

// TestResolveUnpublishedExcludedEvenWithMatch: published gating applies
// before any matching.
func TestResolveUnpublishedExcludedEvenWithMatch(t *testing.T) {
	c := company("Ghost Insurer", 5.0, false,
		models.InsuranceCoverage{StateCode: "NY", CoversEntireState: true})

	if got := Resolve([]models.InsuranceCompany{c}, "10001"); len(got) != 0 {
		t.Fatalf("unpublished company leaked into results: %v", got)
	}
}

// TestResolveMalformedRecordIsolated: one unusable coverage row must not
// take down the company's other rows or the request.
func TestResolveMalformedRecordIsolated(t *testing.T) {
	c := company("Messy Data", 3.5, true,
		models.InsuranceCoverage{StateCode: "GA", ZipCodesText: "not-a-zip, ???"},
		models.InsuranceCoverage{StateCode: "GA", ZipCodesText: "30301"},
	)

	if got := Resolve([]models.InsuranceCompany{c}, "30301"); len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
}
